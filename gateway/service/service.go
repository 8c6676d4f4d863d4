/*
 *     Copyright 2024 The Mltemplate Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

//go:generate mockgen -destination mocks/service_mock.go -source service.go -package mocks

package service

import (
	"context"

	"github.com/mltemplate/mltemplate/client/deployment"
	"github.com/mltemplate/mltemplate/client/trainer"
	"github.com/mltemplate/mltemplate/gateway/metrics"
	logger "github.com/mltemplate/mltemplate/internal/mllog"
	"github.com/mltemplate/mltemplate/pkg/format"
	"github.com/mltemplate/mltemplate/pkg/types"
	"github.com/mltemplate/mltemplate/registry"
)

// Commands supported by the front-ends.
var Commands = []string{"commands", "models", "load-model", "classify-by-id"}

type Service interface {
	Commands() types.CommandsResponse
	Chat(context.Context, types.ChatRequest) types.Message
	Models(context.Context) ([]types.ModelRecord, error)
	Experiments(context.Context) ([]string, error)
	ListExperiments(context.Context) ([]types.ExperimentRecord, error)
	ListRuns(context.Context, types.ListRunsRequest) ([]types.RunRecord, error)
	ListModels(context.Context) ([]types.ModelVersionRecord, error)
	BestModelForExperiment(context.Context, types.BestModelForExperimentRequest) (*types.ModelRecord, error)
	LoadModel(context.Context, types.LoadModelRequest) (bool, error)
	ClassifyID(context.Context, types.ClassifyIDRequest) (*types.ClassifyIDResponse, error)
	ClassifyImage(context.Context, types.ClassifyImageRequest) (*types.ClassifyImageResponse, error)
	Train(context.Context, types.TrainRequest) (string, error)
	TrainingComplete(context.Context, types.TrainingCompleteRequest) (bool, error)
	TrainingStatus(context.Context, types.TrainingStatusRequest) (types.RunLookup, error)
	Summary(context.Context) (*types.SummaryResponse, error)
	Debug(context.Context, types.DebugRequest) (*types.Message, error)
}

type service struct {
	registry   registry.Registry
	deployment deployment.Client
	trainer    trainer.Client
	diagnoser  Diagnoser
}

// New returns the gateway service.
func New(registry registry.Registry, deployment deployment.Client, trainer trainer.Client, diagnoser Diagnoser) Service {
	return &service{
		registry:   registry,
		deployment: deployment,
		trainer:    trainer,
		diagnoser:  diagnoser,
	}
}

func (s *service) Commands() types.CommandsResponse {
	return types.CommandsResponse{Commands: Commands}
}

func (s *service) Chat(ctx context.Context, req types.ChatRequest) types.Message {
	logger.Debugf("received chat request: %s", req.Text)
	return types.Message{
		Sender: types.ChatSender,
		Text:   types.ChatFallbackText,
	}
}

func (s *service) Models(ctx context.Context) ([]types.ModelRecord, error) {
	if err := s.refresh(ctx); err != nil {
		return nil, err
	}

	return s.registry.Models(), nil
}

func (s *service) Experiments(ctx context.Context) ([]string, error) {
	if err := s.refresh(ctx); err != nil {
		return nil, err
	}

	return s.registry.ExperimentNames(), nil
}

func (s *service) ListExperiments(ctx context.Context) ([]types.ExperimentRecord, error) {
	if err := s.refresh(ctx); err != nil {
		return nil, err
	}

	return s.registry.Experiments(), nil
}

func (s *service) ListRuns(ctx context.Context, req types.ListRunsRequest) ([]types.RunRecord, error) {
	if err := s.refresh(ctx); err != nil {
		return nil, err
	}

	return s.registry.Runs(ctx, req.ExperimentName)
}

func (s *service) ListModels(ctx context.Context) ([]types.ModelVersionRecord, error) {
	if err := s.refresh(ctx); err != nil {
		return nil, err
	}

	return s.registry.ModelVersions(), nil
}

func (s *service) BestModelForExperiment(ctx context.Context, req types.BestModelForExperimentRequest) (*types.ModelRecord, error) {
	return s.registry.BestModelForExperimentName(ctx, req.ExperimentName)
}

func (s *service) LoadModel(ctx context.Context, req types.LoadModelRequest) (bool, error) {
	if _, err := s.deployment.LoadModel(ctx, req); err != nil {
		return false, err
	}

	return true, nil
}

func (s *service) ClassifyID(ctx context.Context, req types.ClassifyIDRequest) (*types.ClassifyIDResponse, error) {
	return s.deployment.ClassifyID(ctx, req)
}

func (s *service) ClassifyImage(ctx context.Context, req types.ClassifyImageRequest) (*types.ClassifyImageResponse, error) {
	return s.deployment.ClassifyImage(ctx, req)
}

func (s *service) Train(ctx context.Context, req types.TrainRequest) (string, error) {
	if err := types.ValidateRequestID(req.RequestID); err != nil {
		metrics.TrainFailureCount.Inc()
		return "", err
	}

	args := req.CommandLineArguments
	if args == "" {
		args = types.DefaultCommandLineArguments
	}

	ack, err := s.trainer.StartTrainingRun(ctx, types.StartTrainingRunRequest{
		RequestID:            req.RequestID,
		CommandLineArguments: args,
	})
	if err != nil {
		metrics.TrainFailureCount.Inc()
		return "", err
	}

	metrics.TrainCount.Inc()
	logger.WithRequestID(req.RequestID).Infof("training request forwarded: %s", args)
	return ack, nil
}

func (s *service) TrainingComplete(ctx context.Context, req types.TrainingCompleteRequest) (bool, error) {
	if err := s.refresh(ctx); err != nil {
		return false, err
	}

	logger.WithRequestID(req.RequestID).Info("training complete, registry refreshed")
	return true, nil
}

func (s *service) TrainingStatus(ctx context.Context, req types.TrainingStatusRequest) (types.RunLookup, error) {
	return s.registry.RunIDFromRequestID(ctx, req.RequestID)
}

func (s *service) Summary(ctx context.Context) (*types.SummaryResponse, error) {
	if err := s.refresh(ctx); err != nil {
		return nil, err
	}

	models, best := s.registry.ModelsWithBest()
	text := format.ModelSummary(models, best)
	if len(models) > 0 {
		experimentStats, err := format.ExperimentStats(models)
		if err != nil {
			return nil, err
		}

		names := map[string]string{}
		for _, experiment := range s.registry.Experiments() {
			names[experiment.ID] = experiment.Name
		}

		text += "Test accuracy by experiment:\n" + format.StatsTable(experimentStats, names)
	}

	return &types.SummaryResponse{
		Text:   text,
		Chunks: format.Chunk(text, format.MaxMessageLength),
	}, nil
}

func (s *service) Debug(ctx context.Context, req types.DebugRequest) (*types.Message, error) {
	report, err := s.diagnoser.Diagnose(ctx, req.Text)
	if err != nil {
		return nil, err
	}

	return &types.Message{
		Sender: types.ChatSender,
		Text:   report,
	}, nil
}

func (s *service) refresh(ctx context.Context) error {
	if err := s.registry.Refresh(ctx); err != nil {
		metrics.RegistryRefreshFailureCount.Inc()
		return err
	}

	return nil
}
