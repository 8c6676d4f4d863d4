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

//go:generate mockgen -destination mocks/gateway_mock.go -source gateway.go -package mocks

// Package gateway is the client of the gateway server.
package gateway

import (
	"context"
	"image"

	"github.com/mltemplate/mltemplate/client"
	"github.com/mltemplate/mltemplate/pkg/types"
)

// Client talks to the gateway server.
type Client interface {
	Commands(context.Context) ([]string, error)
	Chat(context.Context, string) (*types.Message, error)
	Models(context.Context) ([]types.ModelRecord, error)
	Experiments(context.Context) ([]string, error)
	ListExperiments(context.Context) ([]types.ExperimentRecord, error)
	ListRuns(context.Context, string) ([]types.RunRecord, error)
	ListModels(context.Context) ([]types.ModelVersionRecord, error)

	// BestModelForExperiment returns nil when the experiment has no models.
	BestModelForExperiment(context.Context, string) (*types.ModelRecord, error)

	LoadModel(context.Context, types.LoadModelRequest) (bool, error)
	ClassifyID(context.Context, types.ClassifyIDRequest) (*client.ClassifyIDResult, error)
	ClassifyImage(context.Context, image.Image, string) (*types.ClassifyImageResponse, error)

	// Train submits a training request and returns the trainer acknowledgement.
	Train(context.Context, types.TrainRequest) (string, error)

	TrainingComplete(context.Context, string) (bool, error)
	TrainingStatus(context.Context, string) (*types.RunLookup, error)
	Summary(context.Context) (*types.SummaryResponse, error)
	Debug(context.Context, string) (*types.Message, error)
}

type gateway struct {
	*client.Base
}

// New returns the gateway client.
func New(host string, options ...client.Option) Client {
	return &gateway{Base: client.NewBase(host, options...)}
}

func (g *gateway) Commands(ctx context.Context) ([]string, error) {
	var resp types.CommandsResponse
	if err := g.Post(ctx, "commands", client.DefaultTimeout, nil, &resp); err != nil {
		return nil, err
	}

	return resp.Commands, nil
}

func (g *gateway) Chat(ctx context.Context, text string) (*types.Message, error) {
	var msg types.Message
	if err := g.Post(ctx, "chat", client.DefaultTimeout, types.ChatRequest{Text: text}, &msg); err != nil {
		return nil, err
	}

	return &msg, nil
}

func (g *gateway) Models(ctx context.Context) ([]types.ModelRecord, error) {
	var models []types.ModelRecord
	if err := g.Post(ctx, "models", client.DefaultTimeout, nil, &models); err != nil {
		return nil, err
	}

	return models, nil
}

func (g *gateway) Experiments(ctx context.Context) ([]string, error) {
	var names []string
	if err := g.Post(ctx, "experiments", client.DefaultTimeout, nil, &names); err != nil {
		return nil, err
	}

	return names, nil
}

func (g *gateway) ListExperiments(ctx context.Context) ([]types.ExperimentRecord, error) {
	var experiments []types.ExperimentRecord
	if err := g.Post(ctx, "fetch-experiments", client.DefaultTimeout, nil, &experiments); err != nil {
		return nil, err
	}

	return experiments, nil
}

func (g *gateway) ListRuns(ctx context.Context, experimentName string) ([]types.RunRecord, error) {
	var runs []types.RunRecord
	if err := g.Post(ctx, "fetch-runs", client.DefaultTimeout, types.ListRunsRequest{ExperimentName: experimentName}, &runs); err != nil {
		return nil, err
	}

	return runs, nil
}

func (g *gateway) ListModels(ctx context.Context) ([]types.ModelVersionRecord, error) {
	var versions []types.ModelVersionRecord
	if err := g.Post(ctx, "fetch-models", client.DefaultTimeout, nil, &versions); err != nil {
		return nil, err
	}

	return versions, nil
}

func (g *gateway) BestModelForExperiment(ctx context.Context, experimentName string) (*types.ModelRecord, error) {
	var model *types.ModelRecord
	req := types.BestModelForExperimentRequest{ExperimentName: experimentName}
	if err := g.Post(ctx, "best-model-for-experiment", client.DefaultTimeout, req, &model); err != nil {
		return nil, err
	}

	return model, nil
}

func (g *gateway) LoadModel(ctx context.Context, req types.LoadModelRequest) (bool, error) {
	var loaded bool
	if err := g.Post(ctx, "load-model", client.DefaultTimeout, req, &loaded); err != nil {
		return false, err
	}

	return loaded, nil
}

func (g *gateway) ClassifyID(ctx context.Context, req types.ClassifyIDRequest) (*client.ClassifyIDResult, error) {
	var resp types.ClassifyIDResponse
	if err := g.Post(ctx, "classify-id", client.DefaultTimeout, req, &resp); err != nil {
		return nil, err
	}

	return client.NewClassifyIDResult(&resp)
}

func (g *gateway) ClassifyImage(ctx context.Context, img image.Image, model string) (*types.ClassifyImageResponse, error) {
	req, err := client.NewClassifyImageRequest(img, model)
	if err != nil {
		return nil, err
	}

	var resp types.ClassifyImageResponse
	if err := g.Post(ctx, "classify-image", client.DefaultTimeout, req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (g *gateway) Train(ctx context.Context, req types.TrainRequest) (string, error) {
	if req.CommandLineArguments == "" {
		req.CommandLineArguments = types.DefaultCommandLineArguments
	}

	var ack string
	if err := g.Post(ctx, "train", client.TrainingTimeout, req, &ack); err != nil {
		return "", err
	}

	return ack, nil
}

func (g *gateway) TrainingComplete(ctx context.Context, requestID string) (bool, error) {
	var ok bool
	if err := g.Post(ctx, "training-complete", client.DefaultTimeout, types.TrainingCompleteRequest{RequestID: requestID}, &ok); err != nil {
		return false, err
	}

	return ok, nil
}

func (g *gateway) TrainingStatus(ctx context.Context, requestID string) (*types.RunLookup, error) {
	var lookup types.RunLookup
	if err := g.Post(ctx, "training-status", client.DefaultTimeout, types.TrainingStatusRequest{RequestID: requestID}, &lookup); err != nil {
		return nil, err
	}

	return &lookup, nil
}

func (g *gateway) Summary(ctx context.Context) (*types.SummaryResponse, error) {
	var resp types.SummaryResponse
	if err := g.Post(ctx, "summary", client.DefaultTimeout, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (g *gateway) Debug(ctx context.Context, text string) (*types.Message, error) {
	var msg types.Message
	if err := g.Post(ctx, "debug", client.DefaultTimeout, types.DebugRequest{Text: text}, &msg); err != nil {
		return nil, err
	}

	return &msg, nil
}
