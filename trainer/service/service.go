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

	logger "github.com/mltemplate/mltemplate/internal/mllog"
	"github.com/mltemplate/mltemplate/pkg/types"
	"github.com/mltemplate/mltemplate/trainer/training"
)

type Service interface {
	StartTrainingRun(context.Context, types.StartTrainingRunRequest) (string, error)
	TrainingRun(context.Context, types.TrainingRunRequest) (*types.TrainingTask, error)
}

type service struct {
	training training.Training
}

// New returns the trainer service.
func New(training training.Training) Service {
	return &service{training: training}
}

// StartTrainingRun launches the training run in the background and acknowledges it.
func (s *service) StartTrainingRun(ctx context.Context, req types.StartTrainingRunRequest) (string, error) {
	logger.WithRequestID(req.RequestID).Debugf("received start_training_run: %s", req.CommandLineArguments)
	if _, err := s.training.Start(ctx, req); err != nil {
		logger.WithRequestID(req.RequestID).Errorf("start training run failed: %s", err.Error())
		return "", err
	}

	return types.StartTrainingRunAck, nil
}

func (s *service) TrainingRun(ctx context.Context, req types.TrainingRunRequest) (*types.TrainingTask, error) {
	return s.training.Task(req.RequestID)
}
