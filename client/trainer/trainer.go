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

//go:generate mockgen -destination mocks/trainer_mock.go -source trainer.go -package mocks

// Package trainer is the client of the trainer server.
package trainer

import (
	"context"

	"github.com/mltemplate/mltemplate/client"
	"github.com/mltemplate/mltemplate/pkg/types"
)

// Client talks to the trainer server.
type Client interface {
	// StartTrainingRun submits a training run and returns the acknowledgement.
	StartTrainingRun(context.Context, types.StartTrainingRunRequest) (string, error)

	// TrainingRun returns the task of a request id.
	TrainingRun(context.Context, string) (*types.TrainingTask, error)
}

type trainer struct {
	*client.Base
}

// New returns the trainer client.
func New(host string, options ...client.Option) Client {
	return &trainer{Base: client.NewBase(host, options...)}
}

func (t *trainer) StartTrainingRun(ctx context.Context, req types.StartTrainingRunRequest) (string, error) {
	var ack string
	if err := t.Post(ctx, "start_training_run", client.TrainingTimeout, req, &ack); err != nil {
		return "", err
	}

	return ack, nil
}

func (t *trainer) TrainingRun(ctx context.Context, requestID string) (*types.TrainingTask, error) {
	var task types.TrainingTask
	if err := t.Post(ctx, "training_run", client.DefaultTimeout, types.TrainingRunRequest{RequestID: requestID}, &task); err != nil {
		return nil, err
	}

	return &task, nil
}
