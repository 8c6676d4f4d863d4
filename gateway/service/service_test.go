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

package service

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deploymentmocks "github.com/mltemplate/mltemplate/client/deployment/mocks"
	trainermocks "github.com/mltemplate/mltemplate/client/trainer/mocks"
	"github.com/mltemplate/mltemplate/internal/mlerrors"
	"github.com/mltemplate/mltemplate/pkg/types"
	"github.com/mltemplate/mltemplate/registry/mocks"
)

var (
	mockModels = []types.ModelRecord{
		{Name: "cnn", Version: "1", TestAcc: 0.97, ExperimentID: "1", RunID: "c"},
		{Name: "mlp", Version: "1", TestAcc: 0.91, ExperimentID: "1", RunID: "a"},
		{Name: "mlp", Version: "2", TestAcc: 0.93, ExperimentID: "2", RunID: "b"},
	}
	mockExperiments = []types.ExperimentRecord{
		{ID: "1", Name: "mnist"},
		{ID: "2", Name: "fashion"},
	}
)

type testService struct {
	registry   *mocks.MockRegistry
	deployment *deploymentmocks.MockClient
	trainer    *trainermocks.MockClient
	service    Service
}

func newTestService(t *testing.T) *testService {
	ctl := gomock.NewController(t)
	t.Cleanup(ctl.Finish)

	ts := &testService{
		registry:   mocks.NewMockRegistry(ctl),
		deployment: deploymentmocks.NewMockClient(ctl),
		trainer:    trainermocks.NewMockClient(ctl),
	}
	ts.service = New(ts.registry, ts.deployment, ts.trainer, NewDiagnoser(t.TempDir(), 1024))
	return ts
}

func TestService_Commands(t *testing.T) {
	ts := newTestService(t)
	assert.Equal(t, []string{"commands", "models", "load-model", "classify-by-id"}, ts.service.Commands().Commands)
}

func TestService_Chat(t *testing.T) {
	ts := newTestService(t)
	msg := ts.service.Chat(context.Background(), types.ChatRequest{Text: "hello"})
	assert.Equal(t, types.Message{Sender: "mltemplate", Text: "Sorry, I don't know how to chat yet."}, msg)
}

func TestService_Models(t *testing.T) {
	tests := []struct {
		name   string
		mock   func(mr *mocks.MockRegistryMockRecorder)
		expect func(t *testing.T, models []types.ModelRecord, err error)
	}{
		{
			name: "refreshes before listing",
			mock: func(mr *mocks.MockRegistryMockRecorder) {
				gomock.InOrder(
					mr.Refresh(gomock.Any()).Return(nil).Times(1),
					mr.Models().Return(mockModels).Times(1),
				)
			},
			expect: func(t *testing.T, models []types.ModelRecord, err error) {
				require.NoError(t, err)
				assert.Equal(t, mockModels, models)
			},
		},
		{
			name: "tracking server unavailable",
			mock: func(mr *mocks.MockRegistryMockRecorder) {
				mr.Refresh(gomock.Any()).Return(mlerrors.BackendUnavailable(errors.New("connection refused"))).Times(1)
			},
			expect: func(t *testing.T, models []types.ModelRecord, err error) {
				assert.True(t, mlerrors.CheckError(err, mlerrors.CodeBackendUnavailable))
				assert.Nil(t, models)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestService(t)
			tc.mock(ts.registry.EXPECT())
			models, err := ts.service.Models(context.Background())
			tc.expect(t, models, err)
		})
	}
}

func TestService_Experiments(t *testing.T) {
	ts := newTestService(t)
	ts.registry.EXPECT().Refresh(gomock.Any()).Return(nil).Times(2)
	ts.registry.EXPECT().ExperimentNames().Return([]string{"fashion", "mnist"}).Times(1)
	ts.registry.EXPECT().Experiments().Return(mockExperiments).Times(1)

	names, err := ts.service.Experiments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"fashion", "mnist"}, names)

	experiments, err := ts.service.ListExperiments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, mockExperiments, experiments)
}

func TestService_ListRuns(t *testing.T) {
	ts := newTestService(t)
	runs := []types.RunRecord{{RunID: "a", ExperimentID: "1"}}
	gomock.InOrder(
		ts.registry.EXPECT().Refresh(gomock.Any()).Return(nil).Times(1),
		ts.registry.EXPECT().Runs(gomock.Any(), "mnist").Return(runs, nil).Times(1),
	)

	result, err := ts.service.ListRuns(context.Background(), types.ListRunsRequest{ExperimentName: "mnist"})
	require.NoError(t, err)
	assert.Equal(t, runs, result)
}

func TestService_BestModelForExperiment(t *testing.T) {
	ts := newTestService(t)
	ts.registry.EXPECT().BestModelForExperimentName(gomock.Any(), "unknown").Return(nil, nil).Times(1)

	model, err := ts.service.BestModelForExperiment(context.Background(), types.BestModelForExperimentRequest{ExperimentName: "unknown"})
	require.NoError(t, err)
	assert.Nil(t, model)
}

func TestService_LoadModel(t *testing.T) {
	ts := newTestService(t)
	req := types.LoadModelRequest{RunID: "missing"}
	upstreamErr := &mlerrors.UpstreamServiceError{StatusCode: http.StatusBadRequest, Body: []byte(`{"detail":"No model found with run_id: missing"}`)}
	gomock.InOrder(
		ts.deployment.EXPECT().LoadModel(gomock.Any(), types.LoadModelRequest{Model: "mlp", Version: "1"}).Return(true, nil).Times(1),
		ts.deployment.EXPECT().LoadModel(gomock.Any(), req).Return(false, upstreamErr).Times(1),
	)

	ok, err := ts.service.LoadModel(context.Background(), types.LoadModelRequest{Model: "mlp", Version: "1"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ts.service.LoadModel(context.Background(), req)
	assert.False(t, ok)
	assert.ErrorIs(t, err, upstreamErr)
}

func TestService_Classify(t *testing.T) {
	ts := newTestService(t)
	idResp := &types.ClassifyIDResponse{Image: "aW1n", Label: 2, Prediction: 2, Logits: [][]float32{{0, 0, 1}}}
	imageResp := &types.ClassifyImageResponse{Prediction: 1, Logits: [][]float32{{0, 1}}}
	ts.deployment.EXPECT().ClassifyID(gomock.Any(), types.NewClassifyIDRequest()).Return(idResp, nil).Times(1)
	ts.deployment.EXPECT().ClassifyImage(gomock.Any(), types.ClassifyImageRequest{Image: "aW1n"}).Return(imageResp, nil).Times(1)

	resp, err := ts.service.ClassifyID(context.Background(), types.NewClassifyIDRequest())
	require.NoError(t, err)
	assert.Equal(t, idResp, resp)

	imgResp, err := ts.service.ClassifyImage(context.Background(), types.ClassifyImageRequest{Image: "aW1n"})
	require.NoError(t, err)
	assert.Equal(t, imageResp, imgResp)
}

func TestService_Train(t *testing.T) {
	tests := []struct {
		name   string
		req    types.TrainRequest
		mock   func(mt *trainermocks.MockClientMockRecorder)
		expect func(t *testing.T, ack string, err error)
	}{
		{
			name: "default arguments",
			req:  types.TrainRequest{RequestID: "req-1"},
			mock: func(mt *trainermocks.MockClientMockRecorder) {
				mt.StartTrainingRun(gomock.Any(), types.StartTrainingRunRequest{
					RequestID:            "req-1",
					CommandLineArguments: "--config-name train.yaml model=mlp dataset=mnist",
				}).Return(types.StartTrainingRunAck, nil).Times(1)
			},
			expect: func(t *testing.T, ack string, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Server received request for start_training_run", ack)
			},
		},
		{
			name: "trainer unavailable",
			req:  types.TrainRequest{RequestID: "req-2", CommandLineArguments: "model=cnn"},
			mock: func(mt *trainermocks.MockClientMockRecorder) {
				mt.StartTrainingRun(gomock.Any(), types.StartTrainingRunRequest{
					RequestID:            "req-2",
					CommandLineArguments: "model=cnn",
				}).Return("", mlerrors.BackendUnavailable(errors.New("connection refused"))).Times(1)
			},
			expect: func(t *testing.T, ack string, err error) {
				assert.True(t, mlerrors.CheckError(err, mlerrors.CodeBackendUnavailable))
				assert.Empty(t, ack)
			},
		},
		{
			name: "request id with quote",
			req:  types.TrainRequest{RequestID: `req-3" model=cnn`},
			mock: func(mt *trainermocks.MockClientMockRecorder) {},
			expect: func(t *testing.T, ack string, err error) {
				assert.True(t, mlerrors.CheckError(err, mlerrors.CodeValidation))
				assert.Empty(t, ack)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestService(t)
			tc.mock(ts.trainer.EXPECT())
			ack, err := ts.service.Train(context.Background(), tc.req)
			tc.expect(t, ack, err)
		})
	}
}

func TestService_TrainingComplete(t *testing.T) {
	ts := newTestService(t)
	ts.registry.EXPECT().Refresh(gomock.Any()).Return(nil).Times(1)

	ok, err := ts.service.TrainingComplete(context.Background(), types.TrainingCompleteRequest{RequestID: "req-1"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestService_TrainingStatus(t *testing.T) {
	ts := newTestService(t)
	ts.registry.EXPECT().RunIDFromRequestID(gomock.Any(), "req-1").Return(types.RunLookup{State: types.RunStatePending, RunID: "r"}, nil).Times(1)

	lookup, err := ts.service.TrainingStatus(context.Background(), types.TrainingStatusRequest{RequestID: "req-1"})
	require.NoError(t, err)
	assert.Equal(t, types.RunLookup{State: types.RunStatePending, RunID: "r"}, lookup)
	assert.False(t, lookup.Done())
}

func TestService_Summary(t *testing.T) {
	tests := []struct {
		name   string
		mock   func(mr *mocks.MockRegistryMockRecorder)
		expect func(t *testing.T, summary *types.SummaryResponse, err error)
	}{
		{
			name: "empty registry",
			mock: func(mr *mocks.MockRegistryMockRecorder) {
				mr.Refresh(gomock.Any()).Return(nil).Times(1)
				mr.ModelsWithBest().Return(nil, nil).Times(1)
			},
			expect: func(t *testing.T, summary *types.SummaryResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, "The registry is empty.", summary.Text)
				assert.Equal(t, []string{"The registry is empty."}, summary.Chunks)
			},
		},
		{
			name: "models and best models",
			mock: func(mr *mocks.MockRegistryMockRecorder) {
				mr.Refresh(gomock.Any()).Return(nil).Times(1)
				mr.ModelsWithBest().Return(mockModels, []types.ModelRecord{mockModels[0], mockModels[2]}).Times(1)
				mr.Experiments().Return(mockExperiments).Times(1)
			},
			expect: func(t *testing.T, summary *types.SummaryResponse, err error) {
				require.NoError(t, err)
				assert.Contains(t, summary.Text, "All models in the registry:")
				assert.Contains(t, summary.Text, "The best model for each experiment:")
				assert.Contains(t, summary.Text, "mnist")
				assert.Equal(t, summary.Text, strings.Join(summary.Chunks, ""))
				for _, chunk := range summary.Chunks {
					assert.LessOrEqual(t, len([]rune(chunk)), 2000)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestService(t)
			tc.mock(ts.registry.EXPECT())
			summary, err := ts.service.Summary(context.Background())
			tc.expect(t, summary, err)
		})
	}
}

func TestService_Debug(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "gateway"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gateway", "core.log"), []byte("refresh registry failed\n"), 0644))

	ctl := gomock.NewController(t)
	defer ctl.Finish()
	svc := New(mocks.NewMockRegistry(ctl), deploymentmocks.NewMockClient(ctl), trainermocks.NewMockClient(ctl), NewDiagnoser(dir, 1024))

	msg, err := svc.Debug(context.Background(), types.DebugRequest{})
	require.NoError(t, err)
	assert.Equal(t, "mltemplate", msg.Sender)
	assert.Contains(t, msg.Text, DefaultDebugQuestion)
	assert.Contains(t, msg.Text, "refresh registry failed")
}
