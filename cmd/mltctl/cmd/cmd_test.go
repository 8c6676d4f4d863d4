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


package cmd

import (
	"bytes"
	"context"
	"errors"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mltemplate/mltemplate/client"
	"github.com/mltemplate/mltemplate/client/config"
	"github.com/mltemplate/mltemplate/client/gateway/mocks"
	"github.com/mltemplate/mltemplate/internal/mlerrors"
	"github.com/mltemplate/mltemplate/pkg/types"
	"github.com/mltemplate/mltemplate/pkg/util/imageutils"
)

var mockModels = []types.ModelRecord{
	{
		Name:         "MLP",
		Version:      "1",
		Dataset:      "mnist",
		Status:       "READY",
		TrainAcc:     0.9,
		ValAcc:       0.8,
		TestAcc:      0.7,
		ExperimentID: "1",
		RunID:        "foo",
	},
	{
		Name:         "CNN",
		Version:      "2",
		Dataset:      "mnist",
		Status:       "READY",
		TestAcc:      0.9,
		ExperimentID: "1",
		RunID:        "bar",
	},
}

func TestRunModels(t *testing.T) {
	tests := []struct {
		name   string
		output string
		expect func(t *testing.T, out string, err error)
	}{
		{
			name:   "table",
			output: config.OutputTable,
			expect: func(t *testing.T, out string, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.NotContains(out, "```")
				assert.Contains(out, "Test Accuracy")
				assert.Contains(out, "MLP")
				assert.Contains(out, "0.7000")
			},
		},
		{
			name:   "json",
			output: config.OutputJSON,
			expect: func(t *testing.T, out string, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Contains(out, `"run_id": "foo"`)
				assert.Contains(out, `"test_acc": 0.9`)
			},
		},
		{
			name:   "csv",
			output: config.OutputCSV,
			expect: func(t *testing.T, out string, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				lines := strings.Split(strings.TrimSpace(out), "\n")
				assert.Len(lines, 3)
				assert.Equal("name,version,dataset,status,train_acc,val_acc,test_acc,params,experiment_id,run_id", lines[0])
				assert.True(strings.HasPrefix(lines[1], "MLP,1,mnist,READY,"))
				assert.True(strings.HasSuffix(lines[2], ",1,bar"))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			gateway := mocks.NewMockClient(ctl)
			gateway.EXPECT().Models(gomock.Any()).Return(mockModels, nil).Times(1)

			var buf bytes.Buffer
			err := runModels(context.Background(), newPrinter(&buf, tc.output), gateway)
			tc.expect(t, buf.String(), err)
		})
	}
}

func TestRunCommands(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	gateway := mocks.NewMockClient(ctl)
	gateway.EXPECT().Commands(gomock.Any()).Return([]string{"commands", "models"}, nil).Times(1)

	var buf bytes.Buffer
	assert.NoError(t, runCommands(context.Background(), newPrinter(&buf, config.OutputTable), gateway))
	assert.Equal(t, "commands\nmodels\n", buf.String())
}

func TestRunCommands_CSVNotSupported(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	gateway := mocks.NewMockClient(ctl)
	gateway.EXPECT().Commands(gomock.Any()).Return([]string{"commands"}, nil).Times(1)

	err := runCommands(context.Background(), newPrinter(io.Discard, config.OutputCSV), gateway)
	assert.ErrorIs(t, err, ErrCSVNotSupported)
}

func TestRunBestModel(t *testing.T) {
	assert := assert.New(t)
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	gateway := mocks.NewMockClient(ctl)
	gomock.InOrder(
		gateway.EXPECT().BestModelForExperiment(gomock.Any(), "mnist").Return(&mockModels[1], nil).Times(1),
		gateway.EXPECT().BestModelForExperiment(gomock.Any(), "foo").Return(nil, nil).Times(1),
		gateway.EXPECT().BestModelForExperiment(gomock.Any(), "foo").Return(nil, nil).Times(1),
	)

	var buf bytes.Buffer
	assert.NoError(runBestModel(context.Background(), newPrinter(&buf, config.OutputTable), gateway, "mnist"))
	assert.Contains(buf.String(), "CNN")

	buf.Reset()
	assert.NoError(runBestModel(context.Background(), newPrinter(&buf, config.OutputTable), gateway, "foo"))
	assert.Equal("No model found for experiment foo.\n", buf.String())

	buf.Reset()
	assert.NoError(runBestModel(context.Background(), newPrinter(&buf, config.OutputJSON), gateway, "foo"))
	assert.Equal("null\n", buf.String())
}

func TestRunSummary(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	gateway := mocks.NewMockClient(ctl)
	gateway.EXPECT().Summary(gomock.Any()).Return(&types.SummaryResponse{
		Text:   "foobar",
		Chunks: []string{"foo", "bar"},
	}, nil).Times(1)

	var buf bytes.Buffer
	assert.NoError(t, runSummary(context.Background(), newPrinter(&buf, config.OutputTable), gateway))
	assert.Equal(t, "foo\nbar\n", buf.String())
}

func TestRunStats(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	gateway := mocks.NewMockClient(ctl)
	gateway.EXPECT().Models(gomock.Any()).Return(mockModels, nil).Times(1)
	gateway.EXPECT().ListExperiments(gomock.Any()).Return([]types.ExperimentRecord{{ID: "1", Name: "mnist"}}, nil).Times(1)

	var buf bytes.Buffer
	assert.NoError(t, runStats(context.Background(), newPrinter(&buf, config.OutputTable), gateway))
	out := buf.String()
	assert.Contains(t, out, "mnist")
	assert.Contains(t, out, "0.8000")
	assert.Contains(t, out, "0.9000")
}

func TestRunRuns(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	gateway := mocks.NewMockClient(ctl)
	gateway.EXPECT().ListRuns(gomock.Any(), "mnist").Return([]types.RunRecord{
		{RunID: "foo", Metrics: map[string]float64{"test_acc_epoch": 0.5}},
	}, nil).Times(1)

	var buf bytes.Buffer
	assert.NoError(t, runRuns(context.Background(), newPrinter(&buf, config.OutputTable), gateway, "mnist"))
	assert.Contains(t, buf.String(), "0.5000")
}

func TestRunLoadModel(t *testing.T) {
	tests := []struct {
		name   string
		req    types.LoadModelRequest
		mock   func(m *mocks.MockClientMockRecorder)
		expect func(t *testing.T, out string, err error)
	}{
		{
			name: "load by name and version",
			req:  types.LoadModelRequest{Model: "MLP", Version: "1"},
			mock: func(m *mocks.MockClientMockRecorder) {
				m.LoadModel(gomock.Any(), types.LoadModelRequest{Model: "MLP", Version: "1"}).Return(true, nil).Times(1)
			},
			expect: func(t *testing.T, out string, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "Model MLP/1 is loaded.\n", out)
			},
		},
		{
			name: "load by run id",
			req:  types.LoadModelRequest{RunID: "foo"},
			mock: func(m *mocks.MockClientMockRecorder) {
				m.LoadModel(gomock.Any(), types.LoadModelRequest{RunID: "foo"}).Return(true, nil).Times(1)
			},
			expect: func(t *testing.T, out string, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "Model foo is loaded.\n", out)
			},
		},
		{
			name: "invalid selector",
			req:  types.LoadModelRequest{Model: "MLP"},
			mock: func(m *mocks.MockClientMockRecorder) {},
			expect: func(t *testing.T, out string, err error) {
				assert.ErrorIs(t, err, mlerrors.ErrInvalidModelSelector)
			},
		},
		{
			name: "upstream error",
			req:  types.LoadModelRequest{RunID: "bar"},
			mock: func(m *mocks.MockClientMockRecorder) {
				m.LoadModel(gomock.Any(), gomock.Any()).Return(false, &mlerrors.UpstreamServiceError{StatusCode: 400}).Times(1)
			},
			expect: func(t *testing.T, out string, err error) {
				var upstream *mlerrors.UpstreamServiceError
				assert.ErrorAs(t, err, &upstream)
				assert.Empty(t, out)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			gateway := mocks.NewMockClient(ctl)
			tc.mock(gateway.EXPECT())

			var buf bytes.Buffer
			err := runLoadModel(context.Background(), newPrinter(&buf, config.OutputTable), gateway, tc.req)
			tc.expect(t, buf.String(), err)
		})
	}
}

func TestRunClassifyID(t *testing.T) {
	assert := assert.New(t)
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	gateway := mocks.NewMockClient(ctl)

	img := image.NewGray(image.Rect(0, 0, 28, 28))
	img.Pix[0] = 255
	req := types.NewClassifyIDRequest()
	gateway.EXPECT().ClassifyID(gomock.Any(), req).Return(&client.ClassifyIDResult{
		Image:      img,
		Label:      7,
		Prediction: 7,
		Logits:     [][]float32{{0.1, 0.9}},
	}, nil).Times(1)

	save := filepath.Join(t.TempDir(), "sample.png")
	var buf bytes.Buffer
	assert.NoError(runClassifyID(context.Background(), newPrinter(&buf, config.OutputTable), gateway, req, save))
	assert.Contains(buf.String(), "Label: 7")
	assert.Contains(buf.String(), "Prediction: 7")

	b, err := os.ReadFile(save)
	require.NoError(t, err)
	saved, err := imageutils.FromBytes(b)
	require.NoError(t, err)
	assert.True(imageutils.Equal(img, saved))
}

func TestRunClassifyImage(t *testing.T) {
	assert := assert.New(t)
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	gateway := mocks.NewMockClient(ctl)

	img := image.NewGray(image.Rect(0, 0, 28, 28))
	b, err := imageutils.ToBytes(img)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "digit.png")
	require.NoError(t, os.WriteFile(path, b, 0644))

	gateway.EXPECT().ClassifyImage(gomock.Any(), gomock.Any(), "MLP/1").Return(&types.ClassifyImageResponse{
		Prediction: 3,
		Logits:     [][]float32{{0, 0, 0, 1}},
	}, nil).Times(1)

	var buf bytes.Buffer
	assert.NoError(runClassifyImage(context.Background(), newPrinter(&buf, config.OutputJSON), gateway, path, "MLP/1"))
	assert.Contains(buf.String(), `"prediction": 3`)

	err = runClassifyImage(context.Background(), newPrinter(&buf, config.OutputJSON), gateway, filepath.Join(t.TempDir(), "missing.png"), "")
	assert.True(errors.Is(err, os.ErrNotExist))
}

func TestRunTrain(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	gateway := mocks.NewMockClient(ctl)
	gateway.EXPECT().Train(gomock.Any(), types.TrainRequest{
		RequestID:            "foo",
		CommandLineArguments: "model=cnn",
	}).Return("Server received request for start_training_run", nil).Times(1)

	var buf bytes.Buffer
	assert.NoError(t, runTrain(context.Background(), newPrinter(&buf, config.OutputTable), gateway, "foo", "model=cnn"))
	assert.Equal(t, "Server received request for start_training_run\nrequest_id: foo\n", buf.String())
}

func TestRunStatus(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	gateway := mocks.NewMockClient(ctl)
	gomock.InOrder(
		gateway.EXPECT().TrainingStatus(gomock.Any(), "foo").Return(&types.RunLookup{State: types.RunStatePending}, nil).Times(1),
		gateway.EXPECT().TrainingStatus(gomock.Any(), "foo").Return(&types.RunLookup{State: types.RunStateFound, RunID: "bar"}, nil).Times(1),
	)

	var buf bytes.Buffer
	assert.NoError(t, runStatus(context.Background(), newPrinter(&buf, config.OutputTable), gateway, "foo"))
	assert.NoError(t, runStatus(context.Background(), newPrinter(&buf, config.OutputTable), gateway, "foo"))
	assert.Equal(t, "Training request foo is pending.\nTraining request foo is found with run bar.\n", buf.String())
}

func TestRunWatch(t *testing.T) {
	watchConfig := config.WatchConfig{
		Interval: 10 * time.Millisecond,
		Timeout:  5 * time.Second,
	}

	tests := []struct {
		name   string
		config config.WatchConfig
		mock   func(m *mocks.MockClientMockRecorder)
		expect func(t *testing.T, out string, err error)
	}{
		{
			name:   "training finished",
			config: watchConfig,
			mock: func(m *mocks.MockClientMockRecorder) {
				gomock.InOrder(
					m.TrainingStatus(gomock.Any(), "foo").Return(&types.RunLookup{State: types.RunStatePending}, nil).Times(1),
					m.TrainingStatus(gomock.Any(), "foo").Return(&types.RunLookup{State: types.RunStateFound, RunID: "bar"}, nil).Times(1),
					m.TrainingComplete(gomock.Any(), "foo").Return(true, nil).Times(1),
					m.Summary(gomock.Any()).Return(&types.SummaryResponse{Text: "The registry is empty."}, nil).Times(1),
				)
			},
			expect: func(t *testing.T, out string, err error) {
				assert.NoError(t, err)
				assert.Equal(t, trainingFinishedMessage+"The registry is empty.\n", out)
			},
		},
		{
			name:   "training failed",
			config: watchConfig,
			mock: func(m *mocks.MockClientMockRecorder) {
				m.TrainingStatus(gomock.Any(), "foo").Return(&types.RunLookup{State: types.RunStateFailed, RunID: "bar"}, nil).Times(1)
				m.TrainingComplete(gomock.Any(), "foo").Return(true, nil).Times(1)
			},
			expect: func(t *testing.T, out string, err error) {
				assert.EqualError(t, err, "training request foo failed with run bar")
			},
		},
		{
			name: "timeout",
			config: config.WatchConfig{
				Interval: 10 * time.Millisecond,
				Timeout:  50 * time.Millisecond,
			},
			mock: func(m *mocks.MockClientMockRecorder) {
				m.TrainingStatus(gomock.Any(), "foo").Return(&types.RunLookup{State: types.RunStateNotFound}, nil).AnyTimes()
			},
			expect: func(t *testing.T, out string, err error) {
				assert.ErrorIs(t, err, context.DeadlineExceeded)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			gateway := mocks.NewMockClient(ctl)
			tc.mock(gateway.EXPECT())

			var buf bytes.Buffer
			err := runWatch(context.Background(), newPrinter(&buf, config.OutputTable), io.Discard, gateway, "foo", tc.config)
			tc.expect(t, buf.String(), err)
		})
	}
}
