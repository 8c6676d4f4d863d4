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

package model

import (
	"context"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	inferencev1 "d7y.io/api/v2/pkg/apis/inference/v1"

	"github.com/mltemplate/mltemplate/internal/mlerrors"
	"github.com/mltemplate/mltemplate/pkg/rpc/inference/client/mocks"
	"github.com/mltemplate/mltemplate/pkg/util/imageutils"
)

func TestLoader_Load(t *testing.T) {
	tests := []struct {
		name   string
		mock   func(mc *mocks.MockV1MockRecorder)
		expect func(t *testing.T, m Model, err error)
	}{
		{
			name: "ready",
			mock: func(mc *mocks.MockV1MockRecorder) {
				mc.ModelReady(gomock.Any(), &inferencev1.ModelReadyRequest{Name: "mlp", Version: "1"}).
					Return(&inferencev1.ModelReadyResponse{Ready: true}, nil).Times(1)
			},
			expect: func(t *testing.T, m Model, err error) {
				require.NoError(t, err)
				assert.Equal(t, "mlp", m.Name())
				assert.Equal(t, "1", m.Version())
			},
		},
		{
			name: "not ready",
			mock: func(mc *mocks.MockV1MockRecorder) {
				mc.ModelReady(gomock.Any(), gomock.Any()).Return(&inferencev1.ModelReadyResponse{Ready: false}, nil).Times(1)
			},
			expect: func(t *testing.T, m Model, err error) {
				assert.True(t, mlerrors.CheckError(err, mlerrors.CodeNotFound))
			},
		},
		{
			name: "inference server unavailable",
			mock: func(mc *mocks.MockV1MockRecorder) {
				mc.ModelReady(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused")).Times(1)
			},
			expect: func(t *testing.T, m Model, err error) {
				assert.True(t, mlerrors.CheckError(err, mlerrors.CodeBackendUnavailable))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			client := mocks.NewMockV1(ctl)
			tc.mock(client.EXPECT())

			m, err := NewLoader(client, "input", "logits").Load(context.Background(), "mlp", "1")
			tc.expect(t, m, err)
		})
	}
}

func TestModel_Predict(t *testing.T) {
	arr := imageutils.NewArray(2, 2, 1)
	arr.Data = []float32{0, 1, 2, 3}

	raw := make([]byte, 12)
	for i, v := range []float32{0.5, 2.5, -1} {
		binary.LittleEndian.PutUint32(raw[i*4:], math.Float32bits(v))
	}

	tests := []struct {
		name   string
		resp   *inferencev1.ModelInferResponse
		err    error
		expect func(t *testing.T, logits [][]float32, err error)
	}{
		{
			name: "fp32 contents",
			resp: &inferencev1.ModelInferResponse{
				Outputs: []*inferencev1.ModelInferResponse_InferOutputTensor{
					{
						Name:     "logits",
						Datatype: "FP32",
						Shape:    []int64{1, 3},
						Contents: &inferencev1.InferTensorContents{Fp32Contents: []float32{0.1, 0.7, 0.2}},
					},
				},
			},
			expect: func(t *testing.T, logits [][]float32, err error) {
				require.NoError(t, err)
				assert.Equal(t, [][]float32{{0.1, 0.7, 0.2}}, logits)
				assert.Equal(t, 1, Argmax(logits))
			},
		},
		{
			name: "raw contents",
			resp: &inferencev1.ModelInferResponse{
				Outputs: []*inferencev1.ModelInferResponse_InferOutputTensor{
					{Name: "logits", Datatype: "FP32", Shape: []int64{1, 3}},
				},
				RawOutputContents: [][]byte{raw},
			},
			expect: func(t *testing.T, logits [][]float32, err error) {
				require.NoError(t, err)
				assert.Equal(t, [][]float32{{0.5, 2.5, -1}}, logits)
			},
		},
		{
			name: "missing output",
			resp: &inferencev1.ModelInferResponse{
				Outputs: []*inferencev1.ModelInferResponse_InferOutputTensor{{Name: "other"}},
			},
			expect: func(t *testing.T, logits [][]float32, err error) {
				assert.Error(t, err)
			},
		},
		{
			name: "inference failure",
			err:  errors.New("deadline exceeded"),
			expect: func(t *testing.T, logits [][]float32, err error) {
				assert.True(t, mlerrors.CheckError(err, mlerrors.CodeBackendUnavailable))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			client := mocks.NewMockV1(ctl)
			client.EXPECT().ModelInfer(gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, req *inferencev1.ModelInferRequest, opts ...grpc.CallOption) (*inferencev1.ModelInferResponse, error) {
					assert.Equal(t, "mlp", req.ModelName)
					assert.Equal(t, "1", req.ModelVersion)
					require.Len(t, req.Inputs, 1)
					assert.Equal(t, "input", req.Inputs[0].Name)
					assert.Equal(t, []int64{1, 2, 2}, req.Inputs[0].Shape)
					assert.Equal(t, arr.Data, req.Inputs[0].Contents.Fp32Contents)
					return tc.resp, tc.err
				}).Times(1)

			m := &model{name: "mlp", version: "1", client: client, inputName: "input", outputName: "logits"}
			logits, err := m.Predict(context.Background(), arr)
			tc.expect(t, logits, err)
		})
	}
}

func TestReshape(t *testing.T) {
	out, err := reshape([]float32{1, 2, 3, 4}, []int64{2, 2})
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{1, 2}, {3, 4}}, out)

	out, err = reshape([]float32{1, 2, 3}, []int64{3})
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{1, 2, 3}}, out)

	_, err = reshape([]float32{1, 2, 3}, []int64{2, 2})
	assert.Error(t, err)
}

func TestArgmax(t *testing.T) {
	assert.Equal(t, 0, Argmax(nil))
	assert.Equal(t, 4, Argmax([][]float32{{0, 1, 2}, {3, 9, 5}}))
	assert.Equal(t, 0, Argmax([][]float32{{-3, -5}}))
}
