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

//go:generate mockgen -destination mocks/model_mock.go -source model.go -package mocks

package model

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"

	inferencev1 "d7y.io/api/v2/pkg/apis/inference/v1"

	"github.com/mltemplate/mltemplate/internal/mlerrors"
	logger "github.com/mltemplate/mltemplate/internal/mllog"
	inferenceclient "github.com/mltemplate/mltemplate/pkg/rpc/inference/client"
	"github.com/mltemplate/mltemplate/pkg/util/imageutils"
)

const (
	// fp32Datatype is the datatype of input and output tensors.
	fp32Datatype = "FP32"
)

// Model is a model served by the inference server.
type Model interface {
	// Name returns the registered model name.
	Name() string

	// Version returns the registered model version.
	Version() string

	// Predict runs the model on a batch of one image and returns the logits.
	Predict(context.Context, *imageutils.Array) ([][]float32, error)
}

// Loader makes registered models available for prediction.
type Loader interface {
	// Load returns the model once the inference server reports it ready.
	Load(ctx context.Context, name, version string) (Model, error)
}

type loader struct {
	client     inferenceclient.V1
	inputName  string
	outputName string
}

// NewLoader returns a loader of models served by the inference server.
func NewLoader(client inferenceclient.V1, inputName, outputName string) Loader {
	return &loader{
		client:     client,
		inputName:  inputName,
		outputName: outputName,
	}
}

func (l *loader) Load(ctx context.Context, name, version string) (Model, error) {
	log := logger.WithModel(name, version)
	resp, err := l.client.ModelReady(ctx, &inferencev1.ModelReadyRequest{
		Name:    name,
		Version: version,
	})
	if err != nil {
		log.Errorf("model ready failed: %s", err.Error())
		return nil, mlerrors.Wrap(mlerrors.CodeBackendUnavailable, err, "inference server unavailable")
	}

	if !resp.Ready {
		return nil, mlerrors.NotFoundf("model %s/%s is not ready", name, version)
	}

	log.Info("model is ready")
	return &model{
		name:       name,
		version:    version,
		client:     l.client,
		inputName:  l.inputName,
		outputName: l.outputName,
	}, nil
}

type model struct {
	name       string
	version    string
	client     inferenceclient.V1
	inputName  string
	outputName string
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Version() string {
	return m.version
}

func (m *model) Predict(ctx context.Context, arr *imageutils.Array) ([][]float32, error) {
	shape := append([]int64{1}, arr.Shape()...)
	resp, err := m.client.ModelInfer(ctx, &inferencev1.ModelInferRequest{
		ModelName:    m.name,
		ModelVersion: m.version,
		Inputs: []*inferencev1.ModelInferRequest_InferInputTensor{
			{
				Name:     m.inputName,
				Datatype: fp32Datatype,
				Shape:    shape,
				Contents: &inferencev1.InferTensorContents{
					Fp32Contents: arr.Data,
				},
			},
		},
		Outputs: []*inferencev1.ModelInferRequest_InferRequestedOutputTensor{
			{
				Name: m.outputName,
			},
		},
	})
	if err != nil {
		logger.WithModel(m.name, m.version).Errorf("model infer failed: %s", err.Error())
		return nil, mlerrors.Wrap(mlerrors.CodeBackendUnavailable, err, "inference server unavailable")
	}

	return m.logits(resp)
}

// logits reads the requested output tensor as a batch of rows.
func (m *model) logits(resp *inferencev1.ModelInferResponse) ([][]float32, error) {
	for i, output := range resp.Outputs {
		if output.Name != m.outputName {
			continue
		}

		var data []float32
		switch {
		case output.Contents != nil && len(output.Contents.Fp32Contents) > 0:
			data = output.Contents.Fp32Contents
		case i < len(resp.RawOutputContents):
			raw := resp.RawOutputContents[i]
			if len(raw)%4 != 0 {
				return nil, fmt.Errorf("output %s has %d raw bytes, not a multiple of 4", output.Name, len(raw))
			}

			data = make([]float32, len(raw)/4)
			for j := range data {
				data[j] = math.Float32frombits(binary.LittleEndian.Uint32(raw[j*4:]))
			}
		default:
			return nil, fmt.Errorf("output %s has no contents", output.Name)
		}

		return reshape(data, output.Shape)
	}

	return nil, fmt.Errorf("output %s not found in response of model %s/%s", m.outputName, m.name, m.version)
}

// reshape splits data into rows along the first dimension of shape.
func reshape(data []float32, shape []int64) ([][]float32, error) {
	rows := 1
	if len(shape) > 1 && shape[0] > 0 {
		rows = int(shape[0])
	}

	if len(data)%rows != 0 {
		return nil, fmt.Errorf("cannot reshape %d values into %d rows", len(data), rows)
	}

	cols := len(data) / rows
	out := make([][]float32, rows)
	for r := range out {
		out[r] = data[r*cols : (r+1)*cols]
	}

	return out, nil
}

// Argmax returns the index of the largest value of the flattened logits.
func Argmax(logits [][]float32) int {
	best, idx, i := float32(math.Inf(-1)), 0, 0
	for _, row := range logits {
		for _, v := range row {
			if v > best {
				best, idx = v, i
			}
			i++
		}
	}

	return idx
}
