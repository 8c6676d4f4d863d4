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

package types

import (
	"github.com/mltemplate/mltemplate/internal/mlerrors"
)

const (
	// DefaultDataset is the dataset sampled when none is given.
	DefaultDataset = "MNIST"

	// DefaultStage is the dataset split sampled when none is given.
	DefaultStage = "test"
)

type LoadModelRequest struct {
	Model   string `json:"model,omitempty" binding:"omitempty,max=256"`
	Version string `json:"version,omitempty" binding:"omitempty,max=64"`
	RunID   string `json:"run_id,omitempty" binding:"omitempty,max=64"`
}

// Validate requires either model and version or run id.
func (r LoadModelRequest) Validate() error {
	if (r.Model == "" || r.Version == "") && r.RunID == "" {
		return mlerrors.ErrInvalidModelSelector
	}

	return nil
}

type ClassifyIDRequest struct {
	Dataset string `json:"dataset" binding:"omitempty"`
	Stage   string `json:"stage" binding:"omitempty,oneof=train test"`
	Idx     int    `json:"idx" binding:"gte=0"`
	Model   string `json:"model,omitempty" binding:"omitempty"`
}

// NewClassifyIDRequest returns a request with dataset and stage defaults.
func NewClassifyIDRequest() ClassifyIDRequest {
	return ClassifyIDRequest{
		Dataset: DefaultDataset,
		Stage:   DefaultStage,
	}
}

type ClassifyIDResponse struct {
	Image      string      `json:"image"`
	Label      int         `json:"label"`
	Prediction int         `json:"prediction"`
	Logits     [][]float32 `json:"logits"`
}

type ClassifyImageRequest struct {
	Image string `json:"image" binding:"required,base64"`
	Model string `json:"model,omitempty" binding:"omitempty"`
}

type ClassifyImageResponse struct {
	Prediction int         `json:"prediction"`
	Logits     [][]float32 `json:"logits"`
}
