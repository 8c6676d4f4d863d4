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
	"encoding/json"
)

// ModelRecord describes one registered model version and the run that produced it.
type ModelRecord struct {
	Name         string  `json:"name" csv:"name"`
	Version      string  `json:"version" csv:"version"`
	Dataset      string  `json:"dataset" csv:"dataset"`
	Status       string  `json:"status" csv:"status"`
	TrainAcc     float64 `json:"train_acc" csv:"train_acc"`
	ValAcc       float64 `json:"val_acc" csv:"val_acc"`
	TestAcc      float64 `json:"test_acc" csv:"test_acc"`
	Params       Params  `json:"params" csv:"params"`
	ExperimentID string  `json:"experiment_id" csv:"experiment_id"`
	RunID        string  `json:"run_id" csv:"run_id"`
}

// NameAndVersion returns the "name/version" key of the model.
func (m ModelRecord) NameAndVersion() string {
	return m.Name + "/" + m.Version
}

// Params holds model hyper parameters.
type Params map[string]any

// MarshalCSV encodes params as a json object.
func (p Params) MarshalCSV() (string, error) {
	if p == nil {
		return "{}", nil
	}

	b, err := json.Marshal(map[string]any(p))
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// UnmarshalCSV decodes params from a json object.
func (p *Params) UnmarshalCSV(s string) error {
	params := map[string]any{}
	if s != "" {
		if err := json.Unmarshal([]byte(s), &params); err != nil {
			return err
		}
	}

	*p = params
	return nil
}

// ExperimentRecord is a named grouping of runs.
type ExperimentRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RunRecord is one training run as tracked by the tracking server.
type RunRecord struct {
	RunID        string             `json:"run_id"`
	ExperimentID string             `json:"experiment_id"`
	Status       string             `json:"status"`
	StartTime    int64              `json:"start_time"`
	EndTime      int64              `json:"end_time,omitempty"`
	Metrics      map[string]float64 `json:"metrics"`
	Params       map[string]string  `json:"params"`
	Tags         map[string]string  `json:"tags"`
}

// ModelVersionRecord is a registered model version pointer.
type ModelVersionRecord struct {
	Model   string `json:"model"`
	Version string `json:"version"`
	RunID   string `json:"run_id"`
	Status  string `json:"status"`
}

// RunState is the state of a run looked up by request id.
type RunState string

const (
	// RunStateNotFound means no run carries the request id.
	RunStateNotFound RunState = "not_found"

	// RunStatePending means the run exists but has not finished.
	RunStatePending RunState = "pending"

	// RunStateFound means the run finished.
	RunStateFound RunState = "found"

	// RunStateFailed means the run failed or was killed.
	RunStateFailed RunState = "failed"
)

// RunLookup is the result of looking up a run by request id.
type RunLookup struct {
	State RunState `json:"state"`
	RunID string   `json:"run_id,omitempty"`
}

// Done reports whether the run reached a terminal state.
func (r RunLookup) Done() bool {
	return r.State == RunStateFound || r.State == RunStateFailed
}
