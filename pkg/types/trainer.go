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
	"regexp"
	"time"

	"github.com/mltemplate/mltemplate/internal/mlerrors"
)

// requestIDPattern restricts request ids to characters kept verbatim in
// tracking server filters and training overrides.
var requestIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.:-]{0,127}$`)

// ValidateRequestID returns a validation error for ids not matching requestIDPattern.
func ValidateRequestID(requestID string) error {
	if !requestIDPattern.MatchString(requestID) {
		return mlerrors.Validationf("Invalid request_id %q, must match %s.", requestID, requestIDPattern.String())
	}

	return nil
}

// StartTrainingRunAck is returned once a training run is accepted.
const StartTrainingRunAck = "Server received request for start_training_run"

const (
	// TrainingTaskStatePending means the task waits for a free training slot.
	TrainingTaskStatePending = "pending"

	// TrainingTaskStateRunning means the training subprocess is running.
	TrainingTaskStateRunning = "running"

	// TrainingTaskStateSucceeded means the training subprocess exited zero.
	TrainingTaskStateSucceeded = "succeeded"

	// TrainingTaskStateFailed means the training subprocess failed or never started.
	TrainingTaskStateFailed = "failed"
)

type StartTrainingRunRequest struct {
	RequestID            string `json:"request_id,omitempty" binding:"omitempty,max=128"`
	CommandLineArguments string `json:"command_line_arguments" binding:"omitempty"`
}

type TrainingRunRequest struct {
	RequestID string `json:"request_id" binding:"required"`
}

// TrainingTask is the trainer's view of one training request.
type TrainingTask struct {
	RequestID string    `json:"request_id"`
	Arguments []string  `json:"arguments"`
	State     string    `json:"state"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Done reports whether the task reached a terminal state.
func (t TrainingTask) Done() bool {
	return t.State == TrainingTaskStateSucceeded || t.State == TrainingTaskStateFailed
}
