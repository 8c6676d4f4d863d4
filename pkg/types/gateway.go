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

const (
	// DefaultCommandLineArguments are the training arguments used when none are given.
	DefaultCommandLineArguments = "--config-name train.yaml model=mlp dataset=mnist"

	// ChatSender is the sender of gateway chat replies.
	ChatSender = "mltemplate"

	// ChatFallbackText is the reply sent while chat is not supported.
	ChatFallbackText = "Sorry, I don't know how to chat yet."
)

type CommandsResponse struct {
	Commands []string `json:"commands"`
}

type ChatRequest struct {
	Text string `json:"text" binding:"required"`
}

// Message is a chat message.
type Message struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

type BestModelForExperimentRequest struct {
	ExperimentName string `json:"experiment_name" binding:"required"`
}

type ListRunsRequest struct {
	ExperimentName string `json:"experiment_name,omitempty" binding:"omitempty"`
}

type TrainRequest struct {
	RequestID            string `json:"request_id" binding:"required"`
	CommandLineArguments string `json:"command_line_arguments" binding:"omitempty"`
}

type TrainingCompleteRequest struct {
	RequestID string `json:"request_id" binding:"omitempty"`
}

type TrainingStatusRequest struct {
	RequestID string `json:"request_id" binding:"required"`
}

type SummaryResponse struct {
	Text   string   `json:"text"`
	Chunks []string `json:"chunks"`
}

type DebugRequest struct {
	Text string `json:"text,omitempty" binding:"omitempty"`
}
