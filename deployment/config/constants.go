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

package config

import (
	"time"
)

const (
	// DefaultServerName is default name of the deployment server.
	DefaultServerName = "deployment"

	// DefaultServerListen is default listen ip of the deployment server.
	DefaultServerListen = "0.0.0.0"

	// DefaultMetricsAddr is default address for metrics server.
	DefaultMetricsAddr = ":8003"
)

const (
	// DefaultInferenceAddr is default grpc address of the inference server.
	DefaultInferenceAddr = "127.0.0.1:8001"

	// DefaultInferenceInputName is default name of the input tensor.
	DefaultInferenceInputName = "input"

	// DefaultInferenceOutputName is default name of the logits tensor.
	DefaultInferenceOutputName = "logits"

	// DefaultInferenceTimeout is default timeout of one inference call.
	DefaultInferenceTimeout = 60 * time.Second
)
