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
	// DefaultServerName is default name of the trainer server.
	DefaultServerName = "trainer"

	// DefaultServerListen is default listen ip of the trainer server.
	DefaultServerListen = "0.0.0.0"

	// DefaultMetricsAddr is default address for metrics server.
	DefaultMetricsAddr = ":8005"
)

const (
	// DefaultTrainingCommand is default command launching one training run.
	DefaultTrainingCommand = "rye run train"

	// DefaultTrainingMaxConcurrency is default number of training subprocesses running at once.
	DefaultTrainingMaxConcurrency = 1

	// DefaultTrainingTaskTTL is default time a finished task stays in memory.
	DefaultTrainingTaskTTL = 24 * time.Hour
)
