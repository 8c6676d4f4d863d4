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

	"github.com/mltemplate/mltemplate/pkg/watch"
)

const (
	// DefaultWatchInterval is default interval between two training status lookups.
	DefaultWatchInterval = watch.DefaultInterval

	// DefaultWatchTimeout is default time to wait for a training run.
	DefaultWatchTimeout = 24 * time.Hour
)

const (
	// OutputTable renders results as text tables.
	OutputTable = "table"

	// OutputJSON renders results as json.
	OutputJSON = "json"

	// OutputCSV renders results as csv, only supported by models.
	OutputCSV = "csv"
)
