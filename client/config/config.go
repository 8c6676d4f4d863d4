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


// Package config is the configuration of mltctl.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/mltemplate/mltemplate/cmd/dependency/base"
	"github.com/mltemplate/mltemplate/pkg/config"
)

type Config struct {
	// Base options.
	base.Options `yaml:",inline" mapstructure:",squash"`

	// Gateway server base url.
	Gateway string `yaml:"gateway" mapstructure:"gateway"`

	// Paths configuration.
	Paths config.PathsConfig `yaml:"paths" mapstructure:"paths"`

	// Output format of results.
	Output string `yaml:"output" mapstructure:"output"`

	// Watch configuration.
	Watch WatchConfig `yaml:"watch" mapstructure:"watch"`
}

type WatchConfig struct {
	// Interval between two training status lookups.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// Timeout of waiting for a training run.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// New default configuration.
func New() *Config {
	return &Config{
		Gateway: config.DefaultGatewayHost,
		Output:  OutputTable,
		Watch: WatchConfig{
			Interval: DefaultWatchInterval,
			Timeout:  DefaultWatchTimeout,
		},
	}
}

// Validate config parameters.
func (cfg *Config) Validate() error {
	if cfg.Gateway == "" {
		return errors.New("mltctl requires parameter gateway")
	}

	if _, err := config.ParseHTTPURL(cfg.Gateway); err != nil {
		return fmt.Errorf("mltctl gateway is invalid: %w", err)
	}

	switch cfg.Output {
	case OutputTable, OutputJSON, OutputCSV:
	default:
		return fmt.Errorf("mltctl output %q is invalid, must be one of table, json, csv", cfg.Output)
	}

	if cfg.Watch.Interval <= 0 {
		return errors.New("watch requires parameter interval")
	}

	if cfg.Watch.Timeout <= 0 {
		return errors.New("watch requires parameter timeout")
	}

	return nil
}
