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
	"errors"
	"time"

	"github.com/google/shlex"

	"github.com/mltemplate/mltemplate/cmd/dependency/base"
	logger "github.com/mltemplate/mltemplate/internal/mllog"
	"github.com/mltemplate/mltemplate/pkg/config"
)

type Config struct {
	// Base options.
	base.Options `yaml:",inline" mapstructure:",squash"`

	// Server configuration.
	Server config.ServerConfig `yaml:"server" mapstructure:"server"`

	// Paths configuration.
	Paths config.PathsConfig `yaml:"paths" mapstructure:"paths"`

	// API keys configuration.
	APIKeys config.APIKeysConfig `yaml:"apiKeys" mapstructure:"apiKeys"`

	// Registry configuration.
	Registry config.RegistryConfig `yaml:"registry" mapstructure:"registry"`

	// Cache configuration.
	Cache config.CacheConfig `yaml:"cache" mapstructure:"cache"`

	// Training configuration.
	Training TrainingConfig `yaml:"training" mapstructure:"training"`

	// Metrics configuration.
	Metrics config.MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

type TrainingConfig struct {
	// Command launches one training run, arguments of the request are appended.
	Command string `yaml:"command" mapstructure:"command"`

	// Dir is the working directory of the training subprocess,
	// empty means the working directory of the trainer.
	Dir string `yaml:"dir" mapstructure:"dir"`

	// MaxConcurrency is the number of training subprocesses running at once.
	MaxConcurrency int64 `yaml:"maxConcurrency" mapstructure:"maxConcurrency"`

	// TaskTTL is the time a finished task stays in memory.
	TaskTTL time.Duration `yaml:"taskTTL" mapstructure:"taskTTL"`
}

// New default configuration.
func New() *Config {
	return &Config{
		Server: config.ServerConfig{
			Name:      DefaultServerName,
			Listen:    DefaultServerListen,
			Port:      config.DefaultTrainerPort,
			LogRotate: logger.DefaultLogRotateConfig(),
		},
		Registry: config.NewRegistryConfig(),
		Cache:    config.NewCacheConfig(),
		Training: TrainingConfig{
			Command:        DefaultTrainingCommand,
			MaxConcurrency: DefaultTrainingMaxConcurrency,
			TaskTTL:        DefaultTrainingTaskTTL,
		},
		Metrics: config.MetricsConfig{
			Enable: false,
			Addr:   DefaultMetricsAddr,
		},
	}
}

// Validate config parameters.
func (cfg *Config) Validate() error {
	if err := cfg.Server.Validate(); err != nil {
		return err
	}

	if err := cfg.Registry.Validate(); err != nil {
		return err
	}

	if err := cfg.Cache.Validate(); err != nil {
		return err
	}

	command, err := shlex.Split(cfg.Training.Command)
	if err != nil || len(command) == 0 {
		return errors.New("training requires parameter command")
	}

	if cfg.Training.MaxConcurrency <= 0 {
		return errors.New("training requires parameter maxConcurrency")
	}

	if cfg.Training.TaskTTL <= 0 {
		return errors.New("training requires parameter taskTTL")
	}

	return cfg.Metrics.Validate()
}
