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

	// Inference configuration.
	Inference InferenceConfig `yaml:"inference" mapstructure:"inference"`

	// Metrics configuration.
	Metrics config.MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

type InferenceConfig struct {
	// Addr is the grpc address of the inference server.
	Addr string `yaml:"addr" mapstructure:"addr"`

	// InputName is the name of the input tensor.
	InputName string `yaml:"inputName" mapstructure:"inputName"`

	// OutputName is the name of the logits tensor.
	OutputName string `yaml:"outputName" mapstructure:"outputName"`

	// Timeout of one inference call.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// New default configuration.
func New() *Config {
	return &Config{
		Server: config.ServerConfig{
			Name:      DefaultServerName,
			Listen:    DefaultServerListen,
			Port:      config.DefaultDeploymentPort,
			LogRotate: logger.DefaultLogRotateConfig(),
		},
		Registry: config.NewRegistryConfig(),
		Cache:    config.NewCacheConfig(),
		Inference: InferenceConfig{
			Addr:       DefaultInferenceAddr,
			InputName:  DefaultInferenceInputName,
			OutputName: DefaultInferenceOutputName,
			Timeout:    DefaultInferenceTimeout,
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

	if cfg.Inference.Addr == "" {
		return errors.New("inference requires parameter addr")
	}

	if cfg.Inference.InputName == "" {
		return errors.New("inference requires parameter inputName")
	}

	if cfg.Inference.OutputName == "" {
		return errors.New("inference requires parameter outputName")
	}

	if cfg.Inference.Timeout <= 0 {
		return errors.New("inference requires parameter timeout")
	}

	return cfg.Metrics.Validate()
}
