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

	"github.com/mltemplate/mltemplate/cmd/dependency/base"
	logger "github.com/mltemplate/mltemplate/internal/mllog"
	"github.com/mltemplate/mltemplate/pkg/config"
)

type Config struct {
	// Base options.
	base.Options `yaml:",inline" mapstructure:",squash"`

	// Server configuration.
	Server config.ServerConfig `yaml:"server" mapstructure:"server"`

	// Hosts of the downstream servers.
	Hosts config.HostsConfig `yaml:"hosts" mapstructure:"hosts"`

	// Paths configuration.
	Paths config.PathsConfig `yaml:"paths" mapstructure:"paths"`

	// API keys configuration.
	APIKeys config.APIKeysConfig `yaml:"apiKeys" mapstructure:"apiKeys"`

	// Registry configuration.
	Registry config.RegistryConfig `yaml:"registry" mapstructure:"registry"`

	// Cache configuration.
	Cache config.CacheConfig `yaml:"cache" mapstructure:"cache"`

	// Debug configuration.
	Debug DebugConfig `yaml:"debug" mapstructure:"debug"`

	// Metrics configuration.
	Metrics config.MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

type DebugConfig struct {
	// LogTailSize is the number of bytes read from the end of each log file.
	LogTailSize int64 `yaml:"logTailSize" mapstructure:"logTailSize"`
}

// New default configuration.
func New() *Config {
	return &Config{
		Server: config.ServerConfig{
			Name:      DefaultServerName,
			Listen:    DefaultServerListen,
			Port:      config.DefaultGatewayPort,
			LogRotate: logger.DefaultLogRotateConfig(),
		},
		Hosts:    config.NewHostsConfig(),
		Registry: config.NewRegistryConfig(),
		Cache:    config.NewCacheConfig(),
		Debug: DebugConfig{
			LogTailSize: DefaultDebugLogTailSize,
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

	if err := cfg.Hosts.Validate(); err != nil {
		return err
	}

	if err := cfg.Registry.Validate(); err != nil {
		return err
	}

	if err := cfg.Cache.Validate(); err != nil {
		return err
	}

	if cfg.Debug.LogTailSize <= 0 {
		return errors.New("debug requires parameter logTailSize")
	}

	return cfg.Metrics.Validate()
}
