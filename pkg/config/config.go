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

// Package config holds the configuration sections shared by every service.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	logger "github.com/mltemplate/mltemplate/internal/mllog"
	"github.com/mltemplate/mltemplate/pkg/mlpath"
)

type ServerConfig struct {
	// Server name.
	Name string `yaml:"name" mapstructure:"name"`

	// Listen ip.
	Listen string `yaml:"listen" mapstructure:"listen"`

	// Listen port.
	Port int `yaml:"port" mapstructure:"port"`

	// Log rotation of file loggers.
	LogRotate logger.LogRotateConfig `yaml:"logRotate" mapstructure:"logRotate"`
}

func (s ServerConfig) Validate() error {
	if s.Name == "" {
		return errors.New("server requires parameter name")
	}

	if s.Port <= 0 {
		return errors.New("server requires parameter port")
	}

	return nil
}

// Addr returns the listen address of the server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Listen, s.Port)
}

// ParseHTTPURL parses an absolute http or https url with a host.
func ParseHTTPURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q in %q", u.Scheme, raw)
	}

	if u.Host == "" {
		return nil, fmt.Errorf("missing host in %q", raw)
	}

	return u, nil
}

type HostsConfig struct {
	// Gateway server base url.
	Gateway string `yaml:"gateway" mapstructure:"gateway"`

	// Deployment server base url.
	Deployment string `yaml:"deployment" mapstructure:"deployment"`

	// Trainer server base url.
	Trainer string `yaml:"trainer" mapstructure:"trainer"`
}

func (h HostsConfig) Validate() error {
	for name, host := range map[string]string{
		"gateway":    h.Gateway,
		"deployment": h.Deployment,
		"trainer":    h.Trainer,
	} {
		if host == "" {
			return fmt.Errorf("hosts requires parameter %s", name)
		}

		if _, err := ParseHTTPURL(host); err != nil {
			return fmt.Errorf("hosts %s is invalid: %w", name, err)
		}
	}

	return nil
}

type PathsConfig struct {
	// Work home directory.
	WorkHome string `yaml:"workHome" mapstructure:"workHome"`

	// Log directory.
	Logs string `yaml:"logs" mapstructure:"logs"`

	// Dataset directory.
	Datasets string `yaml:"datasets" mapstructure:"datasets"`

	// Directory for temporary files.
	Temp string `yaml:"temp" mapstructure:"temp"`
}

// Init expands and creates the configured directories.
func (p PathsConfig) Init() (mlpath.Mlpath, error) {
	return mlpath.New(
		mlpath.WithWorkHome(p.WorkHome),
		mlpath.WithLogDir(p.Logs),
		mlpath.WithDatasetDir(p.Datasets),
		mlpath.WithTempDir(p.Temp),
	)
}

type APIKeysConfig struct {
	// Bearer token sent to the tracking server.
	MLflow string `yaml:"mlflow" mapstructure:"mlflow"`
}

type RegistryConfig struct {
	// Tracking server uri.
	TrackingURI string `yaml:"trackingURI" mapstructure:"trackingURI"`

	// Experiment receiving failed training runs.
	TrainingExperiment string `yaml:"trainingExperiment" mapstructure:"trainingExperiment"`

	// Timeout of a single tracking server request.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

func (r RegistryConfig) Validate() error {
	if r.TrackingURI == "" {
		return errors.New("registry requires parameter trackingURI")
	}

	if _, err := ParseHTTPURL(r.TrackingURI); err != nil {
		return fmt.Errorf("registry trackingURI is invalid: %w", err)
	}

	if r.TrainingExperiment == "" {
		return errors.New("registry requires parameter trainingExperiment")
	}

	if r.Timeout <= 0 {
		return errors.New("registry requires parameter timeout")
	}

	return nil
}

type CacheConfig struct {
	// Redis configuration, local cache only when addrs is empty.
	Redis RedisConfig `yaml:"redis" mapstructure:"redis"`

	// Local cache configuration.
	Local LocalCacheConfig `yaml:"local" mapstructure:"local"`
}

func (c CacheConfig) Validate() error {
	if c.Local.Size <= 0 {
		return errors.New("local cache requires parameter size")
	}

	if c.Local.TTL <= 0 {
		return errors.New("local cache requires parameter ttl")
	}

	return nil
}

type RedisConfig struct {
	// Redis addresses.
	Addrs []string `yaml:"addrs" mapstructure:"addrs"`

	// Redis password.
	Password string `yaml:"password" mapstructure:"password"`

	// Redis DB.
	DB int `yaml:"db" mapstructure:"db"`

	// Redis ttl of cached runs.
	TTL time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

type LocalCacheConfig struct {
	// Size of LFU cache.
	Size int `yaml:"size" mapstructure:"size"`

	// Cache TTL.
	TTL time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

type MetricsConfig struct {
	// Enable metrics service.
	Enable bool `yaml:"enable" mapstructure:"enable"`

	// Metrics service address.
	Addr string `yaml:"addr" mapstructure:"addr"`
}

func (m MetricsConfig) Validate() error {
	if m.Enable && m.Addr == "" {
		return errors.New("metrics requires parameter addr")
	}

	return nil
}
