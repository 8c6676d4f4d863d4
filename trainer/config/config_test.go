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
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/mltemplate/mltemplate/cmd/dependency/base"
	logger "github.com/mltemplate/mltemplate/internal/mllog"
	"github.com/mltemplate/mltemplate/pkg/config"
)

func TestConfig_Load(t *testing.T) {
	expect := &Config{
		Options: base.Options{
			Console:   true,
			Verbose:   true,
			PProfPort: -1,
			Telemetry: base.TelemetryOption{
				Jaeger:      "http://localhost:14268/api/traces",
				ServiceName: "mltemplate-trainer",
			},
		},
		Server: config.ServerConfig{
			Name:   "foo",
			Listen: "127.0.0.1",
			Port:   9082,
			LogRotate: logger.LogRotateConfig{
				MaxSize:    512,
				MaxAge:     5,
				MaxBackups: 3,
				Compress:   true,
			},
		},
		Paths: config.PathsConfig{
			WorkHome: "/tmp/mltemplate",
			Logs:     "/tmp/mltemplate/logs",
		},
		APIKeys: config.APIKeysConfig{
			MLflow: "secret",
		},
		Registry: config.RegistryConfig{
			TrackingURI:        "http://mlflow:5000",
			TrainingExperiment: "training",
			Timeout:            10 * time.Second,
		},
		Cache: config.CacheConfig{
			Local: config.LocalCacheConfig{
				Size: 100,
				TTL:  time.Minute,
			},
		},
		Training: TrainingConfig{
			Command:        "python -m mltemplate.train",
			Dir:            "/srv/mltemplate",
			MaxConcurrency: 2,
			TaskTTL:        time.Hour,
		},
		Metrics: config.MetricsConfig{
			Enable: true,
			Addr:   ":9005",
		},
	}

	cfg := &Config{}
	content, err := os.ReadFile("./testdata/trainer.yaml")
	if err != nil {
		t.Fatal(err)
	}

	if err := yaml.Unmarshal(content, cfg); err != nil {
		t.Fatal(err)
	}

	assert.EqualValues(t, expect, cfg)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mock   func(cfg *Config)
		expect func(t *testing.T, err error)
	}{
		{
			name: "valid config",
			mock: func(cfg *Config) {},
			expect: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "training requires parameter command",
			mock: func(cfg *Config) {
				cfg.Training.Command = "  "
			},
			expect: func(t *testing.T, err error) {
				assert.EqualError(t, err, "training requires parameter command")
			},
		},
		{
			name: "unterminated quote in command",
			mock: func(cfg *Config) {
				cfg.Training.Command = `rye "run`
			},
			expect: func(t *testing.T, err error) {
				assert.EqualError(t, err, "training requires parameter command")
			},
		},
		{
			name: "training requires parameter maxConcurrency",
			mock: func(cfg *Config) {
				cfg.Training.MaxConcurrency = 0
			},
			expect: func(t *testing.T, err error) {
				assert.EqualError(t, err, "training requires parameter maxConcurrency")
			},
		},
		{
			name: "training requires parameter taskTTL",
			mock: func(cfg *Config) {
				cfg.Training.TaskTTL = 0
			},
			expect: func(t *testing.T, err error) {
				assert.EqualError(t, err, "training requires parameter taskTTL")
			},
		},
		{
			name: "metrics requires parameter addr",
			mock: func(cfg *Config) {
				cfg.Metrics.Enable = true
				cfg.Metrics.Addr = ""
			},
			expect: func(t *testing.T, err error) {
				assert.EqualError(t, err, "metrics requires parameter addr")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := New()
			tc.mock(cfg)
			tc.expect(t, cfg.Validate())
		})
	}
}
