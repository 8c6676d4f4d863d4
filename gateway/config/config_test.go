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
				ServiceName: "mltemplate-gateway",
			},
		},
		Server: config.ServerConfig{
			Name:   "foo",
			Listen: "127.0.0.1",
			Port:   9081,
			LogRotate: logger.LogRotateConfig{
				MaxSize:    512,
				MaxAge:     5,
				MaxBackups: 3,
				Compress:   true,
			},
		},
		Hosts: config.HostsConfig{
			Gateway:    "http://gateway:8081/",
			Deployment: "http://deployment:8083/",
			Trainer:    "http://trainer:8082/",
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
		Debug: DebugConfig{
			LogTailSize: 1024,
		},
		Metrics: config.MetricsConfig{
			Enable: true,
			Addr:   ":9004",
		},
	}

	cfg := &Config{}
	content, err := os.ReadFile("./testdata/gateway.yaml")
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
			name: "hosts requires parameter trainer",
			mock: func(cfg *Config) {
				cfg.Hosts.Trainer = ""
			},
			expect: func(t *testing.T, err error) {
				assert.EqualError(t, err, "hosts requires parameter trainer")
			},
		},
		{
			name: "local cache requires parameter size",
			mock: func(cfg *Config) {
				cfg.Cache.Local.Size = 0
			},
			expect: func(t *testing.T, err error) {
				assert.EqualError(t, err, "local cache requires parameter size")
			},
		},
		{
			name: "debug requires parameter logTailSize",
			mock: func(cfg *Config) {
				cfg.Debug.LogTailSize = 0
			},
			expect: func(t *testing.T, err error) {
				assert.EqualError(t, err, "debug requires parameter logTailSize")
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
