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
	// DefaultGatewayPort is default port of the gateway server.
	DefaultGatewayPort = 8081

	// DefaultTrainerPort is default port of the trainer server.
	DefaultTrainerPort = 8082

	// DefaultDeploymentPort is default port of the deployment server.
	DefaultDeploymentPort = 8083
)

const (
	// DefaultGatewayHost is default base url of the gateway server.
	DefaultGatewayHost = "http://localhost:8081/"

	// DefaultTrainerHost is default base url of the trainer server.
	DefaultTrainerHost = "http://localhost:8082/"

	// DefaultDeploymentHost is default base url of the deployment server.
	DefaultDeploymentHost = "http://localhost:8083/"
)

const (
	// DefaultTrackingURI is default uri of the tracking server.
	DefaultTrackingURI = "http://localhost:5000"

	// DefaultTrainingExperiment is default experiment receiving failed runs.
	DefaultTrainingExperiment = "training"

	// DefaultRegistryTimeout is default timeout of a tracking server request.
	DefaultRegistryTimeout = 30 * time.Second
)

const (
	// DefaultLFUCacheSize is default size for lfu cache.
	DefaultLFUCacheSize = 10 * 1000

	// DefaultLFUCacheTTL is default ttl for lfu cache.
	DefaultLFUCacheTTL = 10 * time.Minute

	// DefaultRedisCacheTTL is default ttl for redis cache.
	DefaultRedisCacheTTL = 24 * time.Hour
)

// NewHostsConfig returns hosts pointing at the default local ports.
func NewHostsConfig() HostsConfig {
	return HostsConfig{
		Gateway:    DefaultGatewayHost,
		Deployment: DefaultDeploymentHost,
		Trainer:    DefaultTrainerHost,
	}
}

// NewRegistryConfig returns the default registry configuration.
func NewRegistryConfig() RegistryConfig {
	return RegistryConfig{
		TrackingURI:        DefaultTrackingURI,
		TrainingExperiment: DefaultTrainingExperiment,
		Timeout:            DefaultRegistryTimeout,
	}
}

// NewCacheConfig returns the default cache configuration.
func NewCacheConfig() CacheConfig {
	return CacheConfig{
		Redis: RedisConfig{
			TTL: DefaultRedisCacheTTL,
		},
		Local: LocalCacheConfig{
			Size: DefaultLFUCacheSize,
			TTL:  DefaultLFUCacheTTL,
		},
	}
}
