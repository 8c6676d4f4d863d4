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

package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mltemplate/mltemplate/pkg/rest"
	"github.com/mltemplate/mltemplate/pkg/types"
	"github.com/mltemplate/mltemplate/trainer/config"
	"github.com/mltemplate/mltemplate/trainer/handlers"
	"github.com/mltemplate/mltemplate/trainer/service"
)

func Init(cfg *config.Config, service service.Service) *gin.Engine {
	r := rest.New(rest.Options{
		Verbose:     cfg.Verbose,
		Subsystem:   types.TrainerMetricsName,
		ServiceName: otelServiceName(cfg),
	})
	h := handlers.New(service)

	// Training
	r.POST("/start_training_run", h.StartTrainingRun)
	r.POST("/training_run", h.TrainingRun)

	return r
}

func otelServiceName(cfg *config.Config) string {
	if cfg.Telemetry.Jaeger == "" {
		return ""
	}

	return cfg.Telemetry.ServiceName
}
