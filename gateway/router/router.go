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

	"github.com/mltemplate/mltemplate/gateway/config"
	"github.com/mltemplate/mltemplate/gateway/handlers"
	"github.com/mltemplate/mltemplate/gateway/service"
	"github.com/mltemplate/mltemplate/pkg/rest"
	"github.com/mltemplate/mltemplate/pkg/types"
)

func Init(cfg *config.Config, service service.Service) *gin.Engine {
	r := rest.New(rest.Options{
		Verbose:     cfg.Verbose,
		Subsystem:   types.GatewayMetricsName,
		ServiceName: otelServiceName(cfg),
	})
	h := handlers.New(service)

	// Chat
	r.POST("/commands", h.Commands)
	r.POST("/chat", h.Chat)
	r.POST("/debug", h.Debug)

	// Registry
	r.POST("/models", h.Models)
	r.POST("/experiments", h.Experiments)
	r.POST("/fetch-experiments", h.ListExperiments)
	r.POST("/fetch-runs", h.ListRuns)
	r.POST("/fetch-models", h.ListModels)
	r.POST("/best-model-for-experiment", h.BestModelForExperiment)
	r.POST("/summary", h.Summary)

	// Deployment
	r.POST("/load-model", h.LoadModel)
	r.POST("/classify-id", h.ClassifyID)
	r.POST("/classify-image", h.ClassifyImage)

	// Training
	r.POST("/train", h.Train)
	r.POST("/training-complete", h.TrainingComplete)
	r.POST("/training-status", h.TrainingStatus)

	return r
}

func otelServiceName(cfg *config.Config) string {
	if cfg.Telemetry.Jaeger == "" {
		return ""
	}

	return cfg.Telemetry.ServiceName
}
