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

// Package rest builds the gin engine shared by the servers.
package rest

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/mcuadros/go-gin-prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/mltemplate/mltemplate/internal/middlewares"
	logger "github.com/mltemplate/mltemplate/internal/mllog"
	"github.com/mltemplate/mltemplate/pkg/types"
)

// HealthPath is the liveness route of every server.
const HealthPath = "/healthy"

type Options struct {
	// Verbose keeps gin in debug mode.
	Verbose bool

	// Subsystem of the request metrics.
	Subsystem string

	// ServiceName of the spans, tracing is off when empty.
	ServiceName string
}

// New returns an engine with metrics, tracing, access logs, recovery, error
// mapping and cors installed, serving the health route.
func New(opts Options) *gin.Engine {
	if !opts.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Prometheus metrics.
	p := ginprometheus.NewPrometheus(types.MetricsNamespace + "_" + opts.Subsystem)
	// URL removes query string.
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		return c.Request.URL.Path
	}
	p.Use(r)

	// Opentelemetry
	if opts.ServiceName != "" {
		r.Use(otelgin.Middleware(opts.ServiceName))
	}

	// CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true

	// Middleware
	r.Use(ginzap.Ginzap(logger.GinLogger.Desugar(), time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger.GinLogger.Desugar(), true))
	r.Use(middlewares.Error())
	r.Use(cors.New(corsConfig))

	// Health Check
	r.GET(HealthPath, GetHealth)

	return r
}

func GetHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, "OK")
}
