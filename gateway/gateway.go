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

package gateway

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	deploymentclient "github.com/mltemplate/mltemplate/client/deployment"
	trainerclient "github.com/mltemplate/mltemplate/client/trainer"
	"github.com/mltemplate/mltemplate/gateway/config"
	"github.com/mltemplate/mltemplate/gateway/metrics"
	"github.com/mltemplate/mltemplate/gateway/router"
	"github.com/mltemplate/mltemplate/gateway/service"
	logger "github.com/mltemplate/mltemplate/internal/mllog"
	"github.com/mltemplate/mltemplate/pkg/mlpath"
	"github.com/mltemplate/mltemplate/registry"
	"github.com/mltemplate/mltemplate/registry/mlflow"
)

const (
	gracefulStopTimeout = 10 * time.Second
)

type Server struct {
	// Server configuration.
	config *config.Config

	// REST server.
	restServer *http.Server

	// Metrics server.
	metricsServer *http.Server
}

func New(ctx context.Context, cfg *config.Config, d mlpath.Mlpath) (*Server, error) {
	s := &Server{config: cfg}

	// Initialize registry.
	mlflowClient := mlflow.New(cfg.Registry.TrackingURI,
		mlflow.WithToken(cfg.APIKeys.MLflow),
		mlflow.WithTimeout(cfg.Registry.Timeout),
	)
	reg := registry.New(mlflowClient,
		registry.WithCache(registry.NewCache(cfg.Cache)),
		registry.WithTrainingExperiment(cfg.Registry.TrainingExperiment),
	)

	// Registry may come up after the gateway server.
	if err := reg.Refresh(ctx); err != nil {
		logger.Warnf("refresh registry failed: %s", err.Error())
	}

	// Initialize service.
	svc := service.New(
		reg,
		deploymentclient.New(cfg.Hosts.Deployment),
		trainerclient.New(cfg.Hosts.Trainer),
		service.NewDiagnoser(d.LogDir(), cfg.Debug.LogTailSize),
	)

	// Initialize REST server.
	s.restServer = &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: router.Init(cfg, svc),
	}

	// Initialize metrics.
	if cfg.Metrics.Enable {
		s.metricsServer = metrics.New(cfg.Metrics)
	}

	return s, nil
}

func (s *Server) Serve() error {
	g := errgroup.Group{}

	// Started metrics server.
	if s.metricsServer != nil {
		g.Go(func() error {
			logger.Infof("started metrics server at %s", s.metricsServer.Addr)
			if err := s.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Errorf("metrics server closed unexpect: %s", err.Error())
				return err
			}

			return nil
		})
	}

	// Started REST server.
	g.Go(func() error {
		logger.Infof("started rest server at %s", s.restServer.Addr)
		if err := s.restServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("rest server closed unexpect: %s", err.Error())
			return err
		}

		return nil
	})

	return g.Wait()
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), gracefulStopTimeout)
	defer cancel()

	// Stop REST server.
	if err := s.restServer.Shutdown(ctx); err != nil {
		logger.Errorf("rest server failed to stop: %s", err.Error())
	} else {
		logger.Info("rest server closed under request")
	}

	// Stop metrics server.
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(ctx); err != nil {
			logger.Errorf("metrics server failed to stop: %s", err.Error())
		} else {
			logger.Info("metrics server closed under request")
		}
	}
}
