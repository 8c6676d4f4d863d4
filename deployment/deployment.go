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

package deployment

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mltemplate/mltemplate/deployment/config"
	"github.com/mltemplate/mltemplate/deployment/dataset"
	"github.com/mltemplate/mltemplate/deployment/metrics"
	"github.com/mltemplate/mltemplate/deployment/model"
	"github.com/mltemplate/mltemplate/deployment/router"
	"github.com/mltemplate/mltemplate/deployment/service"
	logger "github.com/mltemplate/mltemplate/internal/mllog"
	"github.com/mltemplate/mltemplate/pkg/mlpath"
	inferenceclient "github.com/mltemplate/mltemplate/pkg/rpc/inference/client"
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

	// Inference client.
	inferenceClient inferenceclient.V1
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

	// Registry may come up after the deployment server, unknown run ids refresh it again.
	if err := reg.Refresh(ctx); err != nil {
		logger.Warnf("refresh registry failed: %s", err.Error())
	}

	// Initialize inference client.
	inferenceClient, err := inferenceclient.GetV1(ctx, cfg.Inference.Addr, cfg.Inference.Timeout)
	if err != nil {
		return nil, err
	}
	s.inferenceClient = inferenceClient

	// Initialize service.
	svc := service.New(
		reg,
		model.NewLoader(inferenceClient, cfg.Inference.InputName, cfg.Inference.OutputName),
		model.NewCache(),
		dataset.New(d.DatasetDir()),
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

	// Close inference client.
	if err := s.inferenceClient.Close(); err != nil {
		logger.Errorf("inference client failed to close: %s", err.Error())
	}
}
