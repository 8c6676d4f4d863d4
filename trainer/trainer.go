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

package trainer

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	logger "github.com/mltemplate/mltemplate/internal/mllog"
	"github.com/mltemplate/mltemplate/pkg/gc"
	"github.com/mltemplate/mltemplate/pkg/mlpath"
	"github.com/mltemplate/mltemplate/registry"
	"github.com/mltemplate/mltemplate/registry/mlflow"
	"github.com/mltemplate/mltemplate/trainer/config"
	"github.com/mltemplate/mltemplate/trainer/metrics"
	"github.com/mltemplate/mltemplate/trainer/router"
	"github.com/mltemplate/mltemplate/trainer/service"
	"github.com/mltemplate/mltemplate/trainer/storage"
	"github.com/mltemplate/mltemplate/trainer/training"
)

const (
	gracefulStopTimeout = 10 * time.Second

	// storageDirName is the directory below the work home holding finished tasks.
	storageDirName = "trainer"

	// trainingGCID is the id of the finished task collection.
	trainingGCID = "training"

	// trainingGCInterval is the interval of the finished task collection.
	trainingGCInterval = time.Minute

	// trainingGCTimeout is the timeout of one finished task collection.
	trainingGCTimeout = 10 * time.Second
)

type Server struct {
	// Server configuration.
	config *config.Config

	// REST server.
	restServer *http.Server

	// Metrics server.
	metricsServer *http.Server

	// Training runs.
	training training.Training

	// GC server.
	gc gc.GC
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

	// Initialize storage.
	storageDir := filepath.Join(d.WorkHome(), storageDirName)
	if err := os.MkdirAll(storageDir, 0700); err != nil {
		return nil, err
	}

	// Initialize training.
	s.training = training.New(cfg.Training, reg, training.NewCommandRunner(cfg.Training.Dir), storage.New(storageDir))

	// Initialize GC.
	var err error
	s.gc, err = gc.New(gc.WithInterval(trainingGCInterval), gc.WithTimeout(trainingGCTimeout))
	if err != nil {
		return nil, err
	}
	s.gc.Add(trainingGCID, s.training)

	// Initialize REST server.
	s.restServer = &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: router.Init(cfg, service.New(s.training)),
	}

	// Initialize metrics.
	if cfg.Metrics.Enable {
		s.metricsServer = metrics.New(cfg.Metrics)
	}

	return s, nil
}

func (s *Server) Serve() error {
	// Started GC server.
	s.gc.Serve()
	logger.Info("started gc server")

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

	// Stop training subprocesses.
	s.training.Stop()
	logger.Info("training runs stopped")

	// Stop GC.
	s.gc.Stop()
	logger.Info("gc closed")

	// Stop metrics server.
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(ctx); err != nil {
			logger.Errorf("metrics server failed to stop: %s", err.Error())
		} else {
			logger.Info("metrics server closed under request")
		}
	}
}
