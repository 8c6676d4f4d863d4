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

//go:generate mockgen -destination mocks/service_mock.go -source service.go -package mocks

package service

import (
	"context"
	"strings"

	"github.com/mltemplate/mltemplate/deployment/dataset"
	"github.com/mltemplate/mltemplate/deployment/metrics"
	"github.com/mltemplate/mltemplate/deployment/model"
	"github.com/mltemplate/mltemplate/internal/mlerrors"
	logger "github.com/mltemplate/mltemplate/internal/mllog"
	"github.com/mltemplate/mltemplate/pkg/types"
	"github.com/mltemplate/mltemplate/pkg/util/imageutils"
	"github.com/mltemplate/mltemplate/registry"
)

type Service interface {
	LoadModel(context.Context, types.LoadModelRequest) error
	ClassifyID(context.Context, types.ClassifyIDRequest) (*types.ClassifyIDResponse, error)
	ClassifyImage(context.Context, types.ClassifyImageRequest) (*types.ClassifyImageResponse, error)
}

type service struct {
	registry registry.Registry
	loader   model.Loader
	models   *model.Cache
	datasets dataset.Datasets
}

// New returns the deployment service.
func New(registry registry.Registry, loader model.Loader, models *model.Cache, datasets dataset.Datasets) Service {
	return &service{
		registry: registry,
		loader:   loader,
		models:   models,
		datasets: datasets,
	}
}

func (s *service) LoadModel(ctx context.Context, req types.LoadModelRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	name, version := req.Model, req.Version
	if req.RunID != "" {
		model, err := s.modelNameAndVersion(ctx, req.RunID)
		if err != nil {
			// Unknown run ids are reported as an invalid payload.
			if mlerrors.CheckError(err, mlerrors.CodeNotFound) {
				return mlerrors.New(mlerrors.CodeValidation, err.Error())
			}

			return err
		}

		name, version = splitKey(model)
	}

	m, err := s.loader.Load(ctx, name, version)
	if err != nil {
		metrics.LoadModelFailureCount.Inc()
		return err
	}

	key := s.models.Store(m)
	metrics.LoadModelCount.Inc()
	logger.WithModel(name, version).Infof("model %s loaded as default", key)
	return nil
}

// modelNameAndVersion looks the run up in the registry, refreshing it once
// when the run is unknown.
func (s *service) modelNameAndVersion(ctx context.Context, runID string) (string, error) {
	model, err := s.registry.ModelNameAndVersion(runID)
	if err == nil || !mlerrors.CheckError(err, mlerrors.CodeNotFound) {
		return model, err
	}

	if err := s.registry.Refresh(ctx); err != nil {
		return "", err
	}

	return s.registry.ModelNameAndVersion(runID)
}

func (s *service) ClassifyID(ctx context.Context, req types.ClassifyIDRequest) (*types.ClassifyIDResponse, error) {
	m, err := s.models.Resolve(req.Model)
	if err != nil {
		return nil, err
	}

	img, label, err := s.datasets.Sample(req.Dataset, req.Stage, req.Idx)
	if err != nil {
		return nil, err
	}

	arr, err := imageutils.ToArray(img, imageutils.FormatL)
	if err != nil {
		return nil, mlerrors.Wrap(mlerrors.CodeValidation, err, "invalid dataset sample")
	}

	logits, err := s.predict(ctx, m, arr.Normalize())
	if err != nil {
		return nil, err
	}

	encoded, err := imageutils.ToBase64(img)
	if err != nil {
		return nil, err
	}

	return &types.ClassifyIDResponse{
		Image:      encoded,
		Label:      label,
		Prediction: model.Argmax(logits),
		Logits:     logits,
	}, nil
}

func (s *service) ClassifyImage(ctx context.Context, req types.ClassifyImageRequest) (*types.ClassifyImageResponse, error) {
	m, err := s.models.Resolve(req.Model)
	if err != nil {
		return nil, err
	}

	img, err := imageutils.FromBase64(req.Image)
	if err != nil {
		return nil, mlerrors.Wrap(mlerrors.CodeValidation, err, "invalid image")
	}

	format := imageutils.FormatRGB
	if imageutils.ModeOf(img).IsGray() {
		format = imageutils.FormatL
	}

	arr, err := imageutils.ToArray(img, format)
	if err != nil {
		return nil, mlerrors.Wrap(mlerrors.CodeValidation, err, "invalid image")
	}

	logits, err := s.predict(ctx, m, arr)
	if err != nil {
		return nil, err
	}

	return &types.ClassifyImageResponse{
		Prediction: model.Argmax(logits),
		Logits:     logits,
	}, nil
}

func (s *service) predict(ctx context.Context, m model.Model, arr *imageutils.Array) ([][]float32, error) {
	logits, err := m.Predict(ctx, arr)
	if err != nil {
		metrics.PredictFailureCount.WithLabelValues(m.Name(), m.Version()).Inc()
		return nil, err
	}

	metrics.PredictCount.WithLabelValues(m.Name(), m.Version()).Inc()
	return logits, nil
}

// splitKey splits a "name/version" key at its last slash.
func splitKey(key string) (string, string) {
	i := strings.LastIndex(key, "/")
	if i < 0 {
		return key, ""
	}

	return key[:i], key[i+1:]
}
