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

//go:generate mockgen -destination mocks/registry_mock.go -source registry.go -package mocks

package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/singleflight"

	"github.com/mltemplate/mltemplate/internal/mlerrors"
	logger "github.com/mltemplate/mltemplate/internal/mllog"
	"github.com/mltemplate/mltemplate/pkg/config"
	"github.com/mltemplate/mltemplate/pkg/types"
	"github.com/mltemplate/mltemplate/registry/mlflow"
)

const (
	// DefaultExperimentName is the experiment every tracking server creates, it is never listed.
	DefaultExperimentName = "Default"

	// RequestIDTag is the run tag correlating a training request with its run.
	RequestIDTag = "request_id"

	// FailureReasonTag is the run tag carrying why a training request failed.
	FailureReasonTag = "failure_reason"
)

const (
	trainAccMetric = "train_acc_epoch"
	valAccMetric   = "val_acc_epoch"
	testAccMetric  = "test_acc_epoch"

	modelParam   = "model"
	datasetParam = "dataset_name"
)

// Params dropped from the model param.
var hiddenModelParams = []string{"_target_", "name"}

// Registry provides access to the models and experiments of a tracking server.
type Registry interface {
	// Refresh replaces the snapshot with the current state of the tracking server.
	Refresh(context.Context) error

	// ModelNameAndVersion returns the "name/version" of the model trained by run.
	ModelNameAndVersion(string) (string, error)

	// Models returns all models of the snapshot.
	Models() []types.ModelRecord

	// ModelsWithBest returns all models and the best model of every experiment, both of the same snapshot.
	ModelsWithBest() ([]types.ModelRecord, []types.ModelRecord)

	// ModelVersions returns all registered model versions of the snapshot.
	ModelVersions() []types.ModelVersionRecord

	// ExperimentID returns the id of the named experiment.
	ExperimentID(string) (string, error)

	// ExperimentNames returns the names of all experiments.
	ExperimentNames() []string

	// ExperimentIDs returns the ids of all experiments.
	ExperimentIDs() []string

	// Experiments returns all experiments.
	Experiments() []types.ExperimentRecord

	// BestModelForExperiment refreshes and returns the model with the highest test accuracy of the experiment.
	BestModelForExperiment(context.Context, string) (*types.ModelRecord, error)

	// BestModelForExperimentName is BestModelForExperiment by experiment name.
	BestModelForExperimentName(context.Context, string) (*types.ModelRecord, error)

	// RunIDFromRequestID looks up the run tagged with request id.
	RunIDFromRequestID(context.Context, string) (types.RunLookup, error)

	// Runs returns the runs of the named experiment, or of all experiments when name is empty.
	Runs(context.Context, string) ([]types.RunRecord, error)

	// RecordFailedRun records a failed run tagged with request id in the training experiment.
	RecordFailedRun(context.Context, string, string) error
}

// snapshot is the state of the tracking server as of one refresh.
type snapshot struct {
	models        map[string]types.ModelRecord
	modelVersions []types.ModelVersionRecord
	experiments   map[string]types.ExperimentRecord
}

type registry struct {
	client             mlflow.Client
	cache              *Cache
	trainingExperiment string

	mu       sync.RWMutex
	snapshot *snapshot

	refreshGroup singleflight.Group
}

// Option is a functional option for configuring the registry.
type Option func(r *registry)

// WithCache sets the cache of terminated runs.
func WithCache(cache *Cache) Option {
	return func(r *registry) {
		r.cache = cache
	}
}

// WithTrainingExperiment sets the experiment receiving failed training runs.
func WithTrainingExperiment(name string) Option {
	return func(r *registry) {
		r.trainingExperiment = name
	}
}

// New returns a registry with an empty snapshot.
func New(client mlflow.Client, options ...Option) Registry {
	r := &registry{
		client:             client,
		trainingExperiment: config.DefaultTrainingExperiment,
		snapshot: &snapshot{
			models:      map[string]types.ModelRecord{},
			experiments: map[string]types.ExperimentRecord{},
		},
	}

	for _, opt := range options {
		opt(r)
	}

	return r
}

func (r *registry) Refresh(ctx context.Context) error {
	_, err, shared := r.refreshGroup.Do("refresh", func() (any, error) {
		s, err := r.fetch(ctx)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.snapshot = s
		r.mu.Unlock()
		return nil, nil
	})

	if err != nil {
		logger.Errorf("refresh registry failed: %s", err.Error())
		return mlerrors.BackendUnavailable(err)
	}

	logger.Debugf("registry refreshed, shared %t", shared)
	return nil
}

// fetch builds a new snapshot without touching the current one.
func (r *registry) fetch(ctx context.Context) (*snapshot, error) {
	s := &snapshot{
		models:      map[string]types.ModelRecord{},
		experiments: map[string]types.ExperimentRecord{},
	}

	registeredModels, err := r.client.SearchRegisteredModels(ctx)
	if err != nil {
		return nil, err
	}

	for _, registeredModel := range registeredModels {
		versions, err := r.client.SearchModelVersions(ctx, registeredModel.Name)
		if err != nil {
			return nil, err
		}

		for _, version := range versions {
			run, err := r.getRun(ctx, version.RunID)
			if err != nil {
				return nil, err
			}

			s.models[version.RunID] = makeModelRecord(registeredModel.Name, version, run)
			s.modelVersions = append(s.modelVersions, types.ModelVersionRecord{
				Model:   registeredModel.Name,
				Version: version.Version,
				RunID:   version.RunID,
				Status:  version.Status,
			})
		}
	}

	experiments, err := r.client.SearchExperiments(ctx)
	if err != nil {
		return nil, err
	}

	for _, experiment := range experiments {
		if experiment.Name == DefaultExperimentName {
			continue
		}

		s.experiments[experiment.ExperimentID] = types.ExperimentRecord{
			ID:   experiment.ExperimentID,
			Name: experiment.Name,
		}
	}

	return s, nil
}

// getRun returns the run from cache, terminated runs fetched from the server are cached.
func (r *registry) getRun(ctx context.Context, runID string) (*mlflow.Run, error) {
	if r.cache != nil {
		if run, ok := r.cache.GetRun(ctx, runID); ok {
			return run, nil
		}
	}

	run, err := r.client.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.SetRun(ctx, run); err != nil {
			logger.WithRunID(runID).Warnf("cache run failed: %s", err.Error())
		}
	}

	return run, nil
}

func makeModelRecord(name string, version mlflow.ModelVersion, run *mlflow.Run) types.ModelRecord {
	dataset, _ := run.Param(datasetParam)
	trainAcc, _ := run.Metric(trainAccMetric)
	valAcc, _ := run.Metric(valAccMetric)
	testAcc, _ := run.Metric(testAccMetric)

	return types.ModelRecord{
		Name:         name,
		Version:      version.Version,
		Dataset:      dataset,
		Status:       version.Status,
		TrainAcc:     trainAcc,
		ValAcc:       valAcc,
		TestAcc:      testAcc,
		Params:       parseModelParams(run),
		ExperimentID: run.Info.ExperimentID,
		RunID:        version.RunID,
	}
}

// parseModelParams decodes the model param, logged with single quotes in place of double quotes.
func parseModelParams(run *mlflow.Run) types.Params {
	params := types.Params{}
	raw, ok := run.Param(modelParam)
	if !ok {
		logger.WithRunID(run.Info.RunID).Warn("run has no model param")
		return params
	}

	if err := json.Unmarshal([]byte(strings.ReplaceAll(raw, "'", `"`)), &params); err != nil {
		logger.WithRunID(run.Info.RunID).Warnf("parse model param failed: %s", err.Error())
		return types.Params{}
	}

	for _, key := range hiddenModelParams {
		delete(params, key)
	}

	return params
}

func (r *registry) current() *snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}

func (r *registry) ModelNameAndVersion(runID string) (string, error) {
	model, ok := r.current().models[runID]
	if !ok {
		return "", mlerrors.NotFoundf("No model found with run_id: %s", runID)
	}

	return model.NameAndVersion(), nil
}

func (r *registry) Models() []types.ModelRecord {
	return sortedModels(r.current())
}

func (r *registry) ModelsWithBest() ([]types.ModelRecord, []types.ModelRecord) {
	s := r.current()

	var best []types.ModelRecord
	for _, experiment := range sortedExperiments(s) {
		if model := bestModel(s, experiment.ID); model != nil {
			best = append(best, *model)
		}
	}

	return sortedModels(s), best
}

func sortedModels(s *snapshot) []types.ModelRecord {
	models := maps.Values(s.models)
	sort.Slice(models, func(i, j int) bool {
		if models[i].Name != models[j].Name {
			return models[i].Name < models[j].Name
		}

		if models[i].Version != models[j].Version {
			return lessVersion(models[i].Version, models[j].Version)
		}

		return models[i].RunID < models[j].RunID
	})

	return models
}

func (r *registry) ModelVersions() []types.ModelVersionRecord {
	return slices.Clone(r.current().modelVersions)
}

func (r *registry) ExperimentID(name string) (string, error) {
	for _, experiment := range r.current().experiments {
		if experiment.Name == name {
			return experiment.ID, nil
		}
	}

	return "", mlerrors.NotFoundf("No experiment found with name: %s", name)
}

func (r *registry) ExperimentNames() []string {
	var names []string
	for _, experiment := range r.Experiments() {
		names = append(names, experiment.Name)
	}

	return names
}

func (r *registry) ExperimentIDs() []string {
	var ids []string
	for _, experiment := range r.Experiments() {
		ids = append(ids, experiment.ID)
	}

	return ids
}

// Experiments returns experiments ordered by id.
func (r *registry) Experiments() []types.ExperimentRecord {
	return sortedExperiments(r.current())
}

func sortedExperiments(s *snapshot) []types.ExperimentRecord {
	experiments := maps.Values(s.experiments)
	sort.Slice(experiments, func(i, j int) bool {
		return lessVersion(experiments[i].ID, experiments[j].ID)
	})

	return experiments
}

func (r *registry) BestModelForExperiment(ctx context.Context, experimentID string) (*types.ModelRecord, error) {
	if err := r.Refresh(ctx); err != nil {
		return nil, err
	}

	return bestModel(r.current(), experimentID), nil
}

func (r *registry) BestModelForExperimentName(ctx context.Context, name string) (*types.ModelRecord, error) {
	if err := r.Refresh(ctx); err != nil {
		return nil, err
	}

	experimentID, err := r.ExperimentID(name)
	if err != nil {
		logger.Debugf("best model for unknown experiment %s", name)
		return nil, nil
	}

	return bestModel(r.current(), experimentID), nil
}

// bestModel returns the model with the highest test accuracy, equal accuracies pick the lowest run id.
func bestModel(s *snapshot, experimentID string) *types.ModelRecord {
	if _, ok := s.experiments[experimentID]; !ok {
		return nil
	}

	var best *types.ModelRecord
	for _, model := range s.models {
		if model.ExperimentID != experimentID {
			continue
		}

		if best == nil || model.TestAcc > best.TestAcc || (model.TestAcc == best.TestAcc && model.RunID < best.RunID) {
			m := model
			best = &m
		}
	}

	return best
}

func (r *registry) RunIDFromRequestID(ctx context.Context, requestID string) (types.RunLookup, error) {
	if err := types.ValidateRequestID(requestID); err != nil {
		return types.RunLookup{}, err
	}

	log := logger.WithRequestID(requestID)

	// Experiments are listed live, the trainer may have created the training experiment after the last refresh.
	experiments, err := r.client.SearchExperiments(ctx)
	if err != nil {
		log.Errorf("search experiments failed: %s", err.Error())
		return types.RunLookup{}, mlerrors.BackendUnavailable(err)
	}

	var experimentIDs []string
	for _, experiment := range experiments {
		experimentIDs = append(experimentIDs, experiment.ExperimentID)
	}

	if len(experimentIDs) == 0 {
		return types.RunLookup{State: types.RunStateNotFound}, nil
	}

	runs, err := r.client.SearchRuns(ctx, experimentIDs, fmt.Sprintf("tags.%s = '%s'", RequestIDTag, requestID))
	if err != nil {
		log.Errorf("search runs failed: %s", err.Error())
		return types.RunLookup{}, mlerrors.BackendUnavailable(err)
	}

	for _, run := range runs {
		if tag, ok := run.Tag(RequestIDTag); !ok || tag != requestID {
			continue
		}

		lookup := types.RunLookup{RunID: run.Info.RunID}
		switch run.Info.Status {
		case mlflow.RunStatusFinished:
			lookup.State = types.RunStateFound
		case mlflow.RunStatusFailed, mlflow.RunStatusKilled:
			lookup.State = types.RunStateFailed
		default:
			lookup.State = types.RunStatePending
		}

		log.Debugf("run %s is %s", lookup.RunID, lookup.State)
		return lookup, nil
	}

	return types.RunLookup{State: types.RunStateNotFound}, nil
}

func (r *registry) Runs(ctx context.Context, experimentName string) ([]types.RunRecord, error) {
	experimentIDs := r.ExperimentIDs()
	if experimentName != "" {
		experimentID, err := r.ExperimentID(experimentName)
		if err != nil {
			return nil, err
		}
		experimentIDs = []string{experimentID}
	}

	if len(experimentIDs) == 0 {
		return []types.RunRecord{}, nil
	}

	runs, err := r.client.SearchRuns(ctx, experimentIDs, "")
	if err != nil {
		logger.Errorf("search runs failed: %s", err.Error())
		return nil, mlerrors.BackendUnavailable(err)
	}

	records := make([]types.RunRecord, 0, len(runs))
	for _, run := range runs {
		records = append(records, makeRunRecord(run))
	}

	return records, nil
}

func makeRunRecord(run mlflow.Run) types.RunRecord {
	record := types.RunRecord{
		RunID:        run.Info.RunID,
		ExperimentID: run.Info.ExperimentID,
		Status:       string(run.Info.Status),
		StartTime:    run.Info.StartTime,
		EndTime:      run.Info.EndTime,
		Metrics:      map[string]float64{},
		Params:       map[string]string{},
		Tags:         map[string]string{},
	}

	for _, metric := range run.Data.Metrics {
		record.Metrics[metric.Key] = metric.Value
	}

	for _, param := range run.Data.Params {
		record.Params[param.Key] = param.Value
	}

	for _, tag := range run.Data.Tags {
		record.Tags[tag.Key] = tag.Value
	}

	return record
}

func (r *registry) RecordFailedRun(ctx context.Context, requestID, reason string) error {
	log := logger.WithRequestID(requestID)
	experimentID, err := r.trainingExperimentID(ctx)
	if err != nil {
		log.Errorf("resolve training experiment failed: %s", err.Error())
		return mlerrors.BackendUnavailable(err)
	}

	run, err := r.client.CreateRun(ctx, experimentID, map[string]string{
		RequestIDTag:     requestID,
		FailureReasonTag: reason,
	})
	if err != nil {
		log.Errorf("create run failed: %s", err.Error())
		return mlerrors.BackendUnavailable(err)
	}

	if err := r.client.UpdateRun(ctx, run.Info.RunID, mlflow.RunStatusFailed); err != nil {
		log.Errorf("mark run %s failed: %s", run.Info.RunID, err.Error())
		return mlerrors.BackendUnavailable(err)
	}

	log.Infof("recorded failed run %s in experiment %s", run.Info.RunID, experimentID)
	return nil
}

// trainingExperimentID returns the id of the training experiment, creating it when missing.
func (r *registry) trainingExperimentID(ctx context.Context) (string, error) {
	experiment, err := r.client.GetExperimentByName(ctx, r.trainingExperiment)
	if err == nil {
		return experiment.ExperimentID, nil
	}

	if !mlflow.IsNotFound(err) {
		return "", err
	}

	experimentID, createErr := r.client.CreateExperiment(ctx, r.trainingExperiment)
	if createErr != nil {
		return "", multierror.Append(err, createErr)
	}

	return experimentID, nil
}

// lessVersion orders numeric strings by value and anything else lexically.
func lessVersion(a, b string) bool {
	if len(a) != len(b) && isDigits(a) && isDigits(b) {
		return len(a) < len(b)
	}

	return a < b
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}
