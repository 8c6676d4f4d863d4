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

package training

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	cmap "github.com/orcaman/concurrent-map/v2"
	"golang.org/x/sync/semaphore"

	"github.com/mltemplate/mltemplate/internal/mlerrors"
	logger "github.com/mltemplate/mltemplate/internal/mllog"
	"github.com/mltemplate/mltemplate/pkg/types"
	"github.com/mltemplate/mltemplate/registry"
	"github.com/mltemplate/mltemplate/trainer/config"
	"github.com/mltemplate/mltemplate/trainer/metrics"
	"github.com/mltemplate/mltemplate/trainer/storage"
)

const (
	// recordFailedRunTimeout bounds recording a failed run in the registry.
	recordFailedRunTimeout = 30 * time.Second
)

// ErrStopped is returned when a training run is started after Stop.
var ErrStopped = errors.New("trainer is stopping")

// Training defines the interface to run training requests as subprocesses.
type Training interface {
	// Start creates the task of the request and launches it in the background.
	Start(context.Context, types.StartTrainingRunRequest) (*Task, error)

	// Task returns the view of the task of the request id.
	Task(string) (*types.TrainingTask, error)

	// RunGC evicts finished tasks older than the task ttl.
	RunGC() error

	// Stop cancels running subprocesses and waits for their results.
	Stop()
}

// result is the completion of one task.
type result struct {
	task *Task
	err  error
}

// training implements Training interface.
type training struct {
	// Training configuration.
	config config.TrainingConfig

	// Registry recording failed runs.
	registry registry.Registry

	// Runner of training subprocesses.
	runner Runner

	// Storage of finished tasks.
	storage storage.Storage

	// Tasks by request id.
	tasks cmap.ConcurrentMap[string, *Task]

	// Training slots.
	sem *semaphore.Weighted

	// Completed tasks.
	results chan result

	ctx     context.Context
	cancel  context.CancelFunc
	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
	done    chan struct{}
}

// New returns a new Training.
func New(cfg config.TrainingConfig, registry registry.Registry, runner Runner, storage storage.Storage) Training {
	ctx, cancel := context.WithCancel(context.Background())
	t := &training{
		config:   cfg,
		registry: registry,
		runner:   runner,
		storage:  storage,
		tasks:    cmap.New[*Task](),
		sem:      semaphore.NewWeighted(cfg.MaxConcurrency),
		results:  make(chan result),
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	go t.collect()
	return t
}

// Start creates the task of the request and launches it in the background.
func (t *training) Start(ctx context.Context, req types.StartTrainingRunRequest) (*Task, error) {
	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}

	args, err := Arguments(t.config.Command, req.CommandLineArguments, requestID)
	if err != nil {
		metrics.TrainStartedFailureCount.Inc()
		return nil, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.stopped {
		metrics.TrainStartedFailureCount.Inc()
		return nil, ErrStopped
	}

	// A finished task of the same request id is replaced, an unfinished one is kept.
	task := NewTask(requestID, args)
	if t.tasks.Upsert(requestID, task, func(exist bool, current, next *Task) *Task {
		if exist && !current.View().Done() {
			return current
		}

		return next
	}) != task {
		metrics.TrainStartedFailureCount.Inc()
		return nil, mlerrors.Validationf("Training run with request_id %s is already in progress.", requestID)
	}

	task.Log.Infof("start training run: %v", args)
	metrics.TrainStartedCount.Inc()

	t.wg.Add(1)
	go t.run(task)
	return task, nil
}

// run waits for a training slot and runs the subprocess of the task.
func (t *training) run(task *Task) {
	defer t.wg.Done()

	if err := t.sem.Acquire(t.ctx, 1); err != nil {
		t.results <- result{task: task, err: err}
		return
	}
	defer t.sem.Release(1)

	if err := t.ctx.Err(); err != nil {
		t.results <- result{task: task, err: err}
		return
	}

	if err := task.FSM.Event(t.ctx, TaskEventRun); err != nil {
		t.results <- result{task: task, err: err}
		return
	}

	metrics.RunningTrainingGauge.Inc()
	err := t.runner.Run(t.ctx, task.RequestID, task.Args)
	metrics.RunningTrainingGauge.Dec()
	t.results <- result{task: task, err: err}
}

// collect finishes tasks as their results arrive.
func (t *training) collect() {
	defer close(t.done)
	for r := range t.results {
		t.finish(r.task, r.err)
	}
}

func (t *training) finish(task *Task, err error) {
	ctx := context.Background()
	if err == nil {
		if err := task.FSM.Event(ctx, TaskEventSucceeded); err != nil {
			task.Log.Errorf("task state transition failed: %s", err.Error())
		}

		metrics.TrainFinishedCount.Inc()
		task.Log.Info("training run succeeded")
	} else {
		if err := task.Fail(ctx, err); err != nil {
			task.Log.Errorf("task state transition failed: %s", err.Error())
		}

		metrics.TrainFinishedFailureCount.Inc()
		task.Log.Errorf("training run failed: %s", task.Err().Error())

		ctx, cancel := context.WithTimeout(ctx, recordFailedRunTimeout)
		if err := t.registry.RecordFailedRun(ctx, task.RequestID, task.Err().Error()); err != nil {
			metrics.RecordFailedRunFailureCount.Inc()
			task.Log.Errorf("record failed run failed: %s", err.Error())
		}
		cancel()
	}

	if err := t.storage.CreateTask(storage.NewTask(task.View())); err != nil {
		task.Log.Errorf("store task failed: %s", err.Error())
	}
}

// Task returns the view of the task of the request id, finished tasks no
// longer in memory are read from storage.
func (t *training) Task(requestID string) (*types.TrainingTask, error) {
	if task, ok := t.tasks.Get(requestID); ok {
		return task.View(), nil
	}

	stored, err := t.storage.GetTask(requestID)
	if err != nil {
		return nil, err
	}

	return stored.View(), nil
}

// RunGC evicts finished tasks older than the task ttl.
func (t *training) RunGC() error {
	for _, task := range t.tasks.Items() {
		view := task.View()
		if view.Done() && time.Since(view.UpdatedAt) > t.config.TaskTTL {
			logger.WithRequestID(task.RequestID).Info("task has been reclaimed")
			t.tasks.RemoveCb(task.RequestID, func(key string, v *Task, exists bool) bool {
				return exists && v == task
			})
		}
	}

	return nil
}

// Stop cancels running subprocesses and waits for their results.
func (t *training) Stop() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.stopped = true
	t.mu.Unlock()

	t.cancel()
	t.wg.Wait()
	close(t.results)
	<-t.done
}
