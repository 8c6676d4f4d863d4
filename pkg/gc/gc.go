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

//go:generate mockgen -destination mocks/gc_mock.go -source gc.go -package mocks

// Package gc runs registered collection tasks on an interval.
package gc

import (
	"errors"
	"sort"
	"sync"
	"time"

	logger "github.com/mltemplate/mltemplate/internal/mllog"
)

// Task is a collection task registered to GC.
type Task interface {
	// RunGC releases the resources of the task.
	RunGC() error
}

// GC runs the registered tasks every interval.
type GC interface {
	// Add registers the task under key, replacing a task of the same key.
	Add(string, Task)

	// Serve starts running the tasks in the background.
	Serve()

	// Stop stops running the tasks and waits for the loop to exit.
	Stop()
}

type gc struct {
	interval time.Duration
	timeout  time.Duration

	mu    sync.Mutex
	tasks map[string]Task

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// Option is a functional option for configuring the GC.
type Option func(g *gc)

// WithInterval sets the interval between two collections.
func WithInterval(interval time.Duration) Option {
	return func(g *gc) {
		g.interval = interval
	}
}

// WithTimeout sets how long one task is waited for.
func WithTimeout(timeout time.Duration) Option {
	return func(g *gc) {
		g.timeout = timeout
	}
}

// New returns a new GC.
func New(options ...Option) (GC, error) {
	g := &gc{
		tasks: map[string]Task{},
		done:  make(chan struct{}),
	}

	for _, opt := range options {
		opt(g)
	}

	if err := g.validate(); err != nil {
		return nil, err
	}

	return g, nil
}

func (g *gc) validate() error {
	if g.interval <= 0 {
		return errors.New("gc requires parameter interval")
	}

	if g.timeout <= 0 {
		return errors.New("gc requires parameter timeout")
	}

	if g.timeout >= g.interval {
		return errors.New("gc timeout must be less than interval")
	}

	return nil
}

func (g *gc) Add(key string, task Task) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tasks[key] = task
}

func (g *gc) Serve() {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()

		tick := time.NewTicker(g.interval)
		defer tick.Stop()
		for {
			select {
			case <-tick.C:
				g.runAll()
			case <-g.done:
				logger.Info("gc stopped")
				return
			}
		}
	}()
}

func (g *gc) Stop() {
	g.stopOnce.Do(func() {
		close(g.done)
	})
	g.wg.Wait()
}

// runAll runs the tasks in key order.
func (g *gc) runAll() {
	g.mu.Lock()
	keys := make([]string, 0, len(g.tasks))
	tasks := make(map[string]Task, len(g.tasks))
	for key, task := range g.tasks {
		keys = append(keys, key)
		tasks[key] = task
	}
	g.mu.Unlock()

	sort.Strings(keys)
	for _, key := range keys {
		g.run(key, tasks[key])
	}
}

// run waits for task up to the timeout, a task still running is left to finish on its own.
func (g *gc) run(key string, task Task) {
	done := make(chan error, 1)
	go func() {
		done <- task.RunGC()
	}()

	select {
	case err := <-done:
		if err != nil {
			logger.Errorf("%s gc failed: %s", key, err.Error())
			return
		}

		logger.Debugf("%s gc done", key)
	case <-time.After(g.timeout):
		logger.Warnf("%s gc timeout after %s", key, g.timeout)
	case <-g.done:
	}
}
