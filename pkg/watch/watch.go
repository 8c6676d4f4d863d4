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


// Package watch polls the gateway for outstanding training requests and
// notifies their callers once the registry holds a finished run.
package watch

import (
	"context"
	"sync"
	"time"

	"github.com/gammazero/deque"

	gatewayclient "github.com/mltemplate/mltemplate/client/gateway"
	logger "github.com/mltemplate/mltemplate/internal/mllog"
	"github.com/mltemplate/mltemplate/pkg/types"
)

const (
	// DefaultInterval is the default interval between two checks.
	DefaultInterval = 15 * time.Second
)

// NotifyFunc is called once the run of a request is done.
type NotifyFunc func(ctx context.Context, requestID string, lookup *types.RunLookup)

// Request is an outstanding training request.
type Request struct {
	RequestID string
	Notify    NotifyFunc
}

// Watcher tracks outstanding training requests.
type Watcher interface {
	// Add appends a request to the outstanding requests.
	Add(Request)

	// Len returns the number of outstanding requests.
	Len() int

	// Check looks up every outstanding request once.
	Check(context.Context)

	// Serve checks outstanding requests on every tick until ctx is done.
	Serve(context.Context)
}

// Option is a functional option for configuring the watcher.
type Option func(w *watcher)

// WithInterval sets the interval between two checks.
func WithInterval(interval time.Duration) Option {
	return func(w *watcher) {
		w.interval = interval
	}
}

type watcher struct {
	gateway  gatewayclient.Client
	interval time.Duration
	mu       sync.Mutex
	requests deque.Deque[Request]
}

// New returns a new Watcher.
func New(gateway gatewayclient.Client, options ...Option) Watcher {
	w := &watcher{
		gateway:  gateway,
		interval: DefaultInterval,
	}

	for _, opt := range options {
		opt(w)
	}

	return w
}

func (w *watcher) Add(req Request) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.requests.PushBack(req)
	logger.WithRequestID(req.RequestID).Debug("training request is being watched")
}

func (w *watcher) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.requests.Len()
}

func (w *watcher) Serve(ctx context.Context) {
	tick := time.NewTicker(w.interval)
	defer tick.Stop()

	for {
		select {
		case <-tick.C:
			w.Check(ctx)
		case <-ctx.Done():
			logger.Infof("stop watching %d training requests", w.Len())
			return
		}
	}
}

func (w *watcher) Check(ctx context.Context) {
	w.mu.Lock()
	outstanding := make([]Request, 0, w.requests.Len())
	for w.requests.Len() > 0 {
		outstanding = append(outstanding, w.requests.PopFront())
	}
	w.mu.Unlock()

	var pending []Request
	for _, req := range outstanding {
		if ctx.Err() != nil {
			pending = append(pending, req)
			continue
		}

		if !w.check(ctx, req) {
			pending = append(pending, req)
		}
	}

	// Requests added during the check stay behind the pending ones.
	w.mu.Lock()
	for i := len(pending) - 1; i >= 0; i-- {
		w.requests.PushFront(pending[i])
	}
	w.mu.Unlock()
}

// check reports whether the request is done.
func (w *watcher) check(ctx context.Context, req Request) bool {
	log := logger.WithRequestID(req.RequestID)
	lookup, err := w.gateway.TrainingStatus(ctx, req.RequestID)
	if err != nil {
		log.Warnf("lookup training status failed: %s", err.Error())
		return false
	}

	if !lookup.Done() {
		log.Debugf("training request is %s", lookup.State)
		return false
	}

	log.Infof("training request has finished with run %s in state %s", lookup.RunID, lookup.State)
	if _, err := w.gateway.TrainingComplete(ctx, req.RequestID); err != nil {
		log.Warnf("refresh registry failed: %s", err.Error())
	}

	if req.Notify != nil {
		req.Notify(ctx, req.RequestID, lookup)
	}

	return true
}
