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


package watch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mltemplate/mltemplate/client/gateway/mocks"
	"github.com/mltemplate/mltemplate/pkg/types"
)

type notification struct {
	requestID string
	lookup    *types.RunLookup
}

type recorder struct {
	mu            sync.Mutex
	notifications []notification
}

func (r *recorder) notify(ctx context.Context, requestID string, lookup *types.RunLookup) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, notification{requestID, lookup})
}

func (r *recorder) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.notifications)
}

func TestWatcher_Check(t *testing.T) {
	tests := []struct {
		name   string
		mock   func(m *mocks.MockClientMockRecorder)
		expect func(t *testing.T, w Watcher, r *recorder)
	}{
		{
			name: "finished run is removed and notified",
			mock: func(m *mocks.MockClientMockRecorder) {
				gomock.InOrder(
					m.TrainingStatus(gomock.Any(), "foo").Return(&types.RunLookup{State: types.RunStateFound, RunID: "bar"}, nil).Times(1),
					m.TrainingComplete(gomock.Any(), "foo").Return(true, nil).Times(1),
				)
			},
			expect: func(t *testing.T, w Watcher, r *recorder) {
				assert := assert.New(t)
				assert.Equal(0, w.Len())
				assert.Equal([]notification{{"foo", &types.RunLookup{State: types.RunStateFound, RunID: "bar"}}}, r.notifications)
			},
		},
		{
			name: "failed run is removed and notified",
			mock: func(m *mocks.MockClientMockRecorder) {
				m.TrainingStatus(gomock.Any(), "foo").Return(&types.RunLookup{State: types.RunStateFailed, RunID: "bar"}, nil).Times(1)
				m.TrainingComplete(gomock.Any(), "foo").Return(true, nil).Times(1)
			},
			expect: func(t *testing.T, w Watcher, r *recorder) {
				assert := assert.New(t)
				assert.Equal(0, w.Len())
				assert.Equal(types.RunStateFailed, r.notifications[0].lookup.State)
			},
		},
		{
			name: "pending run stays outstanding",
			mock: func(m *mocks.MockClientMockRecorder) {
				m.TrainingStatus(gomock.Any(), "foo").Return(&types.RunLookup{State: types.RunStatePending, RunID: "bar"}, nil).Times(1)
			},
			expect: func(t *testing.T, w Watcher, r *recorder) {
				assert := assert.New(t)
				assert.Equal(1, w.Len())
				assert.Equal(0, r.len())
			},
		},
		{
			name: "unknown run stays outstanding",
			mock: func(m *mocks.MockClientMockRecorder) {
				m.TrainingStatus(gomock.Any(), "foo").Return(&types.RunLookup{State: types.RunStateNotFound}, nil).Times(1)
			},
			expect: func(t *testing.T, w Watcher, r *recorder) {
				assert.Equal(t, 1, w.Len())
			},
		},
		{
			name: "lookup failure keeps the request",
			mock: func(m *mocks.MockClientMockRecorder) {
				m.TrainingStatus(gomock.Any(), "foo").Return(nil, errors.New("foo")).Times(1)
			},
			expect: func(t *testing.T, w Watcher, r *recorder) {
				assert := assert.New(t)
				assert.Equal(1, w.Len())
				assert.Equal(0, r.len())
			},
		},
		{
			name: "refresh failure still notifies",
			mock: func(m *mocks.MockClientMockRecorder) {
				m.TrainingStatus(gomock.Any(), "foo").Return(&types.RunLookup{State: types.RunStateFound, RunID: "bar"}, nil).Times(1)
				m.TrainingComplete(gomock.Any(), "foo").Return(false, errors.New("foo")).Times(1)
			},
			expect: func(t *testing.T, w Watcher, r *recorder) {
				assert := assert.New(t)
				assert.Equal(0, w.Len())
				assert.Equal(1, r.len())
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			gateway := mocks.NewMockClient(ctl)
			tc.mock(gateway.EXPECT())

			r := &recorder{}
			w := New(gateway)
			w.Add(Request{RequestID: "foo", Notify: r.notify})
			w.Check(context.Background())
			tc.expect(t, w, r)
		})
	}
}

func TestWatcher_CheckKeepsOrder(t *testing.T) {
	assert := assert.New(t)
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	gateway := mocks.NewMockClient(ctl)

	var looked []string
	gateway.EXPECT().TrainingStatus(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, requestID string) (*types.RunLookup, error) {
			looked = append(looked, requestID)
			if requestID == "bar" {
				return &types.RunLookup{State: types.RunStateFound, RunID: "baz"}, nil
			}

			return &types.RunLookup{State: types.RunStatePending}, nil
		}).Times(5)
	gateway.EXPECT().TrainingComplete(gomock.Any(), "bar").Return(true, nil).Times(1)

	r := &recorder{}
	w := New(gateway)
	for _, id := range []string{"foo", "bar", "qux"} {
		w.Add(Request{RequestID: id, Notify: r.notify})
	}

	w.Check(context.Background())
	assert.Equal(2, w.Len())
	w.Check(context.Background())
	assert.Equal([]string{"foo", "bar", "qux", "foo", "qux"}, looked)
	assert.Equal(1, r.len())
}

func TestWatcher_CheckCanceled(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	gateway := mocks.NewMockClient(ctl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := New(gateway)
	w.Add(Request{RequestID: "foo"})
	w.Check(ctx)
	assert.Equal(t, 1, w.Len())
}

func TestWatcher_Serve(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	gateway := mocks.NewMockClient(ctl)
	gateway.EXPECT().TrainingStatus(gomock.Any(), "foo").Return(&types.RunLookup{State: types.RunStateFound, RunID: "bar"}, nil).Times(1)
	gateway.EXPECT().TrainingComplete(gomock.Any(), "foo").Return(true, nil).Times(1)

	r := &recorder{}
	w := New(gateway, WithInterval(10*time.Millisecond))
	w.Add(Request{RequestID: "foo", Notify: r.notify})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Serve(ctx)
	}()

	assert.Eventually(t, func() bool { return r.len() == 1 }, 5*time.Second, 10*time.Millisecond)
	cancel()
	<-done
	assert.Equal(t, 0, w.Len())
}
