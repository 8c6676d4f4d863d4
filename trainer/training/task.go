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
	"time"

	"github.com/looplab/fsm"
	"go.uber.org/atomic"

	logger "github.com/mltemplate/mltemplate/internal/mllog"
	"github.com/mltemplate/mltemplate/pkg/types"
)

const (
	// Task waits for a free training slot.
	TaskStatePending = types.TrainingTaskStatePending

	// Task subprocess is running.
	TaskStateRunning = types.TrainingTaskStateRunning

	// Task subprocess exited zero.
	TaskStateSucceeded = types.TrainingTaskStateSucceeded

	// Task subprocess failed or never started.
	TaskStateFailed = types.TrainingTaskStateFailed
)

const (
	// Task acquired a training slot.
	TaskEventRun = "Run"

	// Task subprocess exited zero.
	TaskEventSucceeded = "Succeeded"

	// Task failed.
	TaskEventFailed = "Failed"
)

// Task is the trainer side view of one training request.
type Task struct {
	// RequestID is the id tagging the training run.
	RequestID string

	// Args is the argv of the training subprocess.
	Args []string

	// Task state machine.
	FSM *fsm.FSM

	// CreatedAt is task create time.
	CreatedAt *atomic.Time

	// UpdatedAt is task update time.
	UpdatedAt *atomic.Time

	// Task log.
	Log *logger.SugaredLoggerOnWith

	err  *atomic.Error
	done chan struct{}
}

// NewTask returns a pending task.
func NewTask(requestID string, args []string) *Task {
	t := &Task{
		RequestID: requestID,
		Args:      args,
		CreatedAt: atomic.NewTime(time.Now()),
		UpdatedAt: atomic.NewTime(time.Now()),
		Log:       logger.WithRequestID(requestID),
		err:       atomic.NewError(nil),
		done:      make(chan struct{}),
	}

	// Initialize state machine.
	t.FSM = fsm.NewFSM(
		TaskStatePending,
		fsm.Events{
			{Name: TaskEventRun, Src: []string{TaskStatePending}, Dst: TaskStateRunning},
			{Name: TaskEventSucceeded, Src: []string{TaskStateRunning}, Dst: TaskStateSucceeded},
			{Name: TaskEventFailed, Src: []string{TaskStatePending, TaskStateRunning}, Dst: TaskStateFailed},
		},
		fsm.Callbacks{
			TaskEventRun: func(ctx context.Context, e *fsm.Event) {
				t.UpdatedAt.Store(time.Now())
				t.Log.Infof("task state is %s", e.FSM.Current())
			},
			TaskEventSucceeded: func(ctx context.Context, e *fsm.Event) {
				t.UpdatedAt.Store(time.Now())
				t.Log.Infof("task state is %s", e.FSM.Current())
				close(t.done)
			},
			TaskEventFailed: func(ctx context.Context, e *fsm.Event) {
				t.UpdatedAt.Store(time.Now())
				t.Log.Infof("task state is %s", e.FSM.Current())
				close(t.done)
			},
		},
	)

	return t
}

// Fail marks the task failed with err.
func (t *Task) Fail(ctx context.Context, err error) error {
	t.err.Store(err)
	return t.FSM.Event(ctx, TaskEventFailed)
}

// Err returns the failure of the task.
func (t *Task) Err() error {
	return t.err.Load()
}

// Done is closed once the task reached a terminal state.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// View returns the wire form of the task.
func (t *Task) View() *types.TrainingTask {
	view := &types.TrainingTask{
		RequestID: t.RequestID,
		Arguments: t.Args,
		State:     t.FSM.Current(),
		CreatedAt: t.CreatedAt.Load(),
		UpdatedAt: t.UpdatedAt.Load(),
	}

	if err := t.Err(); err != nil {
		view.Error = err.Error()
	}

	return view
}
