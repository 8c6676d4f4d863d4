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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mltemplate/mltemplate/pkg/types"
)

func TestTask_Transitions(t *testing.T) {
	tests := []struct {
		name   string
		run    func(ctx context.Context, task *Task) error
		expect func(t *testing.T, task *Task, err error)
	}{
		{
			name: "pending to succeeded",
			run: func(ctx context.Context, task *Task) error {
				if err := task.FSM.Event(ctx, TaskEventRun); err != nil {
					return err
				}

				return task.FSM.Event(ctx, TaskEventSucceeded)
			},
			expect: func(t *testing.T, task *Task, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.True(task.FSM.Is(TaskStateSucceeded))
				assert.NoError(task.Err())
				assert.True(task.View().Done())
			},
		},
		{
			name: "pending to failed",
			run: func(ctx context.Context, task *Task) error {
				return task.Fail(ctx, errors.New("foo"))
			},
			expect: func(t *testing.T, task *Task, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.True(task.FSM.Is(TaskStateFailed))
				assert.EqualError(task.Err(), "foo")
				assert.Equal("foo", task.View().Error)
			},
		},
		{
			name: "pending can not succeed",
			run: func(ctx context.Context, task *Task) error {
				return task.FSM.Event(ctx, TaskEventSucceeded)
			},
			expect: func(t *testing.T, task *Task, err error) {
				assert := assert.New(t)
				assert.Error(err)
				assert.True(task.FSM.Is(TaskStatePending))
				assert.False(task.View().Done())
			},
		},
		{
			name: "finished task can not run again",
			run: func(ctx context.Context, task *Task) error {
				if err := task.Fail(ctx, errors.New("foo")); err != nil {
					return err
				}

				return task.FSM.Event(ctx, TaskEventRun)
			},
			expect: func(t *testing.T, task *Task, err error) {
				assert.Error(t, err)
				assert.True(t, task.FSM.Is(TaskStateFailed))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			task := NewTask("req-1", []string{"train", "request_id=req-1"})
			tc.expect(t, task, tc.run(context.Background(), task))
		})
	}
}

func TestTask_View(t *testing.T) {
	task := NewTask("req-1", []string{"train"})
	view := task.View()
	assert.Equal(t, &types.TrainingTask{
		RequestID: "req-1",
		Arguments: []string{"train"},
		State:     types.TrainingTaskStatePending,
		CreatedAt: task.CreatedAt.Load(),
		UpdatedAt: task.UpdatedAt.Load(),
	}, view)
}
