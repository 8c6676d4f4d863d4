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

package storage

import (
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mltemplate/mltemplate/internal/mlerrors"
	"github.com/mltemplate/mltemplate/pkg/types"
)

var mockTask = Task{
	RequestID: "req-1",
	Arguments: Arguments{"rye", "run", "train", "trainer.name=my run", "request_id=req-1"},
	State:     types.TrainingTaskStateFailed,
	Error:     "command exited with code 1",
	CreatedAt: time.Unix(1700000000, 0).UnixNano(),
	UpdatedAt: time.Unix(1700000060, 0).UnixNano(),
}

func TestStorage_New(t *testing.T) {
	s := New(t.TempDir())
	assert.Equal(t, "storage", reflect.TypeOf(s).Elem().Name())
}

func TestStorage_CreateTask(t *testing.T) {
	tests := []struct {
		name   string
		mock   func(t *testing.T, baseDir string)
		expect func(t *testing.T, s Storage, baseDir string)
	}{
		{
			name: "empty csv file given",
			mock: func(t *testing.T, baseDir string) {
				require.NoError(t, os.WriteFile(filepath.Join(baseDir, "tasks.csv"), nil, 0600))
			},
			expect: func(t *testing.T, s Storage, baseDir string) {
				_, err := s.ListTask()
				assert.EqualError(t, err, "empty csv file given")
			},
		},
		{
			name: "task file does not exist",
			mock: func(t *testing.T, baseDir string) {},
			expect: func(t *testing.T, s Storage, baseDir string) {
				_, err := s.ListTask()
				assert.ErrorIs(t, err, os.ErrNotExist)

				_, err = s.GetTask("req-1")
				assert.True(t, mlerrors.CheckError(err, mlerrors.CodeNotFound))
			},
		},
		{
			name: "create and list tasks",
			mock: func(t *testing.T, baseDir string) {},
			expect: func(t *testing.T, s Storage, baseDir string) {
				require.NoError(t, s.CreateTask(mockTask))
				retried := mockTask
				retried.State = types.TrainingTaskStateSucceeded
				retried.Error = ""
				require.NoError(t, s.CreateTask(retried))

				tasks, err := s.ListTask()
				require.NoError(t, err)
				assert.Equal(t, []Task{mockTask, retried}, tasks)

				task, err := s.GetTask("req-1")
				require.NoError(t, err)
				assert.Equal(t, types.TrainingTaskStateSucceeded, task.State)

				_, err = s.GetTask("req-2")
				assert.True(t, mlerrors.CheckError(err, mlerrors.CodeNotFound))
			},
		},
		{
			name: "open and clear task file",
			mock: func(t *testing.T, baseDir string) {},
			expect: func(t *testing.T, s Storage, baseDir string) {
				require.NoError(t, s.CreateTask(mockTask))

				rc, err := s.OpenTask()
				require.NoError(t, err)
				content, err := io.ReadAll(rc)
				require.NoError(t, err)
				require.NoError(t, rc.Close())
				assert.Contains(t, string(content), "req-1")

				assert.NoError(t, s.Clear())
				assert.NoError(t, s.Clear())
				_, err = os.Stat(filepath.Join(baseDir, "tasks.csv"))
				assert.ErrorIs(t, err, os.ErrNotExist)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			baseDir := t.TempDir()
			tc.mock(t, baseDir)
			tc.expect(t, New(baseDir), baseDir)
		})
	}
}

func TestTask_View(t *testing.T) {
	view := mockTask.View()
	assert.Equal(t, "req-1", view.RequestID)
	assert.Equal(t, []string(mockTask.Arguments), view.Arguments)
	assert.True(t, view.Done())
	assert.Equal(t, mockTask, NewTask(view))
}
