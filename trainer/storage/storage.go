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

//go:generate mockgen -destination mocks/storage_mock.go -source storage.go -package mocks

package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/mltemplate/mltemplate/internal/mlerrors"
	"github.com/mltemplate/mltemplate/pkg/types"
)

const (
	// TaskFilePrefix is prefix of task file name.
	TaskFilePrefix = "tasks"

	// CSVFileExt is extension of file name.
	CSVFileExt = "csv"
)

// Task is one finished training task as stored in the task file.
type Task struct {
	RequestID string    `csv:"request_id"`
	Arguments Arguments `csv:"arguments"`
	State     string    `csv:"state"`
	Error     string    `csv:"error"`
	CreatedAt int64     `csv:"created_at"`
	UpdatedAt int64     `csv:"updated_at"`
}

// NewTask returns the stored form of a task view.
func NewTask(view *types.TrainingTask) Task {
	return Task{
		RequestID: view.RequestID,
		Arguments: view.Arguments,
		State:     view.State,
		Error:     view.Error,
		CreatedAt: view.CreatedAt.UnixNano(),
		UpdatedAt: view.UpdatedAt.UnixNano(),
	}
}

// View returns the wire form of the stored task.
func (t Task) View() *types.TrainingTask {
	return &types.TrainingTask{
		RequestID: t.RequestID,
		Arguments: t.Arguments,
		State:     t.State,
		Error:     t.Error,
		CreatedAt: time.Unix(0, t.CreatedAt),
		UpdatedAt: time.Unix(0, t.UpdatedAt),
	}
}

// Arguments is the argv of a training subprocess.
type Arguments []string

// MarshalCSV encodes arguments as a json array.
func (a Arguments) MarshalCSV() (string, error) {
	if a == nil {
		return "[]", nil
	}

	b, err := json.Marshal([]string(a))
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// UnmarshalCSV decodes arguments from a json array.
func (a *Arguments) UnmarshalCSV(s string) error {
	var args []string
	if s != "" {
		if err := json.Unmarshal([]byte(s), &args); err != nil {
			return err
		}
	}

	*a = args
	return nil
}

// Storage is the interface used for storage.
type Storage interface {
	// CreateTask appends a finished task to the task file.
	CreateTask(Task) error

	// ListTask returns all tasks in the task file.
	ListTask() ([]Task, error)

	// GetTask returns the latest task of the request id.
	GetTask(string) (*Task, error)

	// OpenTask opens the task file for read.
	OpenTask() (io.ReadCloser, error)

	// Clear removes the task file.
	Clear() error
}

type storage struct {
	baseDir string
	mu      sync.RWMutex
}

// New returns a new Storage instance.
func New(baseDir string) Storage {
	return &storage{baseDir: baseDir}
}

// CreateTask appends a finished task to the task file.
func (s *storage) CreateTask(task Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.OpenFile(s.taskFilename(), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return err
	}
	defer file.Close()

	return gocsv.MarshalWithoutHeaders([]Task{task}, file)
}

// ListTask returns all tasks in the task file.
func (s *storage) ListTask() ([]Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := os.Open(s.taskFilename())
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var tasks []Task
	if err := gocsv.UnmarshalWithoutHeaders(file, &tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

// GetTask returns the latest task of the request id.
func (s *storage) GetTask(requestID string) (*Task, error) {
	tasks, err := s.ListTask()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	for i := len(tasks) - 1; i >= 0; i-- {
		if tasks[i].RequestID == requestID {
			return &tasks[i], nil
		}
	}

	return nil, mlerrors.NotFoundf("No training run found with request_id: %s", requestID)
}

// OpenTask opens the task file for read.
func (s *storage) OpenTask() (io.ReadCloser, error) {
	return os.Open(s.taskFilename())
}

// Clear removes the task file.
func (s *storage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.taskFilename()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}

// taskFilename generates task file name.
func (s *storage) taskFilename() string {
	return filepath.Join(s.baseDir, fmt.Sprintf("%s.%s", TaskFilePrefix, CSVFileExt))
}
