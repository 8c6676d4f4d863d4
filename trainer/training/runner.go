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

//go:generate mockgen -destination mocks/runner_mock.go -source runner.go -package mocks

package training

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/mltemplate/mltemplate/internal/mlerrors"
	logger "github.com/mltemplate/mltemplate/internal/mllog"
)

const (
	// stderrTailLines is the number of stderr lines kept for the failure message.
	stderrTailLines = 20

	// maxLineLength splits output lines longer than it.
	maxLineLength = 64 * 1024

	// waitDelay bounds waiting for output pipes after the subprocess exited or was canceled.
	waitDelay = 10 * time.Second
)

// Runner runs one training subprocess to completion.
type Runner interface {
	// Run runs argv and returns a SubprocessFailure on non-zero exit.
	Run(ctx context.Context, requestID string, argv []string) error
}

type commandRunner struct {
	dir string
}

// NewCommandRunner returns a runner executing argv in dir, output goes to the train log.
func NewCommandRunner(dir string) Runner {
	return &commandRunner{dir: dir}
}

func (r *commandRunner) Run(ctx context.Context, requestID string, argv []string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = r.dir
	cmd.WaitDelay = waitDelay
	setProcessGroup(cmd)

	stdout := newLineWriter(requestID, 0)
	stderr := newLineWriter(requestID, stderrTailLines)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return &mlerrors.SubprocessFailure{Command: argv, ExitCode: -1, Stderr: err.Error()}
	}

	err := cmd.Wait()
	stdout.Flush()
	stderr.Flush()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &mlerrors.SubprocessFailure{Command: argv, ExitCode: exitErr.ExitCode(), Stderr: stderr.Tail()}
		}

		if errors.Is(err, exec.ErrWaitDelay) {
			logger.WithRequestID(requestID).Warnf("training subprocess exited with output still open: %s", err.Error())
			return nil
		}

		return err
	}

	return nil
}

// lineWriter writes every line of the subprocess output to the train log,
// keeping the last lines when tailLines is positive.
type lineWriter struct {
	requestID string
	tailLines int

	mu   sync.Mutex
	buf  []byte
	tail []string
}

func newLineWriter(requestID string, tailLines int) *lineWriter {
	return &lineWriter{requestID: requestID, tailLines: tailLines}
}

// Write splits p on line feeds and carriage returns, lines longer than
// maxLineLength are split.
func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	rest := w.buf
	for {
		i := bytes.IndexAny(rest, "\r\n")
		if i < 0 {
			break
		}

		w.emit(rest[:i])
		rest = rest[i+1:]
	}

	for len(rest) > maxLineLength {
		w.emit(rest[:maxLineLength])
		rest = rest[maxLineLength:]
	}

	w.buf = append(w.buf[:0], rest...)
	return len(p), nil
}

// Flush writes the unterminated last line.
func (w *lineWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.emit(w.buf)
	w.buf = w.buf[:0]
}

// Tail returns the kept lines.
func (w *lineWriter) Tail() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	return strings.Join(w.tail, "\n")
}

func (w *lineWriter) emit(b []byte) {
	if len(b) == 0 {
		return
	}

	line := string(b)
	logger.TrainLogger.Infow(line, "requestID", w.requestID)
	if w.tailLines > 0 {
		w.tail = append(w.tail, line)
		if len(w.tail) > w.tailLines {
			w.tail = w.tail[1:]
		}
	}
}
