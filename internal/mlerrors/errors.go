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

// Package mlerrors defines the error taxonomy shared by the servers and clients.
package mlerrors

import (
	"errors"
	"fmt"
)

// Code classifies an error for the HTTP boundary.
type Code int

const (
	CodeUnknown Code = iota
	CodeValidation
	CodeNotFound
	CodeBackendUnavailable
	CodeNoModelLoaded
	CodeSubprocessFailure
)

func (c Code) String() string {
	switch c {
	case CodeValidation:
		return "ValidationError"
	case CodeNotFound:
		return "NotFound"
	case CodeBackendUnavailable:
		return "BackendUnavailable"
	case CodeNoModelLoaded:
		return "NoModelLoaded"
	case CodeSubprocessFailure:
		return "SubprocessFailure"
	default:
		return "Unknown"
	}
}

var (
	ErrNoModelLoaded        = New(CodeNoModelLoaded, "No model loaded or given.")
	ErrInvalidModelSelector = New(CodeValidation, "Must specify either (1) model and version or (2) run_id.")
)

// MlError is an error carrying a Code.
type MlError struct {
	Code    Code
	Message string
	cause   error
}

func (e *MlError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.cause)
	}

	return e.Message
}

func (e *MlError) Unwrap() error {
	return e.cause
}

// Is reports whether target carries the same code and message.
func (e *MlError) Is(target error) bool {
	t, ok := target.(*MlError)
	if !ok {
		return false
	}

	return t.Code == e.Code && t.Message == e.Message
}

func New(code Code, msg string) *MlError {
	return &MlError{
		Code:    code,
		Message: msg,
	}
}

func Newf(code Code, format string, a ...any) *MlError {
	return &MlError{
		Code:    code,
		Message: fmt.Sprintf(format, a...),
	}
}

// Wrap attaches a code and message to cause.
func Wrap(code Code, cause error, msg string) *MlError {
	return &MlError{
		Code:    code,
		Message: msg,
		cause:   cause,
	}
}

// Validationf returns a CodeValidation error.
func Validationf(format string, a ...any) *MlError {
	return Newf(CodeValidation, format, a...)
}

// NotFoundf returns a CodeNotFound error.
func NotFoundf(format string, a ...any) *MlError {
	return Newf(CodeNotFound, format, a...)
}

// BackendUnavailable wraps a failure to reach the tracking backend.
func BackendUnavailable(cause error) *MlError {
	return Wrap(CodeBackendUnavailable, cause, "tracking backend unavailable")
}

// CodeOf returns the code of the first MlError in err's chain.
func CodeOf(err error) Code {
	var e *MlError
	if errors.As(err, &e) {
		return e.Code
	}

	return CodeUnknown
}

// CheckError reports whether err carries code.
func CheckError(err error, code Code) bool {
	if err == nil {
		return false
	}

	return CodeOf(err) == code
}

// UpstreamServiceError is returned when a downstream server answers non-2xx.
type UpstreamServiceError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamServiceError) Error() string {
	return fmt.Sprintf("upstream service returned %d: %s", e.StatusCode, string(e.Body))
}

// SubprocessFailure is returned when a training subprocess exits non-zero.
type SubprocessFailure struct {
	Command  []string
	ExitCode int
	Stderr   string
}

func (e *SubprocessFailure) Error() string {
	return fmt.Sprintf("command %v exited with code %d: %s", e.Command, e.ExitCode, e.Stderr)
}
