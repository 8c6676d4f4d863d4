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
	"fmt"

	"github.com/google/shlex"

	"github.com/mltemplate/mltemplate/internal/mlerrors"
	"github.com/mltemplate/mltemplate/pkg/types"
)

const (
	// MultirunFlag starts a sweep over the given parameters, it must be the last argument.
	MultirunFlag = "--multirun"

	// requestIDArgumentFormat tags the training run with the request id.
	requestIDArgumentFormat = ` request_id="%s"`
)

// Arguments builds the argv of the training subprocess. The request id is appended
// to the command line arguments before shell splitting and the multirun flag,
// if given, is moved to the end.
func Arguments(command, commandLineArguments, requestID string) ([]string, error) {
	argv, err := shlex.Split(command)
	if err != nil {
		return nil, mlerrors.Wrap(mlerrors.CodeValidation, err, "invalid training command")
	}

	if len(argv) == 0 {
		return nil, mlerrors.Validationf("empty training command")
	}

	if err := types.ValidateRequestID(requestID); err != nil {
		return nil, err
	}

	args, err := shlex.Split(commandLineArguments + fmt.Sprintf(requestIDArgumentFormat, requestID))
	if err != nil {
		return nil, mlerrors.Wrap(mlerrors.CodeValidation, err, "invalid command line arguments")
	}

	var multirun bool
	for _, arg := range args {
		if arg == MultirunFlag {
			multirun = true
			continue
		}

		argv = append(argv, arg)
	}

	if multirun {
		argv = append(argv, MultirunFlag)
	}

	return argv, nil
}
