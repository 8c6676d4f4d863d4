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

package mlpath

import (
	"io/fs"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

var (
	// DefaultWorkHome is the default work home directory.
	DefaultWorkHome = filepath.Join(home(), ".mltemplate")

	// DefaultWorkHomeMode is the default file mode of the work home directory.
	DefaultWorkHomeMode = fs.FileMode(0755)

	// DefaultLogDir is the default log directory.
	DefaultLogDir = filepath.Join(DefaultWorkHome, "logs")

	// DefaultDatasetDir is the default dataset directory.
	DefaultDatasetDir = filepath.Join(DefaultWorkHome, "datasets")

	// DefaultTempDir is the default directory for temporary files.
	DefaultTempDir = filepath.Join(DefaultWorkHome, "temp")
)

func home() string {
	dir, err := homedir.Dir()
	if err != nil {
		return "/tmp"
	}

	return dir
}
