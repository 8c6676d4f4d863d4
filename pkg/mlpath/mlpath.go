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
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/go-homedir"
)

// Mlpath is the interface used for init project path.
type Mlpath interface {
	WorkHome() string
	LogDir() string
	DatasetDir() string
	TempDir() string
	TrainerLockPath() string
}

type mlpath struct {
	workHome        string
	workHomeMode    fs.FileMode
	logDir          string
	datasetDir      string
	tempDir         string
	trainerLockPath string
}

// Option is a functional option for configuring the mlpath.
type Option func(d *mlpath)

// WithWorkHome set the workhome directory.
func WithWorkHome(dir string) Option {
	return func(d *mlpath) {
		d.workHome = dir
	}
}

// WithWorkHomeMode sets the workHome directory mode
func WithWorkHomeMode(mode fs.FileMode) Option {
	return func(d *mlpath) {
		d.workHomeMode = mode
	}
}

// WithLogDir set the log directory.
func WithLogDir(dir string) Option {
	return func(d *mlpath) {
		d.logDir = dir
	}
}

// WithDatasetDir set the dataset directory.
func WithDatasetDir(dir string) Option {
	return func(d *mlpath) {
		d.datasetDir = dir
	}
}

// WithTempDir set the temporary directory.
func WithTempDir(dir string) Option {
	return func(d *mlpath) {
		d.tempDir = dir
	}
}

// New expands and creates the project directories.
func New(options ...Option) (Mlpath, error) {
	d := &mlpath{
		workHome:     DefaultWorkHome,
		workHomeMode: DefaultWorkHomeMode,
	}

	for _, opt := range options {
		opt(d)
	}

	var errs *multierror.Error
	expand := func(dir, fallback string) string {
		if dir == "" {
			return fallback
		}

		expanded, err := homedir.Expand(dir)
		if err != nil {
			errs = multierror.Append(errs, err)
			return dir
		}

		return expanded
	}

	d.workHome = expand(d.workHome, DefaultWorkHome)
	d.logDir = expand(d.logDir, filepath.Join(d.workHome, "logs"))
	d.datasetDir = expand(d.datasetDir, filepath.Join(d.workHome, "datasets"))
	d.tempDir = expand(d.tempDir, filepath.Join(d.workHome, "temp"))
	d.trainerLockPath = filepath.Join(d.workHome, "trainer.lock")

	if err := os.MkdirAll(d.workHome, d.workHomeMode); err != nil {
		errs = multierror.Append(errs, err)
	}

	for _, dir := range []string{d.logDir, d.datasetDir, d.tempDir} {
		if err := os.MkdirAll(dir, fs.FileMode(0700)); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *mlpath) WorkHome() string {
	return d.workHome
}

func (d *mlpath) LogDir() string {
	return d.logDir
}

func (d *mlpath) DatasetDir() string {
	return d.datasetDir
}

func (d *mlpath) TempDir() string {
	return d.tempDir
}

func (d *mlpath) TrainerLockPath() string {
	return d.trainerLockPath
}
