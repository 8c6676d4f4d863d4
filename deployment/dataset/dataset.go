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

package dataset

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	cmap "github.com/orcaman/concurrent-map/v2"
	"golang.org/x/sync/singleflight"

	"github.com/mltemplate/mltemplate/internal/mlerrors"
	logger "github.com/mltemplate/mltemplate/internal/mllog"
	"github.com/mltemplate/mltemplate/pkg/types"
	"github.com/mltemplate/mltemplate/pkg/util/imageutils"
)

const (
	// fileExt is the extension of a dataset split file.
	fileExt = ".csv"
)

// Sample is one labelled image of a dataset split, the image is a base64 png.
type Sample struct {
	Label int    `csv:"label"`
	Image string `csv:"image"`
}

// Datasets serves samples of the datasets stored under a directory as
// <dir>/<dataset>/<stage>.csv.
type Datasets interface {
	// Sample returns the image and label at idx of the dataset split.
	Sample(dataset, stage string, idx int) (image.Image, int, error)
}

type datasets struct {
	dir            string
	defaultDataset string
	splits         cmap.ConcurrentMap[string, []*Sample]
	loadGroup      singleflight.Group
}

// New returns the datasets stored under dir.
func New(dir string) Datasets {
	return &datasets{
		dir:            dir,
		defaultDataset: types.DefaultDataset,
		splits:         cmap.New[[]*Sample](),
	}
}

// Sample falls back to the default dataset when the named one does not exist.
func (d *datasets) Sample(dataset, stage string, idx int) (image.Image, int, error) {
	if stage == "" {
		stage = types.DefaultStage
	}

	if dataset == "" || !d.exists(dataset, stage) {
		logger.Debugf("dataset %s/%s not found, using %s", dataset, stage, d.defaultDataset)
		dataset = d.defaultDataset
	}

	samples, err := d.load(dataset, stage)
	if err != nil {
		return nil, 0, err
	}

	if idx < 0 || idx >= len(samples) {
		return nil, 0, mlerrors.Validationf("idx %d is out of range for %s/%s with %d samples", idx, dataset, stage, len(samples))
	}

	img, err := imageutils.FromBase64(samples[idx].Image)
	if err != nil {
		return nil, 0, fmt.Errorf("decode sample %d of %s/%s: %w", idx, dataset, stage, err)
	}

	return img, samples[idx].Label, nil
}

func (d *datasets) path(dataset, stage string) string {
	return filepath.Join(d.dir, dataset, stage+fileExt)
}

func (d *datasets) exists(dataset, stage string) bool {
	if d.splits.Has(d.path(dataset, stage)) {
		return true
	}

	_, err := os.Stat(d.path(dataset, stage))
	return err == nil
}

// load reads a split once and keeps it in memory.
func (d *datasets) load(dataset, stage string) ([]*Sample, error) {
	path := d.path(dataset, stage)
	if samples, ok := d.splits.Get(path); ok {
		return samples, nil
	}

	v, err, _ := d.loadGroup.Do(path, func() (any, error) {
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, mlerrors.NotFoundf("No dataset found with name: %s", dataset)
			}

			return nil, err
		}
		defer f.Close()

		var samples []*Sample
		if err := gocsv.UnmarshalFile(f, &samples); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}

		logger.Infof("loaded %d samples of %s/%s", len(samples), dataset, stage)
		d.splits.Set(path, samples)
		return samples, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]*Sample), nil
}

// Write stores samples as the split of a dataset under dir.
func Write(dir, dataset, stage string, samples []*Sample) error {
	if err := os.MkdirAll(filepath.Join(dir, dataset), 0755); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(dir, dataset, stage+fileExt))
	if err != nil {
		return err
	}
	defer f.Close()

	return gocsv.MarshalFile(&samples, f)
}
