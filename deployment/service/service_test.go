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

package service

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mltemplate/mltemplate/deployment/dataset"
	"github.com/mltemplate/mltemplate/deployment/model"
	modelmocks "github.com/mltemplate/mltemplate/deployment/model/mocks"
	"github.com/mltemplate/mltemplate/internal/mlerrors"
	"github.com/mltemplate/mltemplate/pkg/types"
	"github.com/mltemplate/mltemplate/pkg/util/imageutils"
	"github.com/mltemplate/mltemplate/registry/mocks"
)

func newMockModel(ctl *gomock.Controller, name, version string) *modelmocks.MockModel {
	m := modelmocks.NewMockModel(ctl)
	m.EXPECT().Name().Return(name).AnyTimes()
	m.EXPECT().Version().Return(version).AnyTimes()
	return m
}

func TestService_LoadModel(t *testing.T) {
	tests := []struct {
		name   string
		req    types.LoadModelRequest
		mock   func(ctl *gomock.Controller, mr *mocks.MockRegistryMockRecorder, ml *modelmocks.MockLoaderMockRecorder)
		expect func(t *testing.T, cache *model.Cache, err error)
	}{
		{
			name: "empty payload",
			req:  types.LoadModelRequest{},
			mock: func(ctl *gomock.Controller, mr *mocks.MockRegistryMockRecorder, ml *modelmocks.MockLoaderMockRecorder) {},
			expect: func(t *testing.T, cache *model.Cache, err error) {
				assert.ErrorIs(t, err, mlerrors.ErrInvalidModelSelector)
				assert.Equal(t, "", cache.Default())
			},
		},
		{
			name: "model without version",
			req:  types.LoadModelRequest{Model: "mlp"},
			mock: func(ctl *gomock.Controller, mr *mocks.MockRegistryMockRecorder, ml *modelmocks.MockLoaderMockRecorder) {},
			expect: func(t *testing.T, cache *model.Cache, err error) {
				assert.True(t, mlerrors.CheckError(err, mlerrors.CodeValidation))
			},
		},
		{
			name: "model and version",
			req:  types.LoadModelRequest{Model: "mlp", Version: "1"},
			mock: func(ctl *gomock.Controller, mr *mocks.MockRegistryMockRecorder, ml *modelmocks.MockLoaderMockRecorder) {
				ml.Load(gomock.Any(), "mlp", "1").Return(newMockModel(ctl, "mlp", "1"), nil).Times(1)
			},
			expect: func(t *testing.T, cache *model.Cache, err error) {
				require.NoError(t, err)
				assert.Equal(t, "mlp/1", cache.Default())
			},
		},
		{
			name: "run id",
			req:  types.LoadModelRequest{RunID: "a"},
			mock: func(ctl *gomock.Controller, mr *mocks.MockRegistryMockRecorder, ml *modelmocks.MockLoaderMockRecorder) {
				mr.ModelNameAndVersion("a").Return("cnn/3", nil).Times(1)
				ml.Load(gomock.Any(), "cnn", "3").Return(newMockModel(ctl, "cnn", "3"), nil).Times(1)
			},
			expect: func(t *testing.T, cache *model.Cache, err error) {
				require.NoError(t, err)
				assert.Equal(t, "cnn/3", cache.Default())
			},
		},
		{
			name: "unknown run id",
			req:  types.LoadModelRequest{RunID: "missing"},
			mock: func(ctl *gomock.Controller, mr *mocks.MockRegistryMockRecorder, ml *modelmocks.MockLoaderMockRecorder) {
				mr.ModelNameAndVersion("missing").Return("", mlerrors.NotFoundf("No model found with run_id: %s", "missing")).Times(2)
				mr.Refresh(gomock.Any()).Return(nil).Times(1)
			},
			expect: func(t *testing.T, cache *model.Cache, err error) {
				assert.True(t, mlerrors.CheckError(err, mlerrors.CodeValidation))
				assert.EqualError(t, err, "No model found with run_id: missing")
			},
		},
		{
			name: "run id registered after startup",
			req:  types.LoadModelRequest{RunID: "b"},
			mock: func(ctl *gomock.Controller, mr *mocks.MockRegistryMockRecorder, ml *modelmocks.MockLoaderMockRecorder) {
				gomock.InOrder(
					mr.ModelNameAndVersion("b").Return("", mlerrors.NotFoundf("No model found with run_id: %s", "b")).Times(1),
					mr.Refresh(gomock.Any()).Return(nil).Times(1),
					mr.ModelNameAndVersion("b").Return("cnn/4", nil).Times(1),
				)
				ml.Load(gomock.Any(), "cnn", "4").Return(newMockModel(ctl, "cnn", "4"), nil).Times(1)
			},
			expect: func(t *testing.T, cache *model.Cache, err error) {
				require.NoError(t, err)
				assert.Equal(t, "cnn/4", cache.Default())
			},
		},
		{
			name: "run id with registry unavailable",
			req:  types.LoadModelRequest{RunID: "b"},
			mock: func(ctl *gomock.Controller, mr *mocks.MockRegistryMockRecorder, ml *modelmocks.MockLoaderMockRecorder) {
				gomock.InOrder(
					mr.ModelNameAndVersion("b").Return("", mlerrors.NotFoundf("No model found with run_id: %s", "b")).Times(1),
					mr.Refresh(gomock.Any()).Return(mlerrors.BackendUnavailable(errors.New("connection refused"))).Times(1),
				)
			},
			expect: func(t *testing.T, cache *model.Cache, err error) {
				assert.True(t, mlerrors.CheckError(err, mlerrors.CodeBackendUnavailable))
				assert.Equal(t, "", cache.Default())
			},
		},
		{
			name: "load failure",
			req:  types.LoadModelRequest{Model: "mlp", Version: "1"},
			mock: func(ctl *gomock.Controller, mr *mocks.MockRegistryMockRecorder, ml *modelmocks.MockLoaderMockRecorder) {
				ml.Load(gomock.Any(), "mlp", "1").Return(nil, mlerrors.NotFoundf("model mlp/1 is not ready")).Times(1)
			},
			expect: func(t *testing.T, cache *model.Cache, err error) {
				assert.True(t, mlerrors.CheckError(err, mlerrors.CodeNotFound))
				assert.Equal(t, "", cache.Default())
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			reg := mocks.NewMockRegistry(ctl)
			loader := modelmocks.NewMockLoader(ctl)
			cache := model.NewCache()
			tc.mock(ctl, reg.EXPECT(), loader.EXPECT())

			svc := New(reg, loader, cache, dataset.New(t.TempDir()))
			tc.expect(t, cache, svc.LoadModel(context.Background(), tc.req))
		})
	}
}

func TestService_ClassifyWithoutModel(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	svc := New(mocks.NewMockRegistry(ctl), modelmocks.NewMockLoader(ctl), model.NewCache(), dataset.New(t.TempDir()))
	_, err := svc.ClassifyID(context.Background(), types.NewClassifyIDRequest())
	assert.ErrorIs(t, err, mlerrors.ErrNoModelLoaded)

	_, err = svc.ClassifyImage(context.Background(), types.ClassifyImageRequest{Image: "aGVsbG8="})
	assert.ErrorIs(t, err, mlerrors.ErrNoModelLoaded)
	assert.EqualError(t, err, "No model loaded or given.")
}

func TestService_ClassifyID(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.SetGray(1, 1, color.Gray{Y: 255})
	encoded, err := imageutils.ToBase64(img)
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, dataset.Write(dir, "MNIST", "test", []*dataset.Sample{{Label: 3, Image: encoded}}))

	m := newMockModel(ctl, "mlp", "1")
	m.EXPECT().Predict(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, arr *imageutils.Array) ([][]float32, error) {
		assert.True(t, arr.Normalized)
		assert.Equal(t, []int64{2, 2}, arr.Shape())
		assert.Equal(t, []float32{0, 0, 0, 1}, arr.Data)
		return [][]float32{{0.1, 0.2, 0.1, 0.6}}, nil
	}).Times(1)

	cache := model.NewCache()
	cache.Store(m)

	svc := New(mocks.NewMockRegistry(ctl), modelmocks.NewMockLoader(ctl), cache, dataset.New(dir))
	resp, err := svc.ClassifyID(context.Background(), types.NewClassifyIDRequest())
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Label)
	assert.Equal(t, 3, resp.Prediction)
	assert.Equal(t, [][]float32{{0.1, 0.2, 0.1, 0.6}}, resp.Logits)

	decoded, err := imageutils.FromBase64(resp.Image)
	require.NoError(t, err)
	assert.True(t, imageutils.Equal(img, decoded))
}

func TestService_ClassifyImage(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 3, 2))
	grayAlpha := imageutils.NewGrayAlpha(image.Rect(0, 0, 3, 2))
	grayAlpha.SetYA(0, 0, 10, 100)
	rgba := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	rgba.SetNRGBA(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	rgb := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			rgb.SetRGBA(x, y, color.RGBA{R: 9, A: 255})
		}
	}

	tests := []struct {
		name  string
		img   image.Image
		shape []int64
	}{
		{name: "L", img: gray, shape: []int64{2, 3}},
		{name: "LA", img: grayAlpha, shape: []int64{2, 3}},
		{name: "RGB", img: rgb, shape: []int64{2, 3, 3}},
		{name: "RGBA", img: rgba, shape: []int64{2, 3, 4}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()

			m := newMockModel(ctl, "mlp", "1")
			m.EXPECT().Predict(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, arr *imageutils.Array) ([][]float32, error) {
				assert.Equal(t, tc.shape, arr.Shape())
				assert.False(t, arr.Normalized)
				return [][]float32{{5, 1}}, nil
			}).Times(1)

			cache := model.NewCache()
			cache.Store(m)

			encoded, err := imageutils.ToBase64(tc.img)
			require.NoError(t, err)

			svc := New(mocks.NewMockRegistry(ctl), modelmocks.NewMockLoader(ctl), cache, dataset.New(t.TempDir()))
			resp, err := svc.ClassifyImage(context.Background(), types.ClassifyImageRequest{Image: encoded, Model: "mlp/1"})
			require.NoError(t, err)
			assert.Equal(t, 0, resp.Prediction)
			assert.Equal(t, [][]float32{{5, 1}}, resp.Logits)
		})
	}
}

func TestService_ClassifyImagePredictFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := newMockModel(ctl, "mlp", "1")
	m.EXPECT().Predict(gomock.Any(), gomock.Any()).Return(nil, mlerrors.Wrap(mlerrors.CodeBackendUnavailable, errors.New("eof"), "inference server unavailable"))

	cache := model.NewCache()
	cache.Store(m)

	encoded, err := imageutils.ToBase64(image.NewGray(image.Rect(0, 0, 1, 1)))
	require.NoError(t, err)

	svc := New(mocks.NewMockRegistry(ctl), modelmocks.NewMockLoader(ctl), cache, dataset.New(t.TempDir()))
	_, err = svc.ClassifyImage(context.Background(), types.ClassifyImageRequest{Image: encoded})
	assert.True(t, mlerrors.CheckError(err, mlerrors.CodeBackendUnavailable))
}

func TestSplitKey(t *testing.T) {
	name, version := splitKey("org/mlp/2")
	assert.Equal(t, "org/mlp", name)
	assert.Equal(t, "2", version)

	name, version = splitKey("mlp")
	assert.Equal(t, "mlp", name)
	assert.Equal(t, "", version)
}
