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

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mltemplate/mltemplate/deployment/service/mocks"
	"github.com/mltemplate/mltemplate/internal/middlewares"
	"github.com/mltemplate/mltemplate/internal/mlerrors"
	"github.com/mltemplate/mltemplate/pkg/types"
)

func mockRouter(h *Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middlewares.Error())
	r.POST("/load-model", h.LoadModel)
	r.POST("/classify-id", h.ClassifyID)
	r.POST("/classify-image", h.ClassifyImage)
	return r
}

func TestHandlers_LoadModel(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "malformed body",
			body: `{"model":`,
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, w.Code)
			},
		},
		{
			name: "invalid selector",
			body: `{}`,
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.LoadModel(gomock.Any(), types.LoadModelRequest{}).Return(mlerrors.ErrInvalidModelSelector).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusBadRequest, w.Code)
				assert.Contains(w.Body.String(), "Must specify either (1) model and version or (2) run_id.")
			},
		},
		{
			name: "success",
			body: `{"run_id":"a"}`,
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.LoadModel(gomock.Any(), types.LoadModelRequest{RunID: "a"}).Return(nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				assert.Equal("true", w.Body.String())
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			w := httptest.NewRecorder()
			r := mockRouter(New(svc))

			tc.mock(svc.EXPECT())
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/load-model", strings.NewReader(tc.body)))
			tc.expect(t, w)
		})
	}
}

func TestHandlers_ClassifyID(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "defaults on empty body",
			body: "",
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.ClassifyID(gomock.Any(), types.ClassifyIDRequest{Dataset: "MNIST", Stage: "test"}).Return(&types.ClassifyIDResponse{
					Image:      "aW1n",
					Label:      7,
					Prediction: 7,
					Logits:     [][]float32{{0, 1}},
				}, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				assert.JSONEq(`{"image":"aW1n","label":7,"prediction":7,"logits":[[0,1]]}`, w.Body.String())
			},
		},
		{
			name: "defaults kept for omitted fields",
			body: `{"idx":4}`,
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.ClassifyID(gomock.Any(), types.ClassifyIDRequest{Dataset: "MNIST", Stage: "test", Idx: 4}).Return(&types.ClassifyIDResponse{}, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, w.Code)
			},
		},
		{
			name: "invalid stage",
			body: `{"stage":"validate"}`,
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, w.Code)
			},
		},
		{
			name: "negative index",
			body: `{"idx":-1}`,
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, w.Code)
			},
		},
		{
			name: "no model loaded",
			body: `{}`,
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.ClassifyID(gomock.Any(), gomock.Any()).Return(nil, mlerrors.ErrNoModelLoaded).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusBadRequest, w.Code)
				assert.JSONEq(`{"message":"Bad Request","detail":"No model loaded or given."}`, w.Body.String())
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			w := httptest.NewRecorder()
			r := mockRouter(New(svc))

			tc.mock(svc.EXPECT())
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/classify-id", strings.NewReader(tc.body)))
			tc.expect(t, w)
		})
	}
}

func TestHandlers_ClassifyImage(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "missing image",
			body: `{}`,
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, w.Code)
			},
		},
		{
			name: "image is not base64",
			body: `{"image":"not base64!"}`,
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, w.Code)
			},
		},
		{
			name: "success",
			body: `{"image":"aW1n","model":"mlp/1"}`,
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.ClassifyImage(gomock.Any(), types.ClassifyImageRequest{Image: "aW1n", Model: "mlp/1"}).Return(&types.ClassifyImageResponse{
					Prediction: 1,
					Logits:     [][]float32{{0, 2}},
				}, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				assert.JSONEq(`{"prediction":1,"logits":[[0,2]]}`, w.Body.String())
			},
		},
		{
			name: "inference backend unavailable",
			body: `{"image":"aW1n"}`,
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.ClassifyImage(gomock.Any(), gomock.Any()).Return(nil, mlerrors.BackendUnavailable(http.ErrServerClosed)).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusServiceUnavailable, w.Code)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			w := httptest.NewRecorder()
			r := mockRouter(New(svc))

			tc.mock(svc.EXPECT())
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/classify-image", strings.NewReader(tc.body)))
			tc.expect(t, w)
		})
	}
}
