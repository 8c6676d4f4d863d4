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

package client

import (
	"context"
	"errors"
	"image"
	"image/color"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/go-http-utils/headers"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mltemplate/mltemplate/internal/mlerrors"
	"github.com/mltemplate/mltemplate/pkg/types"
	"github.com/mltemplate/mltemplate/pkg/util/imageutils"
)

const testHost = "http://server.test"

func newTestBase(t *testing.T) *Base {
	httpClient := &http.Client{}
	httpmock.ActivateNonDefault(httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)

	return NewBase(testHost+"/", WithHTTPClient(httpClient))
}

func TestNewBase(t *testing.T) {
	assert.Equal(t, testHost+"/", NewBase(testHost).Host())
	assert.Equal(t, testHost+"/", NewBase(testHost+"/").Host())
}

func TestBase_Post(t *testing.T) {
	tests := []struct {
		name      string
		responder httpmock.Responder
		in        any
		expect    func(t *testing.T, out map[string]string, err error)
	}{
		{
			name: "decodes json response",
			in:   map[string]string{"text": "hi"},
			responder: func(req *http.Request) (*http.Response, error) {
				body, err := io.ReadAll(req.Body)
				if err != nil {
					return nil, err
				}

				if string(body) != `{"text":"hi"}` || req.Header.Get(headers.ContentType) != "application/json" {
					return httpmock.NewStringResponse(http.StatusTeapot, ""), nil
				}

				return httpmock.NewJsonResponse(http.StatusOK, map[string]string{"sender": "mltemplate"})
			},
			expect: func(t *testing.T, out map[string]string, err error) {
				require.NoError(t, err)
				assert.Equal(t, map[string]string{"sender": "mltemplate"}, out)
			},
		},
		{
			name: "empty request body",
			responder: func(req *http.Request) (*http.Response, error) {
				if req.Body != nil && req.Body != http.NoBody {
					body, _ := io.ReadAll(req.Body)
					if len(body) > 0 {
						return httpmock.NewStringResponse(http.StatusTeapot, ""), nil
					}
				}

				return httpmock.NewJsonResponse(http.StatusOK, map[string]string{})
			},
			expect: func(t *testing.T, out map[string]string, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:      "non 2xx surfaces status and body",
			responder: httpmock.NewStringResponder(http.StatusBadRequest, `{"detail":"No model loaded or given."}`),
			expect: func(t *testing.T, out map[string]string, err error) {
				var upstreamErr *mlerrors.UpstreamServiceError
				require.True(t, errors.As(err, &upstreamErr))
				assert.Equal(t, http.StatusBadRequest, upstreamErr.StatusCode)
				assert.Equal(t, `{"detail":"No model loaded or given."}`, string(upstreamErr.Body))
			},
		},
		{
			name:      "connection failure",
			responder: httpmock.NewErrorResponder(errors.New("connection refused")),
			expect: func(t *testing.T, out map[string]string, err error) {
				assert.True(t, mlerrors.CheckError(err, mlerrors.CodeBackendUnavailable))
			},
		},
		{
			name:      "malformed response",
			responder: httpmock.NewStringResponder(http.StatusOK, `{"sender":`),
			expect: func(t *testing.T, out map[string]string, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBase(t)
			httpmock.RegisterResponder(http.MethodPost, testHost+"/chat", tc.responder)

			var out map[string]string
			err := b.Post(context.Background(), "chat", time.Second, tc.in, &out)
			tc.expect(t, out, err)
			assert.Equal(t, 1, httpmock.GetTotalCallCount())
		})
	}
}

func TestNewClassifyIDResult(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.SetGray(0, 1, color.Gray{Y: 128})
	encoded, err := imageutils.ToBase64(img)
	require.NoError(t, err)

	result, err := NewClassifyIDResult(&types.ClassifyIDResponse{
		Image:      encoded,
		Label:      1,
		Prediction: 2,
		Logits:     [][]float32{{0, 0, 1}},
	})
	require.NoError(t, err)
	assert.True(t, imageutils.Equal(img, result.Image))
	assert.Equal(t, 1, result.Label)
	assert.Equal(t, 2, result.Prediction)

	_, err = NewClassifyIDResult(&types.ClassifyIDResponse{Image: "bm90IGEgcG5n"})
	assert.Error(t, err)
}

func TestNewClassifyImageRequest(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	req, err := NewClassifyImageRequest(img, "mlp/1")
	require.NoError(t, err)
	assert.Equal(t, "mlp/1", req.Model)

	decoded, err := imageutils.FromBase64(req.Image)
	require.NoError(t, err)
	assert.True(t, imageutils.Equal(img, decoded))
}
