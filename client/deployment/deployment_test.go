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

package deployment

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mltemplate/mltemplate/client"
	"github.com/mltemplate/mltemplate/internal/mlerrors"
	"github.com/mltemplate/mltemplate/pkg/types"
)

const testHost = "http://deployment.test/"

func newTestClient(t *testing.T) Client {
	httpClient := &http.Client{}
	httpmock.ActivateNonDefault(httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)

	return New(testHost, client.WithHTTPClient(httpClient))
}

func TestDeployment_LoadModel(t *testing.T) {
	c := newTestClient(t)
	httpmock.RegisterResponder(http.MethodPost, testHost+"load-model", func(req *http.Request) (*http.Response, error) {
		var body map[string]string
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			return nil, err
		}

		assert.Equal(t, map[string]string{"model": "mlp", "version": "1"}, body)
		return httpmock.NewStringResponse(http.StatusOK, "true"), nil
	})

	ok, err := c.LoadModel(context.Background(), types.LoadModelRequest{Model: "mlp", Version: "1"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDeployment_ClassifyID(t *testing.T) {
	c := newTestClient(t)
	httpmock.RegisterResponder(http.MethodPost, testHost+"classify-id",
		httpmock.NewStringResponder(http.StatusOK, `{"image":"aW1n","label":1,"prediction":1,"logits":[[0,3]]}`))

	resp, err := c.ClassifyID(context.Background(), types.NewClassifyIDRequest())
	require.NoError(t, err)
	assert.Equal(t, &types.ClassifyIDResponse{Image: "aW1n", Label: 1, Prediction: 1, Logits: [][]float32{{0, 3}}}, resp)
}

func TestDeployment_ClassifyImage(t *testing.T) {
	c := newTestClient(t)
	httpmock.RegisterResponder(http.MethodPost, testHost+"classify-image",
		httpmock.NewStringResponder(http.StatusBadRequest, `{"message":"Bad Request","detail":"No model loaded or given."}`))

	_, err := c.ClassifyImage(context.Background(), types.ClassifyImageRequest{Image: "aW1n"})
	var upstreamErr *mlerrors.UpstreamServiceError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusBadRequest, upstreamErr.StatusCode)
	assert.Contains(t, string(upstreamErr.Body), "No model loaded or given.")
}
