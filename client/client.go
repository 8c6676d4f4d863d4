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

// Package client holds the request helper shared by the service clients.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-http-utils/headers"

	"github.com/mltemplate/mltemplate/internal/mlerrors"
	logger "github.com/mltemplate/mltemplate/internal/mllog"
	"github.com/mltemplate/mltemplate/pkg/types"
	"github.com/mltemplate/mltemplate/pkg/util/imageutils"
)

const (
	// DefaultTimeout is timeout of an interactive request.
	DefaultTimeout = 60 * time.Second

	// TrainingTimeout is timeout of a training submission.
	TrainingTimeout = 24 * time.Hour
)

// Base sends json requests to one server.
type Base struct {
	host       string
	httpClient *http.Client
}

// Option is a functional option for configuring the client.
type Option func(b *Base)

// WithHTTPClient set http client for the client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(b *Base) {
		b.httpClient = httpClient
	}
}

// NewBase returns a client sending requests to host.
func NewBase(host string, options ...Option) *Base {
	b := &Base{
		host:       strings.TrimSuffix(host, "/") + "/",
		httpClient: &http.Client{},
	}

	for _, opt := range options {
		opt(b)
	}

	return b
}

// Host returns the base url of the server.
func (b *Base) Host() string {
	return b.host
}

// Post sends in as the json body of a POST to route and decodes the response
// into out. A nil in sends no body. It sends exactly one request.
func (b *Base) Post(ctx context.Context, route string, timeout time.Duration, in, out any) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.host+route, body)
	if err != nil {
		return err
	}
	req.Header.Set(headers.Accept, "application/json")
	if in != nil {
		req.Header.Set(headers.ContentType, "application/json")
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		logger.Debugf("request %s%s failed: %s", b.host, route, err.Error())
		return mlerrors.BackendUnavailable(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode/100 != 2 {
		logger.Debugf("request %s%s returned %d", b.host, route, resp.StatusCode)
		return &mlerrors.UpstreamServiceError{
			StatusCode: resp.StatusCode,
			Body:       data,
		}
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response of %s: %w", route, err)
	}

	return nil
}

// ClassifyIDResult is a classified dataset sample with its decoded image.
type ClassifyIDResult struct {
	Image      image.Image
	Label      int
	Prediction int
	Logits     [][]float32
}

// NewClassifyIDResult decodes the image of a classify-id response.
func NewClassifyIDResult(resp *types.ClassifyIDResponse) (*ClassifyIDResult, error) {
	img, err := imageutils.FromBase64(resp.Image)
	if err != nil {
		return nil, fmt.Errorf("decode sample image: %w", err)
	}

	return &ClassifyIDResult{
		Image:      img,
		Label:      resp.Label,
		Prediction: resp.Prediction,
		Logits:     resp.Logits,
	}, nil
}

// NewClassifyImageRequest encodes img as a classify-image request.
func NewClassifyImageRequest(img image.Image, model string) (types.ClassifyImageRequest, error) {
	encoded, err := imageutils.ToBase64(img)
	if err != nil {
		return types.ClassifyImageRequest{}, err
	}

	return types.ClassifyImageRequest{Image: encoded, Model: model}, nil
}
