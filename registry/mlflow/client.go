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

//go:generate mockgen -destination mocks/client_mock.go -source client.go -package mocks

package mlflow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-http-utils/headers"

	logger "github.com/mltemplate/mltemplate/internal/mllog"
)

const (
	// apiPrefix is the prefix of the tracking server rest api.
	apiPrefix = "/api/2.0/mlflow"

	// defaultMaxResults is the page size of search requests.
	defaultMaxResults = 1000

	// errorCodeResourceDoesNotExist is returned for unknown resources.
	errorCodeResourceDoesNotExist = "RESOURCE_DOES_NOT_EXIST"
)

// Client is the rest client of a tracking server.
type Client interface {
	// SearchRegisteredModels returns all registered models.
	SearchRegisteredModels(context.Context) ([]RegisteredModel, error)

	// SearchModelVersions returns all versions of the named registered model.
	SearchModelVersions(context.Context, string) ([]ModelVersion, error)

	// GetRun returns the run with the given id.
	GetRun(context.Context, string) (*Run, error)

	// SearchExperiments returns all active experiments.
	SearchExperiments(context.Context) ([]Experiment, error)

	// GetExperimentByName returns the experiment with the given name.
	GetExperimentByName(context.Context, string) (*Experiment, error)

	// CreateExperiment creates an experiment and returns its id.
	CreateExperiment(context.Context, string) (string, error)

	// SearchRuns returns the runs of the experiments matching filter.
	SearchRuns(context.Context, []string, string) ([]Run, error)

	// CreateRun creates a run in the experiment with the given tags.
	CreateRun(context.Context, string, map[string]string) (*Run, error)

	// UpdateRun sets the status of a run.
	UpdateRun(context.Context, string, RunStatus) error
}

// APIError is returned when the tracking server answers non-2xx.
type APIError struct {
	StatusCode int
	ErrorCode  string `json:"error_code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mlflow api error %d %s: %s", e.StatusCode, e.ErrorCode, e.Message)
}

// IsNotFound reports whether err means the resource does not exist.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode == errorCodeResourceDoesNotExist || apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

type client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option is a functional option for configuring the client.
type Option func(c *client)

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *client) {
		c.token = token
	}
}

// WithHTTPClient sets the http client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the timeout of a single request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *client) {
		c.httpClient.Timeout = timeout
	}
}

// New returns a client of the tracking server at trackingURI.
func New(trackingURI string, options ...Option) Client {
	c := &client{
		baseURL:    strings.TrimSuffix(trackingURI, "/") + apiPrefix,
		httpClient: &http.Client{},
	}

	for _, opt := range options {
		opt(c)
	}

	return c
}

func (c *client) SearchRegisteredModels(ctx context.Context) ([]RegisteredModel, error) {
	var models []RegisteredModel
	var pageToken string
	for {
		query := url.Values{}
		query.Set("max_results", fmt.Sprint(defaultMaxResults))
		if pageToken != "" {
			query.Set("page_token", pageToken)
		}

		var resp searchRegisteredModelsResponse
		if err := c.do(ctx, http.MethodGet, "/registered-models/search", query, nil, &resp); err != nil {
			return nil, err
		}

		models = append(models, resp.RegisteredModels...)
		if resp.NextPageToken == "" {
			return models, nil
		}
		pageToken = resp.NextPageToken
	}
}

func (c *client) SearchModelVersions(ctx context.Context, name string) ([]ModelVersion, error) {
	quoted, err := QuoteFilterValue(name)
	if err != nil {
		return nil, err
	}

	var versions []ModelVersion
	var pageToken string
	for {
		query := url.Values{}
		query.Set("filter", "name="+quoted)
		query.Set("max_results", fmt.Sprint(defaultMaxResults))
		if pageToken != "" {
			query.Set("page_token", pageToken)
		}

		var resp searchModelVersionsResponse
		if err := c.do(ctx, http.MethodGet, "/model-versions/search", query, nil, &resp); err != nil {
			return nil, err
		}

		versions = append(versions, resp.ModelVersions...)
		if resp.NextPageToken == "" {
			return versions, nil
		}
		pageToken = resp.NextPageToken
	}
}

func (c *client) GetRun(ctx context.Context, runID string) (*Run, error) {
	query := url.Values{}
	query.Set("run_id", runID)

	var resp getRunResponse
	if err := c.do(ctx, http.MethodGet, "/runs/get", query, nil, &resp); err != nil {
		return nil, err
	}

	return &resp.Run, nil
}

func (c *client) SearchExperiments(ctx context.Context) ([]Experiment, error) {
	var experiments []Experiment
	req := searchExperimentsRequest{MaxResults: defaultMaxResults}
	for {
		var resp searchExperimentsResponse
		if err := c.do(ctx, http.MethodPost, "/experiments/search", nil, req, &resp); err != nil {
			return nil, err
		}

		experiments = append(experiments, resp.Experiments...)
		if resp.NextPageToken == "" {
			return experiments, nil
		}
		req.PageToken = resp.NextPageToken
	}
}

func (c *client) GetExperimentByName(ctx context.Context, name string) (*Experiment, error) {
	query := url.Values{}
	query.Set("experiment_name", name)

	var resp getExperimentResponse
	if err := c.do(ctx, http.MethodGet, "/experiments/get-by-name", query, nil, &resp); err != nil {
		return nil, err
	}

	return &resp.Experiment, nil
}

func (c *client) CreateExperiment(ctx context.Context, name string) (string, error) {
	var resp createExperimentResponse
	if err := c.do(ctx, http.MethodPost, "/experiments/create", nil, createExperimentRequest{Name: name}, &resp); err != nil {
		return "", err
	}

	return resp.ExperimentID, nil
}

func (c *client) SearchRuns(ctx context.Context, experimentIDs []string, filter string) ([]Run, error) {
	var runs []Run
	req := searchRunsRequest{
		ExperimentIDs: experimentIDs,
		Filter:        filter,
		MaxResults:    defaultMaxResults,
	}

	for {
		var resp searchRunsResponse
		if err := c.do(ctx, http.MethodPost, "/runs/search", nil, req, &resp); err != nil {
			return nil, err
		}

		runs = append(runs, resp.Runs...)
		if resp.NextPageToken == "" {
			return runs, nil
		}
		req.PageToken = resp.NextPageToken
	}
}

func (c *client) CreateRun(ctx context.Context, experimentID string, tags map[string]string) (*Run, error) {
	req := createRunRequest{
		ExperimentID: experimentID,
		StartTime:    time.Now().UnixMilli(),
	}
	for key, value := range tags {
		req.Tags = append(req.Tags, RunTag{Key: key, Value: value})
	}

	var resp createRunResponse
	if err := c.do(ctx, http.MethodPost, "/runs/create", nil, req, &resp); err != nil {
		return nil, err
	}

	return &resp.Run, nil
}

func (c *client) UpdateRun(ctx context.Context, runID string, status RunStatus) error {
	req := updateRunRequest{
		RunID:  runID,
		Status: status,
	}
	if status.IsTerminated() {
		req.EndTime = time.Now().UnixMilli()
	}

	return c.do(ctx, http.MethodPost, "/runs/update", nil, req, nil)
}

// do sends one request and decodes the json response into out.
func (c *client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}

	req.Header.Set(headers.Accept, "application/json")
	if in != nil {
		req.Header.Set(headers.ContentType, "application/json")
	}
	if c.token != "" {
		req.Header.Set(headers.Authorization, "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode/100 != 2 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(b, apiErr); err != nil {
			apiErr.Message = string(b)
		}

		logger.Debugf("mlflow %s %s failed: %s", method, path, apiErr.Error())
		return apiErr
	}

	if out == nil || len(b) == 0 {
		return nil
	}

	return json.Unmarshal(b, out)
}
