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

//go:generate mockgen -destination mocks/deployment_mock.go -source deployment.go -package mocks

// Package deployment is the client of the deployment server.
package deployment

import (
	"context"

	"github.com/mltemplate/mltemplate/client"
	"github.com/mltemplate/mltemplate/pkg/types"
)

// Client talks to the deployment server.
type Client interface {
	// LoadModel loads a model and makes it the default.
	LoadModel(context.Context, types.LoadModelRequest) (bool, error)

	// ClassifyID classifies a dataset sample.
	ClassifyID(context.Context, types.ClassifyIDRequest) (*types.ClassifyIDResponse, error)

	// ClassifyImage classifies a base64 encoded image.
	ClassifyImage(context.Context, types.ClassifyImageRequest) (*types.ClassifyImageResponse, error)
}

type deployment struct {
	*client.Base
}

// New returns the deployment client.
func New(host string, options ...client.Option) Client {
	return &deployment{Base: client.NewBase(host, options...)}
}

func (d *deployment) LoadModel(ctx context.Context, req types.LoadModelRequest) (bool, error) {
	var loaded bool
	if err := d.Post(ctx, "load-model", client.DefaultTimeout, req, &loaded); err != nil {
		return false, err
	}

	return loaded, nil
}

func (d *deployment) ClassifyID(ctx context.Context, req types.ClassifyIDRequest) (*types.ClassifyIDResponse, error) {
	var resp types.ClassifyIDResponse
	if err := d.Post(ctx, "classify-id", client.DefaultTimeout, req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (d *deployment) ClassifyImage(ctx context.Context, req types.ClassifyImageRequest) (*types.ClassifyImageResponse, error) {
	var resp types.ClassifyImageResponse
	if err := d.Post(ctx, "classify-image", client.DefaultTimeout, req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
