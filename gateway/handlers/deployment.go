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

	"github.com/gin-gonic/gin"

	"github.com/mltemplate/mltemplate/pkg/types"
)

// @Summary Load Model
// @Description Forward a load model request to the deployment server
// @Tags Deployment
// @Accept json
// @Produce json
// @Param Model body types.LoadModelRequest true "Model"
// @Success 200 {boolean} bool
// @Failure 400
// @Failure 503
// @Router /load-model [post]
func (h *Handlers) LoadModel(ctx *gin.Context) {
	var json types.LoadModelRequest
	if !bindJSON(ctx, &json) {
		return
	}

	ok, err := h.service.LoadModel(ctx.Request.Context(), json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, ok)
}

// @Summary Classify ID
// @Description Forward a classify id request to the deployment server
// @Tags Deployment
// @Accept json
// @Produce json
// @Param Sample body types.ClassifyIDRequest false "Sample"
// @Success 200 {object} types.ClassifyIDResponse
// @Failure 400
// @Failure 503
// @Router /classify-id [post]
func (h *Handlers) ClassifyID(ctx *gin.Context) {
	json := types.NewClassifyIDRequest()
	if !bindOptionalJSON(ctx, &json) {
		return
	}

	resp, err := h.service.ClassifyID(ctx.Request.Context(), json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// @Summary Classify Image
// @Description Forward a classify image request to the deployment server
// @Tags Deployment
// @Accept json
// @Produce json
// @Param Image body types.ClassifyImageRequest true "Image"
// @Success 200 {object} types.ClassifyImageResponse
// @Failure 400
// @Failure 503
// @Router /classify-image [post]
func (h *Handlers) ClassifyImage(ctx *gin.Context) {
	var json types.ClassifyImageRequest
	if !bindJSON(ctx, &json) {
		return
	}

	resp, err := h.service.ClassifyImage(ctx.Request.Context(), json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
