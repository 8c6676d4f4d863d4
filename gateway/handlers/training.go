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

// @Summary Train
// @Description Forward a training request to the trainer server
// @Tags Training
// @Accept json
// @Produce json
// @Param Train body types.TrainRequest true "Train"
// @Success 200 {string} string
// @Failure 400
// @Failure 503
// @Router /train [post]
func (h *Handlers) Train(ctx *gin.Context) {
	json := types.TrainRequest{CommandLineArguments: types.DefaultCommandLineArguments}
	if !bindJSON(ctx, &json) {
		return
	}

	ack, err := h.service.Train(ctx.Request.Context(), json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, ack)
}

// @Summary Training Complete
// @Description Refresh the registry once a training run finished
// @Tags Training
// @Accept json
// @Produce json
// @Param Training body types.TrainingCompleteRequest false "Training"
// @Success 200 {boolean} bool
// @Failure 503
// @Router /training-complete [post]
func (h *Handlers) TrainingComplete(ctx *gin.Context) {
	var json types.TrainingCompleteRequest
	if !bindOptionalJSON(ctx, &json) {
		return
	}

	ok, err := h.service.TrainingComplete(ctx.Request.Context(), json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, ok)
}

// @Summary Training Status
// @Description Look up the run of a training request
// @Tags Training
// @Accept json
// @Produce json
// @Param Training body types.TrainingStatusRequest true "Training"
// @Success 200 {object} types.RunLookup
// @Failure 400
// @Failure 503
// @Router /training-status [post]
func (h *Handlers) TrainingStatus(ctx *gin.Context) {
	var json types.TrainingStatusRequest
	if !bindJSON(ctx, &json) {
		return
	}

	lookup, err := h.service.TrainingStatus(ctx.Request.Context(), json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, lookup)
}
