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
	"github.com/mltemplate/mltemplate/trainer/service"
)

type Handlers struct {
	service service.Service
}

func New(service service.Service) *Handlers {
	return &Handlers{service: service}
}

// @Summary Start Training Run
// @Description Launch a training run in the background
// @Tags Training
// @Accept json
// @Produce json
// @Param Training body types.StartTrainingRunRequest true "Training"
// @Success 200 {string} string
// @Failure 400
// @Failure 500
// @Router /start_training_run [post]
func (h *Handlers) StartTrainingRun(ctx *gin.Context) {
	var json types.StartTrainingRunRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.Error(err).SetType(gin.ErrorTypeBind) // nolint: errcheck
		return
	}

	ack, err := h.service.StartTrainingRun(ctx.Request.Context(), json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, ack)
}

// @Summary Training Run
// @Description Get the task of a training request
// @Tags Training
// @Accept json
// @Produce json
// @Param Training body types.TrainingRunRequest true "Training"
// @Success 200 {object} types.TrainingTask
// @Failure 400
// @Failure 404
// @Router /training_run [post]
func (h *Handlers) TrainingRun(ctx *gin.Context) {
	var json types.TrainingRunRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.Error(err).SetType(gin.ErrorTypeBind) // nolint: errcheck
		return
	}

	task, err := h.service.TrainingRun(ctx.Request.Context(), json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, task)
}
