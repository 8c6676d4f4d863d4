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

// @Summary Get Models
// @Description Refresh the registry and list every model
// @Tags Registry
// @Produce json
// @Success 200 {array} types.ModelRecord
// @Failure 503
// @Router /models [post]
func (h *Handlers) Models(ctx *gin.Context) {
	models, err := h.service.Models(ctx.Request.Context())
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, models)
}

// @Summary Get Experiments
// @Description Refresh the registry and list experiment names
// @Tags Registry
// @Produce json
// @Success 200 {array} string
// @Failure 503
// @Router /experiments [post]
func (h *Handlers) Experiments(ctx *gin.Context) {
	names, err := h.service.Experiments(ctx.Request.Context())
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, names)
}

// @Summary Fetch Experiments
// @Description Refresh the registry and list experiments with their ids
// @Tags Registry
// @Produce json
// @Success 200 {array} types.ExperimentRecord
// @Failure 503
// @Router /fetch-experiments [post]
func (h *Handlers) ListExperiments(ctx *gin.Context) {
	experiments, err := h.service.ListExperiments(ctx.Request.Context())
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, experiments)
}

// @Summary Fetch Runs
// @Description List the runs of one experiment, or of all experiments
// @Tags Registry
// @Accept json
// @Produce json
// @Param Runs body types.ListRunsRequest false "Runs"
// @Success 200 {array} types.RunRecord
// @Failure 400
// @Failure 404
// @Failure 503
// @Router /fetch-runs [post]
func (h *Handlers) ListRuns(ctx *gin.Context) {
	var json types.ListRunsRequest
	if !bindOptionalJSON(ctx, &json) {
		return
	}

	runs, err := h.service.ListRuns(ctx.Request.Context(), json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, runs)
}

// @Summary Fetch Models
// @Description Refresh the registry and list registered model versions
// @Tags Registry
// @Produce json
// @Success 200 {array} types.ModelVersionRecord
// @Failure 503
// @Router /fetch-models [post]
func (h *Handlers) ListModels(ctx *gin.Context) {
	versions, err := h.service.ListModels(ctx.Request.Context())
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, versions)
}

// @Summary Best Model For Experiment
// @Description Get the model with the highest test accuracy of an experiment, null when there is none
// @Tags Registry
// @Accept json
// @Produce json
// @Param Experiment body types.BestModelForExperimentRequest true "Experiment"
// @Success 200 {object} types.ModelRecord
// @Failure 400
// @Failure 503
// @Router /best-model-for-experiment [post]
func (h *Handlers) BestModelForExperiment(ctx *gin.Context) {
	var json types.BestModelForExperimentRequest
	if !bindJSON(ctx, &json) {
		return
	}

	model, err := h.service.BestModelForExperiment(ctx.Request.Context(), json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, model)
}

// @Summary Summary
// @Description Render the models and the best model of each experiment as chunked text
// @Tags Registry
// @Produce json
// @Success 200 {object} types.SummaryResponse
// @Failure 503
// @Router /summary [post]
func (h *Handlers) Summary(ctx *gin.Context) {
	summary, err := h.service.Summary(ctx.Request.Context())
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
