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

// @Summary Commands
// @Description List the commands supported by the front-ends
// @Tags Chat
// @Produce json
// @Success 200 {object} types.CommandsResponse
// @Router /commands [post]
func (h *Handlers) Commands(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.service.Commands())
}

// @Summary Chat
// @Description Reply to a chat message
// @Tags Chat
// @Accept json
// @Produce json
// @Param Chat body types.ChatRequest true "Chat"
// @Success 200 {object} types.Message
// @Failure 400
// @Router /chat [post]
func (h *Handlers) Chat(ctx *gin.Context) {
	var json types.ChatRequest
	if !bindJSON(ctx, &json) {
		return
	}

	ctx.JSON(http.StatusOK, h.service.Chat(ctx.Request.Context(), json))
}

// @Summary Debug
// @Description Report host diagnostics and the tails of the service logs
// @Tags Chat
// @Accept json
// @Produce json
// @Param Debug body types.DebugRequest false "Debug"
// @Success 200 {object} types.Message
// @Failure 400
// @Failure 500
// @Router /debug [post]
func (h *Handlers) Debug(ctx *gin.Context) {
	var json types.DebugRequest
	if !bindOptionalJSON(ctx, &json) {
		return
	}

	msg, err := h.service.Debug(ctx.Request.Context(), json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, msg)
}
