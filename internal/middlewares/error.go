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

package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/mltemplate/mltemplate/internal/mlerrors"
	logger "github.com/mltemplate/mltemplate/internal/mllog"
)

type ErrorResponse struct {
	Message string `json:"message,omitempty"`
	Detail  string `json:"detail"`
}

func Error() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		ginErr := c.Errors.Last()
		if ginErr == nil {
			return
		}

		err := ginErr.Err
		logger.GinLogger.Errorw("request failed", "path", c.Request.URL.Path, "error", err.Error())

		// Gin error handler
		if ginErr.Type == gin.ErrorTypeBind {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: http.StatusText(http.StatusBadRequest),
				Detail:  err.Error(),
			})
			return
		}

		// Downstream server error handler
		var upstreamErr *mlerrors.UpstreamServiceError
		if errors.As(err, &upstreamErr) {
			status := upstreamErr.StatusCode
			if status < http.StatusBadRequest {
				status = http.StatusBadGateway
			}

			c.JSON(status, ErrorResponse{
				Message: http.StatusText(status),
				Detail:  upstreamDetail(upstreamErr.Body),
			})
			return
		}

		status := StatusCode(err)
		c.JSON(status, ErrorResponse{
			Message: http.StatusText(status),
			Detail:  err.Error(),
		})
	}
}

// upstreamDetail unwraps the detail of a downstream error response, other bodies are passed as is.
func upstreamDetail(body []byte) string {
	var resp ErrorResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Detail != "" {
		return resp.Detail
	}

	return string(body)
}

// StatusCode maps an error to the HTTP status reported for it.
func StatusCode(err error) int {
	switch mlerrors.CodeOf(err) {
	case mlerrors.CodeValidation, mlerrors.CodeNoModelLoaded:
		return http.StatusBadRequest
	case mlerrors.CodeNotFound:
		return http.StatusNotFound
	case mlerrors.CodeBackendUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
