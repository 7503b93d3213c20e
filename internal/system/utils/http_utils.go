/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package utils

import (
	"encoding/json"
	"net/http"
	"strings"

	errors2 "github.com/wso2/identity-resolution-service/internal/system/errors"
	"github.com/wso2/identity-resolution-service/internal/system/log"
)

// WriteJSONResponse writes a JSON payload with the given status code.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.GetLogger().Error("Failed to encode response payload", log.Error(err))
	}
}

// WriteErrorResponse writes a client error as a JSON error payload.
func WriteErrorResponse(w http.ResponseWriter, clientError *errors2.ClientError) {
	statusCode := clientError.StatusCode
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	WriteJSONResponse(w, statusCode, clientError.ErrorMessage)
}

// HandleError maps service errors onto HTTP responses. Server errors are
// logged with their cause and reported without internal detail.
func HandleError(w http.ResponseWriter, err error) {
	logger := log.GetLogger()

	switch typed := err.(type) {
	case *errors2.ClientError:
		WriteErrorResponse(w, typed)
	case *errors2.ServerError:
		logger.Error("Server error while handling request", log.Error(typed))
		WriteJSONResponse(w, http.StatusInternalServerError, typed.ErrorMessage)
	default:
		logger.Error("Unexpected error while handling request", log.Error(err))
		WriteJSONResponse(w, http.StatusInternalServerError, errors2.ErrorMessage{
			Code:    "IRS-15000",
			Message: "Internal server error.",
		})
	}
}

// ExtractOrgHandleFromPath pulls the organization handle out of paths shaped
// like /identity/v1/{org}/... .
func ExtractOrgHandleFromPath(r *http.Request) string {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	for i, part := range parts {
		if part == "v1" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}
