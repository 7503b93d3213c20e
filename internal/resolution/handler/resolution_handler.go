/*
 * Copyright (c) 2025-2026, WSO2 LLC. (http://www.wso2.com).
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

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/wso2/identity-resolution-service/internal/resolution/model"
	"github.com/wso2/identity-resolution-service/internal/resolution/provider"
	"github.com/wso2/identity-resolution-service/internal/resolution/service"
	errors2 "github.com/wso2/identity-resolution-service/internal/system/errors"
	"github.com/wso2/identity-resolution-service/internal/system/log"
	"github.com/wso2/identity-resolution-service/internal/system/utils"
)

type ResolutionHandler struct{}

func NewResolutionHandler() *ResolutionHandler {

	return &ResolutionHandler{}
}

// ResolveIdentity handles a single identity resolution request.
func (rh *ResolutionHandler) ResolveIdentity(w http.ResponseWriter, r *http.Request) {

	var request model.ResolveAPIRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&request); err != nil {
		clientError := errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "resolution request"),
		}, http.StatusBadRequest)
		utils.WriteErrorResponse(w, clientError)
		return
	}

	orgHandle := utils.ExtractOrgHandleFromPath(r)
	if orgHandle == "" {
		utils.HandleError(w, errors2.NewClientError(errors2.INVALID_ORG_HANDLE, http.StatusBadRequest))
		return
	}

	resolutionService, err := provider.NewResolutionProvider().GetResolutionService()
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	result, err := resolutionService.ResolveIdentity(r.Context(), orgHandle, request.Identifiers,
		service.ResolveOptions{
			Pipelines:     request.Pipelines,
			MinConfidence: request.MinConfidence,
		})
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	logger := log.GetLogger()
	logger.Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypeSystem,
		TargetID:      orgHandle,
		TargetType:    log.TargetTypeResolution,
		ActionID:      log.ActionResolveIdentity,
		Data: map[string]string{
			"org_handle": orgHandle,
		},
	})

	utils.WriteJSONResponse(w, http.StatusOK, result)
}

// ResolveBatch handles a batch resolution request.
func (rh *ResolutionHandler) ResolveBatch(w http.ResponseWriter, r *http.Request) {

	var request model.ResolveBatchAPIRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&request); err != nil {
		clientError := errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "batch resolution request"),
		}, http.StatusBadRequest)
		utils.WriteErrorResponse(w, clientError)
		return
	}

	orgHandle := utils.ExtractOrgHandleFromPath(r)
	if orgHandle == "" {
		utils.HandleError(w, errors2.NewClientError(errors2.INVALID_ORG_HANDLE, http.StatusBadRequest))
		return
	}

	resolutionService, err := provider.NewResolutionProvider().GetResolutionService()
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	entries, err := resolutionService.ResolveBatch(r.Context(), orgHandle, request.Items, request.MaxConcurrent)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	response := model.ResolveBatchAPIResponse{
		Results: make([]model.BatchItemAPIResponse, len(entries)),
	}
	for i, entry := range entries {
		if entry.Err != nil {
			response.Results[i].Error = entry.Err.Error()
			continue
		}
		response.Results[i].Result = entry.Result
	}
	utils.WriteJSONResponse(w, http.StatusOK, response)
}

// DecideStorage handles a storage-decision request: resolve, then gate.
func (rh *ResolutionHandler) DecideStorage(w http.ResponseWriter, r *http.Request) {

	var request model.StorageDecisionAPIRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&request); err != nil {
		clientError := errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "storage decision request"),
		}, http.StatusBadRequest)
		utils.WriteErrorResponse(w, clientError)
		return
	}

	orgHandle := utils.ExtractOrgHandleFromPath(r)
	if orgHandle == "" {
		utils.HandleError(w, errors2.NewClientError(errors2.INVALID_ORG_HANDLE, http.StatusBadRequest))
		return
	}

	resolutionService, err := provider.NewResolutionProvider().GetResolutionService()
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	result, decision, err := resolutionService.DecideStorage(r.Context(), orgHandle,
		request.Identifiers, request.Threshold)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, model.StorageDecisionAPIResponse{
		Decision:   decision,
		Resolution: result,
	})
}

// InvalidateCache evicts cached resolutions of the tenant. A request body
// with identifiers evicts one entry; an empty body flushes the tenant.
func (rh *ResolutionHandler) InvalidateCache(w http.ResponseWriter, r *http.Request) {

	orgHandle := utils.ExtractOrgHandleFromPath(r)
	if orgHandle == "" {
		utils.HandleError(w, errors2.NewClientError(errors2.INVALID_ORG_HANDLE, http.StatusBadRequest))
		return
	}

	var request model.CacheInvalidationAPIRequest
	if r.Body != nil && r.ContentLength != 0 {
		decoder := json.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&request); err != nil {
			clientError := errors2.NewClientError(errors2.ErrorMessage{
				Code:        errors2.BAD_REQUEST.Code,
				Message:     errors2.BAD_REQUEST.Message,
				Description: utils.HandleDecodeError(err, "cache invalidation request"),
			}, http.StatusBadRequest)
			utils.WriteErrorResponse(w, clientError)
			return
		}
	}

	resolutionService, err := provider.NewResolutionProvider().GetResolutionService()
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	if request.Identifiers != nil {
		err = resolutionService.InvalidateCachedResolution(r.Context(), orgHandle, *request.Identifiers)
	} else {
		err = resolutionService.FlushTenantResolutions(r.Context(), orgHandle)
	}
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	logger := log.GetLogger()
	logger.Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypeSystem,
		TargetID:      orgHandle,
		TargetType:    log.TargetTypeResolution,
		ActionID:      log.ActionFlushResolutionCache,
		Data:          map[string]string{"org_handle": orgHandle},
	})

	w.WriteHeader(http.StatusNoContent)
}
