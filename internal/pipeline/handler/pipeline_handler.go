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
	"time"

	"github.com/google/uuid"

	"github.com/wso2/identity-resolution-service/internal/pipeline/model"
	"github.com/wso2/identity-resolution-service/internal/pipeline/provider"
	errors2 "github.com/wso2/identity-resolution-service/internal/system/errors"
	"github.com/wso2/identity-resolution-service/internal/system/log"
	"github.com/wso2/identity-resolution-service/internal/system/utils"
)

type PipelineHandler struct{}

func NewPipelineHandler() *PipelineHandler {

	return &PipelineHandler{}
}

// AddPipeline handles adding a new pipeline.
func (ph *PipelineHandler) AddPipeline(w http.ResponseWriter, r *http.Request) {

	var pipelineInRequest model.PipelineAPIRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&pipelineInRequest); err != nil {
		clientError := errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "pipeline"),
		}, http.StatusBadRequest)
		utils.WriteErrorResponse(w, clientError)
		return
	}

	orgHandle := utils.ExtractOrgHandleFromPath(r)
	if orgHandle == "" {
		utils.HandleError(w, errors2.NewClientError(errors2.INVALID_ORG_HANDLE, http.StatusBadRequest))
		return
	}

	now := time.Now().UTC().Unix()
	pipeline := model.Pipeline{
		PipelineId: uuid.New().String(),
		OrgHandle:  orgHandle,
		Name:       pipelineInRequest.Name,
		IsActive:   pipelineInRequest.IsActive,
		Fields:     pipelineInRequest.Fields,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for i := range pipeline.Fields {
		pipeline.Fields[i].FieldId = uuid.New().String()
		pipeline.Fields[i].PipelineId = pipeline.PipelineId
	}

	pipelineService := provider.NewPipelineProvider().GetPipelineService()
	if err := pipelineService.AddPipeline(pipeline); err != nil {
		utils.HandleError(w, err)
		return
	}

	logger := log.GetLogger()
	logger.Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      pipeline.PipelineId,
		TargetType:    log.TargetTypePipeline,
		ActionID:      log.ActionAddPipeline,
		Data: map[string]string{
			"org_handle":    orgHandle,
			"pipeline_name": pipeline.Name,
		},
	})

	utils.WriteJSONResponse(w, http.StatusCreated, pipeline)
}

// GetPipelines handles fetching the active pipelines of the organization.
func (ph *PipelineHandler) GetPipelines(w http.ResponseWriter, r *http.Request) {

	orgHandle := utils.ExtractOrgHandleFromPath(r)
	if orgHandle == "" {
		utils.HandleError(w, errors2.NewClientError(errors2.INVALID_ORG_HANDLE, http.StatusBadRequest))
		return
	}

	pipelineService := provider.NewPipelineProvider().GetPipelineService()
	pipelines, err := pipelineService.GetActivePipelines(orgHandle)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if pipelines == nil {
		pipelines = []model.Pipeline{}
	}
	utils.WriteJSONResponse(w, http.StatusOK, pipelines)
}

// GetPipeline fetches a specific pipeline.
func (ph *PipelineHandler) GetPipeline(w http.ResponseWriter, r *http.Request) {

	orgHandle := utils.ExtractOrgHandleFromPath(r)
	if orgHandle == "" {
		utils.HandleError(w, errors2.NewClientError(errors2.INVALID_ORG_HANDLE, http.StatusBadRequest))
		return
	}
	pipelineId := r.PathValue("pipelineId")
	if pipelineId == "" {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}

	pipelineService := provider.NewPipelineProvider().GetPipelineService()
	pipeline, err := pipelineService.GetPipeline(orgHandle, pipelineId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if pipeline == nil {
		utils.HandleError(w, errors2.NewClientError(errors2.PIPELINE_NOT_FOUND, http.StatusNotFound))
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, pipeline)
}

// DeletePipeline removes a pipeline.
func (ph *PipelineHandler) DeletePipeline(w http.ResponseWriter, r *http.Request) {

	orgHandle := utils.ExtractOrgHandleFromPath(r)
	if orgHandle == "" {
		utils.HandleError(w, errors2.NewClientError(errors2.INVALID_ORG_HANDLE, http.StatusBadRequest))
		return
	}
	pipelineId := r.PathValue("pipelineId")
	if pipelineId == "" {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}

	pipelineService := provider.NewPipelineProvider().GetPipelineService()
	if err := pipelineService.DeletePipeline(orgHandle, pipelineId); err != nil {
		utils.HandleError(w, err)
		return
	}

	logger := log.GetLogger()
	logger.Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      pipelineId,
		TargetType:    log.TargetTypePipeline,
		ActionID:      log.ActionDeletePipeline,
		Data:          map[string]string{"org_handle": orgHandle},
	})

	w.WriteHeader(http.StatusNoContent)
}
