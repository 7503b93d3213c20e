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

package service

import (
	"net/http"

	"github.com/wso2/identity-resolution-service/internal/pipeline/model"
	"github.com/wso2/identity-resolution-service/internal/pipeline/store"
	errors2 "github.com/wso2/identity-resolution-service/internal/system/errors"
)

type PipelineServiceInterface interface {
	AddPipeline(pipeline model.Pipeline) error
	GetActivePipelines(orgHandle string) ([]model.Pipeline, error)
	GetPipeline(orgHandle, pipelineId string) (*model.Pipeline, error)
	DeletePipeline(orgHandle, pipelineId string) error
}

// PipelineService is the default implementation of the PipelineServiceInterface.
type PipelineService struct{}

// GetPipelineService creates a new instance of PipelineService.
func GetPipelineService() PipelineServiceInterface {

	return &PipelineService{}
}

// AddPipeline adds a new pipeline after validating its fields.
func (ps *PipelineService) AddPipeline(pipeline model.Pipeline) error {

	if pipeline.Name == "" {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: "Pipeline name is required.",
		}, http.StatusBadRequest)
	}

	seen := make(map[string]bool, len(pipeline.Fields))
	for _, field := range pipeline.Fields {
		if field.Name == "" {
			return errors2.NewClientError(errors2.ErrorMessage{
				Code:        errors2.BAD_REQUEST.Code,
				Message:     errors2.BAD_REQUEST.Message,
				Description: "Pipeline fields must be named.",
			}, http.StatusBadRequest)
		}
		if seen[field.Name] {
			return errors2.NewClientError(errors2.ErrorMessage{
				Code:        errors2.BAD_REQUEST.Code,
				Message:     errors2.BAD_REQUEST.Message,
				Description: "Duplicate field name: " + field.Name,
			}, http.StatusBadRequest)
		}
		seen[field.Name] = true
	}

	return store.AddPipeline(pipeline)
}

// GetActivePipelines fetches all active pipelines for an organization.
func (ps *PipelineService) GetActivePipelines(orgHandle string) ([]model.Pipeline, error) {

	return store.GetActivePipelines(orgHandle)
}

// GetPipeline fetches a specific pipeline.
func (ps *PipelineService) GetPipeline(orgHandle, pipelineId string) (*model.Pipeline, error) {

	return store.GetPipeline(orgHandle, pipelineId)
}

// DeletePipeline removes a pipeline.
func (ps *PipelineService) DeletePipeline(orgHandle, pipelineId string) error {

	return store.DeletePipeline(orgHandle, pipelineId)
}
