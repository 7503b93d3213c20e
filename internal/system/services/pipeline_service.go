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

package services

import (
	"net/http"

	"github.com/wso2/identity-resolution-service/internal/pipeline/handler"
)

// PipelineService exposes the pipeline operator endpoints.
type PipelineService struct {
	pipelineHandler *handler.PipelineHandler
}

// NewPipelineService creates a new PipelineService instance.
func NewPipelineService(mux *http.ServeMux, basePath string) *PipelineService {

	svc := &PipelineService{
		pipelineHandler: handler.NewPipelineHandler(),
	}
	svc.registerRoutes(mux, basePath)
	return svc
}

func (s *PipelineService) registerRoutes(mux *http.ServeMux, basePath string) {

	mux.HandleFunc("POST "+basePath+"/v1/{orgHandle}/pipelines", s.pipelineHandler.AddPipeline)
	mux.HandleFunc("GET "+basePath+"/v1/{orgHandle}/pipelines", s.pipelineHandler.GetPipelines)
	mux.HandleFunc("GET "+basePath+"/v1/{orgHandle}/pipelines/{pipelineId}", s.pipelineHandler.GetPipeline)
	mux.HandleFunc("DELETE "+basePath+"/v1/{orgHandle}/pipelines/{pipelineId}", s.pipelineHandler.DeletePipeline)
}
