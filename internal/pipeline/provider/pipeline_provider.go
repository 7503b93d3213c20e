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

package provider

import (
	"github.com/wso2/identity-resolution-service/internal/pipeline/service"
)

// PipelineProviderInterface defines the interface for the pipeline provider.
type PipelineProviderInterface interface {
	GetPipelineService() service.PipelineServiceInterface
}

// PipelineProvider is the default implementation of the PipelineProviderInterface.
type PipelineProvider struct{}

// NewPipelineProvider creates a new instance of PipelineProvider.
func NewPipelineProvider() PipelineProviderInterface {

	return &PipelineProvider{}
}

// GetPipelineService returns the pipeline service instance.
func (pp *PipelineProvider) GetPipelineService() service.PipelineServiceInterface {

	return service.GetPipelineService()
}
