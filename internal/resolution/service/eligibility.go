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
	pipelineModel "github.com/wso2/identity-resolution-service/internal/pipeline/model"
	"github.com/wso2/identity-resolution-service/internal/system/constants"
	ruleModel "github.com/wso2/identity-resolution-service/internal/uniqueness_rules/model"
)

// EligiblePipeline pairs a pipeline with its resolution-relevant rules.
type EligiblePipeline struct {
	Pipeline pipelineModel.Pipeline
	Rules    []ruleModel.UniquenessRule
}

// FilterEligiblePipelines partitions pipelines into those searchable for
// identity resolution and those that are not. A pipeline without at least
// one active detect-only rule has no defined notion of a unique record, so
// it is structurally skipped rather than searched by ad hoc field guessing;
// skipped pipeline names are reported, not hidden.
func FilterEligiblePipelines(pipelines []pipelineModel.Pipeline,
	rulesByPipeline map[string][]ruleModel.UniquenessRule) (eligible []EligiblePipeline, skipped []string) {

	for _, pipeline := range pipelines {
		var detectRules []ruleModel.UniquenessRule
		for _, rule := range rulesByPipeline[pipeline.PipelineId] {
			if rule.IsActive && rule.ActionMode == constants.ActionModeDetectOnly {
				detectRules = append(detectRules, rule)
			}
		}
		if len(detectRules) == 0 {
			skipped = append(skipped, pipeline.Name)
			continue
		}
		eligible = append(eligible, EligiblePipeline{Pipeline: pipeline, Rules: detectRules})
	}
	return eligible, skipped
}
