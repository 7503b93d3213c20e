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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pipelineModel "github.com/wso2/identity-resolution-service/internal/pipeline/model"
	"github.com/wso2/identity-resolution-service/internal/system/constants"
	ruleModel "github.com/wso2/identity-resolution-service/internal/uniqueness_rules/model"
)

func TestFilterEligiblePipelines(t *testing.T) {
	pipelines := []pipelineModel.Pipeline{
		{PipelineId: "p1", Name: "Sales"},
		{PipelineId: "p2", Name: "Recruiting"},
		{PipelineId: "p3", Name: "Partners"},
	}
	rulesByPipeline := map[string][]ruleModel.UniquenessRule{
		"p1": {{RuleId: "r1", IsActive: true, ActionMode: constants.ActionModeDetectOnly}},
		// Only inactive or non-detect rules: structurally skipped.
		"p2": {
			{RuleId: "r2", IsActive: false, ActionMode: constants.ActionModeDetectOnly},
			{RuleId: "r3", IsActive: true, ActionMode: constants.ActionModeAutoMerge},
		},
	}

	eligible, skipped := FilterEligiblePipelines(pipelines, rulesByPipeline)

	require.Len(t, eligible, 1)
	assert.Equal(t, "p1", eligible[0].Pipeline.PipelineId)
	assert.Equal(t, []string{"Recruiting", "Partners"}, skipped)
}

func TestFilterEligiblePipelinesKeepsOnlyDetectRules(t *testing.T) {
	pipelines := []pipelineModel.Pipeline{{PipelineId: "p1", Name: "Sales"}}
	rulesByPipeline := map[string][]ruleModel.UniquenessRule{
		"p1": {
			{RuleId: "r1", IsActive: true, ActionMode: constants.ActionModeDetectOnly},
			{RuleId: "r2", IsActive: true, ActionMode: constants.ActionModeAutoReject},
		},
	}

	eligible, skipped := FilterEligiblePipelines(pipelines, rulesByPipeline)

	require.Len(t, eligible, 1)
	require.Len(t, eligible[0].Rules, 1)
	assert.Equal(t, "r1", eligible[0].Rules[0].RuleId)
	assert.Empty(t, skipped)
}

func TestFilterEligiblePipelinesEmptyInput(t *testing.T) {
	eligible, skipped := FilterEligiblePipelines(nil, nil)

	assert.Empty(t, eligible)
	assert.Empty(t, skipped)
}
