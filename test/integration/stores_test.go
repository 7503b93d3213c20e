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

package integration

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pipelineModel "github.com/wso2/identity-resolution-service/internal/pipeline/model"
	pipelineStore "github.com/wso2/identity-resolution-service/internal/pipeline/store"
	"github.com/wso2/identity-resolution-service/internal/system/constants"
	ruleModel "github.com/wso2/identity-resolution-service/internal/uniqueness_rules/model"
	ruleStore "github.com/wso2/identity-resolution-service/internal/uniqueness_rules/store"
)

func newTestPipeline(orgHandle, name string) pipelineModel.Pipeline {
	now := time.Now().Unix()
	pipelineId := uuid.New().String()
	return pipelineModel.Pipeline{
		PipelineId: pipelineId,
		OrgHandle:  orgHandle,
		Name:       name,
		IsActive:   true,
		Fields: []pipelineModel.Field{
			{
				FieldId:      uuid.New().String(),
				PipelineId:   pipelineId,
				Name:         "work_email",
				Type:         pipelineModel.FieldTypeEmail,
				DisplayOrder: 1,
			},
			{
				FieldId:      uuid.New().String(),
				PipelineId:   pipelineId,
				Name:         "full_name",
				Type:         pipelineModel.FieldTypeText,
				DisplayOrder: 2,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestPipelineStoreRoundTrip(t *testing.T) {
	pipeline := newTestPipeline("acme", "Sales")
	require.NoError(t, pipelineStore.AddPipeline(pipeline))

	stored, err := pipelineStore.GetPipeline("acme", pipeline.PipelineId)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Sales", stored.Name)
	assert.True(t, stored.IsActive)
	require.Len(t, stored.Fields, 2)
	assert.Equal(t, "work_email", stored.Fields[0].Name)
	assert.Equal(t, pipelineModel.FieldTypeEmail, stored.Fields[0].Type)

	require.NoError(t, pipelineStore.DeletePipeline("acme", pipeline.PipelineId))

	stored, err = pipelineStore.GetPipeline("acme", pipeline.PipelineId)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestGetActivePipelinesIsTenantScoped(t *testing.T) {
	acme := newTestPipeline("acme-scope", "Sales")
	globex := newTestPipeline("globex-scope", "Recruiting")
	require.NoError(t, pipelineStore.AddPipeline(acme))
	require.NoError(t, pipelineStore.AddPipeline(globex))
	t.Cleanup(func() {
		_ = pipelineStore.DeletePipeline("acme-scope", acme.PipelineId)
		_ = pipelineStore.DeletePipeline("globex-scope", globex.PipelineId)
	})

	pipelines, err := pipelineStore.GetActivePipelines("acme-scope")
	require.NoError(t, err)
	require.Len(t, pipelines, 1)
	assert.Equal(t, acme.PipelineId, pipelines[0].PipelineId)
}

func TestGetActivePipelinesExcludesInactive(t *testing.T) {
	active := newTestPipeline("acme-inactive", "Sales")
	inactive := newTestPipeline("acme-inactive", "Archived")
	inactive.IsActive = false
	require.NoError(t, pipelineStore.AddPipeline(active))
	require.NoError(t, pipelineStore.AddPipeline(inactive))
	t.Cleanup(func() {
		_ = pipelineStore.DeletePipeline("acme-inactive", active.PipelineId)
		_ = pipelineStore.DeletePipeline("acme-inactive", inactive.PipelineId)
	})

	pipelines, err := pipelineStore.GetActivePipelines("acme-inactive")
	require.NoError(t, err)
	require.Len(t, pipelines, 1)
	assert.Equal(t, active.PipelineId, pipelines[0].PipelineId)
}

func TestGetPipelineFromAnotherTenantIsNotVisible(t *testing.T) {
	pipeline := newTestPipeline("acme-cross", "Sales")
	require.NoError(t, pipelineStore.AddPipeline(pipeline))
	t.Cleanup(func() { _ = pipelineStore.DeletePipeline("acme-cross", pipeline.PipelineId) })

	stored, err := pipelineStore.GetPipeline("globex-cross", pipeline.PipelineId)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func newTestRule(orgHandle, pipelineId, name string, priority int) ruleModel.UniquenessRule {
	now := time.Now().Unix()
	return ruleModel.UniquenessRule{
		RuleId:     uuid.New().String(),
		OrgHandle:  orgHandle,
		PipelineId: pipelineId,
		RuleName:   name,
		ActionMode: constants.ActionModeDetectOnly,
		ConditionGroups: []ruleModel.ConditionGroup{
			{Conditions: []ruleModel.Condition{
				{FieldName: "work_email", MatchType: constants.MatchTypeExact},
			}},
			{Conditions: []ruleModel.Condition{
				{FieldName: "full_name", MatchType: constants.MatchTypeContains},
				{FieldName: "phone", MatchType: constants.MatchTypeExact},
			}},
		},
		Priority:  priority,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUniquenessRuleStoreRoundTrip(t *testing.T) {
	pipeline := newTestPipeline("acme-rules", "Sales")
	require.NoError(t, pipelineStore.AddPipeline(pipeline))
	t.Cleanup(func() { _ = pipelineStore.DeletePipeline("acme-rules", pipeline.PipelineId) })

	rule := newTestRule("acme-rules", pipeline.PipelineId, "email-exact", 1)
	require.NoError(t, ruleStore.AddUniquenessRule(rule))
	t.Cleanup(func() { _ = ruleStore.DeleteUniquenessRule("acme-rules", rule.RuleId) })

	stored, err := ruleStore.GetUniquenessRule(rule.RuleId)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "email-exact", stored.RuleName)
	assert.Equal(t, constants.ActionModeDetectOnly, stored.ActionMode)
	// Condition groups survive the JSONB round trip intact.
	require.Len(t, stored.ConditionGroups, 2)
	require.Len(t, stored.ConditionGroups[1].Conditions, 2)
	assert.Equal(t, "phone", stored.ConditionGroups[1].Conditions[1].FieldName)
	assert.Equal(t, constants.MatchTypeExact, stored.ConditionGroups[1].Conditions[1].MatchType)
}

func TestGetUniquenessRulesOrderedByPriority(t *testing.T) {
	pipeline := newTestPipeline("acme-priority", "Sales")
	require.NoError(t, pipelineStore.AddPipeline(pipeline))
	t.Cleanup(func() { _ = pipelineStore.DeletePipeline("acme-priority", pipeline.PipelineId) })

	second := newTestRule("acme-priority", pipeline.PipelineId, "name-contains", 2)
	first := newTestRule("acme-priority", pipeline.PipelineId, "email-exact", 1)
	require.NoError(t, ruleStore.AddUniquenessRule(second))
	require.NoError(t, ruleStore.AddUniquenessRule(first))
	t.Cleanup(func() {
		_ = ruleStore.DeleteUniquenessRule("acme-priority", second.RuleId)
		_ = ruleStore.DeleteUniquenessRule("acme-priority", first.RuleId)
	})

	rules, err := ruleStore.GetUniquenessRules("acme-priority", pipeline.PipelineId)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "email-exact", rules[0].RuleName)
	assert.Equal(t, "name-contains", rules[1].RuleName)
}

func TestPatchUniquenessRule(t *testing.T) {
	pipeline := newTestPipeline("acme-patch", "Sales")
	require.NoError(t, pipelineStore.AddPipeline(pipeline))
	t.Cleanup(func() { _ = pipelineStore.DeletePipeline("acme-patch", pipeline.PipelineId) })

	rule := newTestRule("acme-patch", pipeline.PipelineId, "email-exact", 1)
	require.NoError(t, ruleStore.AddUniquenessRule(rule))
	t.Cleanup(func() { _ = ruleStore.DeleteUniquenessRule("acme-patch", rule.RuleId) })

	err := ruleStore.PatchUniquenessRule(rule.RuleId, map[string]interface{}{
		"rule_name": "email-strict",
		"priority":  5,
		"is_active": false,
	})
	require.NoError(t, err)

	stored, err := ruleStore.GetUniquenessRule(rule.RuleId)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "email-strict", stored.RuleName)
	assert.Equal(t, 5, stored.Priority)
	assert.False(t, stored.IsActive)
}

func TestDeleteUniquenessRule(t *testing.T) {
	pipeline := newTestPipeline("acme-del", "Sales")
	require.NoError(t, pipelineStore.AddPipeline(pipeline))
	t.Cleanup(func() { _ = pipelineStore.DeletePipeline("acme-del", pipeline.PipelineId) })

	rule := newTestRule("acme-del", pipeline.PipelineId, "email-exact", 1)
	require.NoError(t, ruleStore.AddUniquenessRule(rule))

	require.NoError(t, ruleStore.DeleteUniquenessRule("acme-del", rule.RuleId))

	stored, err := ruleStore.GetUniquenessRule(rule.RuleId)
	require.NoError(t, err)
	assert.Nil(t, stored)
}
