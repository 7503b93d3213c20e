package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errors2 "github.com/wso2/identity-resolution-service/internal/system/errors"
	"github.com/wso2/identity-resolution-service/internal/system/log"
	"github.com/wso2/identity-resolution-service/internal/uniqueness_rules/model"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	m.Run()
}

func TestAddUniquenessRuleRejectsUnknownActionMode(t *testing.T) {
	rule := model.UniquenessRule{
		RuleId:     "r1",
		PipelineId: "p1",
		RuleName:   "email-exact",
		ActionMode: "merge_maybe",
		Conditions: []model.Condition{{FieldName: "work_email", MatchType: "exact"}},
	}

	err := GetUniquenessRuleService().AddUniquenessRule(rule)

	var clientErr *errors2.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
	assert.Equal(t, errors2.INVALID_ACTION_MODE.Code, clientErr.Code)
}

func TestAddUniquenessRuleRejectsRuleWithoutConditions(t *testing.T) {
	rule := model.UniquenessRule{
		RuleId:     "r1",
		PipelineId: "p1",
		RuleName:   "empty-rule",
		ActionMode: "detect_only",
	}

	err := GetUniquenessRuleService().AddUniquenessRule(rule)

	var clientErr *errors2.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
	assert.Equal(t, errors2.RULE_WITHOUT_CONDITIONS.Code, clientErr.Code)
}

func TestPatchUniquenessRuleRejectsImmutableFields(t *testing.T) {
	err := GetUniquenessRuleService().PatchUniquenessRule("r1", map[string]interface{}{
		"pipeline_id": "p2",
	})

	var clientErr *errors2.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
}
