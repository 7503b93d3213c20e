package service

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/wso2/identity-resolution-service/internal/system/constants"
	errors2 "github.com/wso2/identity-resolution-service/internal/system/errors"
	"github.com/wso2/identity-resolution-service/internal/uniqueness_rules/model"
	"github.com/wso2/identity-resolution-service/internal/uniqueness_rules/store"
)

type UniquenessRuleServiceInterface interface {
	AddUniquenessRule(rule model.UniquenessRule) error
	GetUniquenessRules(orgHandle, pipelineId string) ([]model.UniquenessRule, error)
	GetUniquenessRule(ruleId string) (*model.UniquenessRule, error)
	ListActiveDetectRules(orgHandle, pipelineId string) ([]model.UniquenessRule, error)
	PatchUniquenessRule(ruleId string, updates map[string]interface{}) error
	DeleteUniquenessRule(orgHandle, ruleId string) error
}

// UniquenessRuleService is the default implementation of the UniquenessRuleServiceInterface.
type UniquenessRuleService struct{}

// GetUniquenessRuleService creates a new instance of UniquenessRuleService.
func GetUniquenessRuleService() UniquenessRuleServiceInterface {

	return &UniquenessRuleService{}
}

// AddUniquenessRule Adds a new uniqueness rule.
func (urs *UniquenessRuleService) AddUniquenessRule(rule model.UniquenessRule) error {

	switch rule.ActionMode {
	case constants.ActionModeDetectOnly, constants.ActionModeAutoMerge, constants.ActionModeAutoReject:
	default:
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_ACTION_MODE.Code,
			Message:     errors2.INVALID_ACTION_MODE.Message,
			Description: fmt.Sprintf("Action mode '%s' is not supported.", rule.ActionMode),
		}, http.StatusBadRequest)
	}

	if len(rule.ReferencedFieldNames()) == 0 {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.RULE_WITHOUT_CONDITIONS.Code,
			Message:     errors2.RULE_WITHOUT_CONDITIONS.Message,
			Description: fmt.Sprintf("Rule '%s' has no field conditions.", rule.RuleName),
		}, http.StatusBadRequest)
	}

	// Check if a rule with the same id already exists
	existingRule, err := store.GetUniquenessRule(rule.RuleId)
	if err != nil {
		return err
	}
	if existingRule != nil {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.RULE_ALREADY_EXISTS.Code,
			Message:     errors2.RULE_ALREADY_EXISTS.Message,
			Description: fmt.Sprintf("Uniqueness rule with id %s already exists", rule.RuleId),
		}, http.StatusConflict)
	}

	// Set timestamps
	now := time.Now().UTC().Unix()
	rule.CreatedAt = now
	rule.UpdatedAt = now

	return store.AddUniquenessRule(rule)
}

// GetUniquenessRules Fetches all uniqueness rules of a pipeline.
func (urs *UniquenessRuleService) GetUniquenessRules(orgHandle, pipelineId string) ([]model.UniquenessRule, error) {

	return store.GetUniquenessRules(orgHandle, pipelineId)
}

// GetUniquenessRule Fetches a specific uniqueness rule.
func (urs *UniquenessRuleService) GetUniquenessRule(ruleId string) (*model.UniquenessRule, error) {

	return store.GetUniquenessRule(ruleId)
}

// ListActiveDetectRules fetches the rules that participate in identity
// resolution: active rules whose action mode is detect-only, sorted by
// priority. Rules configured to auto-merge or auto-reject are not identity
// sources.
func (urs *UniquenessRuleService) ListActiveDetectRules(orgHandle, pipelineId string) ([]model.UniquenessRule, error) {

	rules, err := store.GetUniquenessRules(orgHandle, pipelineId)
	if err != nil {
		return nil, err
	}

	var detectRules []model.UniquenessRule
	for _, rule := range rules {
		if rule.IsActive && rule.ActionMode == constants.ActionModeDetectOnly {
			detectRules = append(detectRules, rule)
		}
	}
	sort.SliceStable(detectRules, func(i, j int) bool {
		return detectRules[i].Priority < detectRules[j].Priority
	})
	return detectRules, nil
}

// PatchUniquenessRule Applies a partial update on a specific uniqueness rule.
func (urs *UniquenessRuleService) PatchUniquenessRule(ruleId string, updates map[string]interface{}) error {

	// Only allow patching specific fields
	allowedFields := map[string]bool{
		"is_active": true,
		"priority":  true,
		"rule_name": true,
	}

	for field := range updates {
		if !allowedFields[field] {
			return errors2.NewClientError(errors2.ErrorMessage{
				Code:        errors2.BAD_REQUEST.Code,
				Message:     errors2.BAD_REQUEST.Message,
				Description: fmt.Sprintf("Field '%s' cannot be updated.", field),
			}, http.StatusBadRequest)
		}
	}

	return store.PatchUniquenessRule(ruleId, updates)
}

// DeleteUniquenessRule Removes a uniqueness rule.
func (urs *UniquenessRuleService) DeleteUniquenessRule(orgHandle, ruleId string) error {

	return store.DeleteUniquenessRule(orgHandle, ruleId)
}
