package store

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/wso2/identity-resolution-service/internal/system/database/provider"
	"github.com/wso2/identity-resolution-service/internal/system/database/scripts"
	errors2 "github.com/wso2/identity-resolution-service/internal/system/errors"
	"github.com/wso2/identity-resolution-service/internal/system/log"
	"github.com/wso2/identity-resolution-service/internal/uniqueness_rules/model"
)

// AddUniquenessRule adds a new uniqueness rule to the database.
func AddUniquenessRule(rule model.UniquenessRule) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for adding uniqueness rule: %s", rule.RuleName)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DB_CLIENT_INIT.Code,
			Message:     errors2.DB_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	groupsJSON, err := json.Marshal(rule.ConditionGroups)
	if err != nil {
		return errors2.NewServerError(errors2.MARSHAL_JSON, err)
	}
	conditionsJSON, err := json.Marshal(rule.Conditions)
	if err != nil {
		return errors2.NewServerError(errors2.MARSHAL_JSON, err)
	}

	query := scripts.InsertUniquenessRule[provider.NewDBProvider().GetDBType()]
	_, err = dbClient.ExecuteQuery(query, rule.RuleId, rule.OrgHandle, rule.PipelineId, rule.RuleName,
		rule.ActionMode, groupsJSON, conditionsJSON, rule.Priority, rule.IsActive, rule.CreatedAt, rule.UpdatedAt)
	if err != nil {
		errorMsg := fmt.Sprintf("Error occurred while adding uniqueness rule: %s", rule.RuleName)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Info(fmt.Sprintf("Uniqueness rule : %s added successfully", rule.RuleName))
	return nil
}

// GetUniquenessRules fetches all uniqueness rules of a pipeline, ordered by priority.
func GetUniquenessRules(orgHandle, pipelineId string) ([]model.UniquenessRule, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for fetching uniqueness rules of pipeline: %s", pipelineId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DB_CLIENT_INIT.Code,
			Message:     errors2.DB_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetUniquenessRulesByPipeline[provider.NewDBProvider().GetDBType()]
	results, err := dbClient.ExecuteQuery(query, orgHandle, pipelineId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed in fetching uniqueness rules for pipeline: %s", pipelineId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}

	var rules []model.UniquenessRule
	for _, row := range results {
		rule, err := scanRuleRow(row)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, nil
}

// GetUniquenessRule fetches a specific uniqueness rule by its id.
func GetUniquenessRule(ruleId string) (*model.UniquenessRule, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for fetching uniqueness rule: %s", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DB_CLIENT_INIT.Code,
			Message:     errors2.DB_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetUniquenessRuleById[provider.NewDBProvider().GetDBType()]
	results, err := dbClient.ExecuteQuery(query, ruleId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed in fetching uniqueness rule: %s", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	rule, err := scanRuleRow(results[0])
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// PatchUniquenessRule applies a partial update on a uniqueness rule.
func PatchUniquenessRule(ruleId string, updates map[string]interface{}) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for updating uniqueness rule: %s", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DB_CLIENT_INIT.Code,
			Message:     errors2.DB_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	var assignments []string
	var args []interface{}
	position := 1
	for field, value := range updates {
		assignments = append(assignments, field+" = $"+strconv.Itoa(position))
		args = append(args, value)
		position++
	}

	queryTemplate := scripts.PatchUniquenessRule[provider.NewDBProvider().GetDBType()]
	query := fmt.Sprintf(queryTemplate, strings.Join(assignments, ", "), position, position+1)
	args = append(args, time.Now().UTC().Unix(), ruleId)

	if _, err = dbClient.ExecuteQuery(query, args...); err != nil {
		errorMsg := fmt.Sprintf("Error occurred while updating uniqueness rule: %s", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Info(fmt.Sprintf("Uniqueness rule : %s updated successfully", ruleId))
	return nil
}

// DeleteUniquenessRule removes a uniqueness rule.
func DeleteUniquenessRule(orgHandle, ruleId string) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for deleting uniqueness rule: %s", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DB_CLIENT_INIT.Code,
			Message:     errors2.DB_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.DeleteUniquenessRule[provider.NewDBProvider().GetDBType()]
	if _, err = dbClient.ExecuteQuery(query, orgHandle, ruleId); err != nil {
		errorMsg := fmt.Sprintf("Error occurred while deleting uniqueness rule: %s", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Info(fmt.Sprintf("Uniqueness rule : %s deleted successfully", ruleId))
	return nil
}

// Unmarshal JSONB columns separately
func scanRuleRow(row map[string]interface{}) (model.UniquenessRule, error) {

	var rule model.UniquenessRule
	rule.RuleId = row["rule_id"].(string)
	rule.OrgHandle = row["tenant_id"].(string)
	rule.PipelineId = row["pipeline_id"].(string)
	rule.RuleName = row["rule_name"].(string)
	rule.ActionMode = row["action_mode"].(string)
	rule.Priority = int(row["priority"].(int64))
	rule.IsActive = row["is_active"].(bool)
	rule.CreatedAt = row["created_at"].(int64)
	rule.UpdatedAt = row["updated_at"].(int64)

	logger := log.GetLogger()
	if raw, ok := row["condition_groups"].([]byte); ok && len(raw) > 0 {
		if err := json.Unmarshal(raw, &rule.ConditionGroups); err != nil {
			errorMsg := fmt.Sprintf("Failed to unmarshal condition groups of rule: %s", rule.RuleId)
			logger.Debug(errorMsg, log.Error(err))
			return model.UniquenessRule{}, errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.UNMARSHAL_JSON.Code,
				Message:     errors2.UNMARSHAL_JSON.Message,
				Description: errorMsg,
			}, err)
		}
	}
	if raw, ok := row["conditions"].([]byte); ok && len(raw) > 0 {
		if err := json.Unmarshal(raw, &rule.Conditions); err != nil {
			errorMsg := fmt.Sprintf("Failed to unmarshal conditions of rule: %s", rule.RuleId)
			logger.Debug(errorMsg, log.Error(err))
			return model.UniquenessRule{}, errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.UNMARSHAL_JSON.Code,
				Message:     errors2.UNMARSHAL_JSON.Message,
				Description: errorMsg,
			}, err)
		}
	}
	return rule, nil
}
