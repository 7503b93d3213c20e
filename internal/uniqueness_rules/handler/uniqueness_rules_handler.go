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

	"github.com/google/uuid"

	errors2 "github.com/wso2/identity-resolution-service/internal/system/errors"
	"github.com/wso2/identity-resolution-service/internal/system/log"
	"github.com/wso2/identity-resolution-service/internal/system/utils"
	"github.com/wso2/identity-resolution-service/internal/uniqueness_rules/model"
	"github.com/wso2/identity-resolution-service/internal/uniqueness_rules/provider"
)

type UniquenessRulesHandler struct{}

func NewUniquenessRulesHandler() *UniquenessRulesHandler {

	return &UniquenessRulesHandler{}
}

// AddUniquenessRule handles adding a new rule.
func (urh *UniquenessRulesHandler) AddUniquenessRule(w http.ResponseWriter, r *http.Request) {

	var ruleInRequest model.UniquenessRuleAPIRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&ruleInRequest); err != nil {
		clientError := errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "uniqueness rule"),
		}, http.StatusBadRequest)
		utils.WriteErrorResponse(w, clientError)
		return
	}

	orgHandle := utils.ExtractOrgHandleFromPath(r)
	if orgHandle == "" {
		utils.HandleError(w, errors2.NewClientError(errors2.INVALID_ORG_HANDLE, http.StatusBadRequest))
		return
	}

	rule := model.UniquenessRule{
		RuleId:          uuid.New().String(),
		OrgHandle:       orgHandle,
		PipelineId:      ruleInRequest.PipelineId,
		RuleName:        ruleInRequest.RuleName,
		ActionMode:      ruleInRequest.ActionMode,
		ConditionGroups: ruleInRequest.ConditionGroups,
		Conditions:      ruleInRequest.Conditions,
		Priority:        ruleInRequest.Priority,
		IsActive:        ruleInRequest.IsActive,
	}

	ruleService := provider.NewUniquenessRuleProvider().GetUniquenessRuleService()
	if err := ruleService.AddUniquenessRule(rule); err != nil {
		utils.HandleError(w, err)
		return
	}

	logger := log.GetLogger()
	logger.Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      rule.RuleId,
		TargetType:    log.TargetTypeUniquenessRule,
		ActionID:      log.ActionAddUniquenessRule,
		Data: map[string]string{
			"org_handle":  orgHandle,
			"pipeline_id": rule.PipelineId,
			"rule_name":   rule.RuleName,
		},
	})

	addedRule, err := ruleService.GetUniquenessRule(rule.RuleId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, addedRule)
}

// GetUniquenessRules handles fetching the rules of a pipeline.
func (urh *UniquenessRulesHandler) GetUniquenessRules(w http.ResponseWriter, r *http.Request) {

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

	ruleService := provider.NewUniquenessRuleProvider().GetUniquenessRuleService()
	rules, err := ruleService.GetUniquenessRules(orgHandle, pipelineId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if rules == nil {
		rules = []model.UniquenessRule{}
	}
	utils.WriteJSONResponse(w, http.StatusOK, rules)
}

// GetUniquenessRule fetches a specific uniqueness rule.
func (urh *UniquenessRulesHandler) GetUniquenessRule(w http.ResponseWriter, r *http.Request) {

	ruleId := r.PathValue("ruleId")
	if ruleId == "" {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}

	ruleService := provider.NewUniquenessRuleProvider().GetUniquenessRuleService()
	rule, err := ruleService.GetUniquenessRule(ruleId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if rule == nil {
		utils.HandleError(w, errors2.NewClientError(errors2.RULE_NOT_FOUND, http.StatusNotFound))
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, rule)
}

// PatchUniquenessRule applies partial updates to a uniqueness rule.
func (urh *UniquenessRulesHandler) PatchUniquenessRule(w http.ResponseWriter, r *http.Request) {

	ruleId := r.PathValue("ruleId")
	if ruleId == "" {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}
	orgHandle := utils.ExtractOrgHandleFromPath(r)
	if orgHandle == "" {
		utils.HandleError(w, errors2.NewClientError(errors2.INVALID_ORG_HANDLE, http.StatusBadRequest))
		return
	}

	var ruleUpdateRequest model.UniquenessRuleUpdateRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&ruleUpdateRequest); err != nil {
		clientError := errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "uniqueness rule"),
		}, http.StatusBadRequest)
		utils.WriteErrorResponse(w, clientError)
		return
	}

	updates := make(map[string]interface{})
	if ruleUpdateRequest.RuleName != nil {
		updates["rule_name"] = *ruleUpdateRequest.RuleName
	}
	if ruleUpdateRequest.Priority != nil {
		updates["priority"] = *ruleUpdateRequest.Priority
	}
	if ruleUpdateRequest.IsActive != nil {
		updates["is_active"] = *ruleUpdateRequest.IsActive
	}

	ruleService := provider.NewUniquenessRuleProvider().GetUniquenessRuleService()
	if err := ruleService.PatchUniquenessRule(ruleId, updates); err != nil {
		utils.HandleError(w, err)
		return
	}

	logger := log.GetLogger()
	logger.Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      ruleId,
		TargetType:    log.TargetTypeUniquenessRule,
		ActionID:      log.ActionUpdateUniquenessRule,
		Data:          map[string]string{"org_handle": orgHandle},
	})

	rule, err := ruleService.GetUniquenessRule(ruleId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if rule == nil {
		utils.HandleError(w, errors2.NewClientError(errors2.RULE_NOT_FOUND, http.StatusNotFound))
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, rule)
}

// DeleteUniquenessRule removes a uniqueness rule.
func (urh *UniquenessRulesHandler) DeleteUniquenessRule(w http.ResponseWriter, r *http.Request) {

	ruleId := r.PathValue("ruleId")
	if ruleId == "" {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}
	orgHandle := utils.ExtractOrgHandleFromPath(r)
	if orgHandle == "" {
		utils.HandleError(w, errors2.NewClientError(errors2.INVALID_ORG_HANDLE, http.StatusBadRequest))
		return
	}

	ruleService := provider.NewUniquenessRuleProvider().GetUniquenessRuleService()
	if err := ruleService.DeleteUniquenessRule(orgHandle, ruleId); err != nil {
		utils.HandleError(w, err)
		return
	}

	logger := log.GetLogger()
	logger.Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      ruleId,
		TargetType:    log.TargetTypeUniquenessRule,
		ActionID:      log.ActionDeleteUniquenessRule,
		Data:          map[string]string{"org_handle": orgHandle},
	})

	w.WriteHeader(http.StatusNoContent)
}
