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

package model

type UniquenessRuleAPIRequest struct {
	PipelineId      string           `json:"pipeline_id" binding:"required"`
	RuleName        string           `json:"rule_name" binding:"required"`
	ActionMode      string           `json:"action_mode" binding:"required"`
	ConditionGroups []ConditionGroup `json:"condition_groups"`
	Conditions      []Condition      `json:"conditions"`
	Priority        int              `json:"priority"`
	IsActive        bool             `json:"is_active"`
}

type UniquenessRuleUpdateRequest struct {
	RuleName *string `json:"rule_name"`
	Priority *int    `json:"priority"`
	IsActive *bool   `json:"is_active"`
}
