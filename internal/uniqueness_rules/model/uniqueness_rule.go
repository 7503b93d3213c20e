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

package model

// Condition is a single field-match requirement inside a uniqueness rule.
type Condition struct {
	FieldName string `json:"field_name" bson:"field_name" binding:"required"`
	MatchType string `json:"match_type" bson:"match_type"`
}

// ConditionGroup is a set of conditions that must all hold (AND). Groups are
// combined with OR: any one satisfied group marks two records as duplicates.
type ConditionGroup struct {
	Conditions []Condition `json:"conditions" bson:"conditions"`
}

// UniquenessRule defines what makes two records of a pipeline "the same".
// Older tenants carry a flat Conditions list instead of ConditionGroups; the
// flat list is treated as a single AND group.
type UniquenessRule struct {
	RuleId          string           `json:"rule_id" bson:"rule_id" binding:"required"`
	OrgHandle       string           `json:"org_handle" bson:"org_handle"`
	PipelineId      string           `json:"pipeline_id" bson:"pipeline_id" binding:"required"`
	RuleName        string           `json:"rule_name" bson:"rule_name" binding:"required"`
	ActionMode      string           `json:"action_mode" bson:"action_mode" binding:"required"`
	ConditionGroups []ConditionGroup `json:"condition_groups" bson:"condition_groups"`
	Conditions      []Condition      `json:"conditions" bson:"conditions"`
	Priority        int              `json:"priority" bson:"priority"`
	IsActive        bool             `json:"is_active" bson:"is_active"`
	CreatedAt       int64            `json:"created_at" bson:"created_at"`
	UpdatedAt       int64            `json:"updated_at" bson:"updated_at"`
}

// ReferencedFieldNames collects every field name mentioned anywhere in the
// rule, across both the grouped and the flat condition forms.
func (r UniquenessRule) ReferencedFieldNames() []string {
	seen := make(map[string]bool)
	var names []string

	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}

	for _, group := range r.ConditionGroups {
		for _, condition := range group.Conditions {
			add(condition.FieldName)
		}
	}
	for _, condition := range r.Conditions {
		add(condition.FieldName)
	}
	return names
}

// EffectiveGroups returns the rule's condition groups, falling back to the
// flat condition list as a single AND group.
func (r UniquenessRule) EffectiveGroups() []ConditionGroup {
	if len(r.ConditionGroups) > 0 {
		return r.ConditionGroups
	}
	if len(r.Conditions) > 0 {
		return []ConditionGroup{{Conditions: r.Conditions}}
	}
	return nil
}
