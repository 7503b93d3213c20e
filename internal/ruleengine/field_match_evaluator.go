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

package ruleengine

import (
	"fmt"
	"strings"

	"github.com/wso2/identity-resolution-service/internal/system/constants"
	"github.com/wso2/identity-resolution-service/internal/system/utils"
	"github.com/wso2/identity-resolution-service/internal/uniqueness_rules/model"
)

// phoneSuffixLength bounds phone comparisons to the national number, since
// tenants store numbers with and without country codes.
const phoneSuffixLength = 9

// FieldMatchEvaluator is the default Evaluator. Condition groups are AND
// within a group, OR across groups; a rule with neither groups nor
// conditions cannot declare a duplicate.
type FieldMatchEvaluator struct{}

// NewFieldMatchEvaluator creates the default evaluator.
func NewFieldMatchEvaluator() Evaluator {

	return &FieldMatchEvaluator{}
}

// Evaluate compares the two field bags under the rule's condition tree.
func (e *FieldMatchEvaluator) Evaluate(rule model.UniquenessRule, source,
	candidate map[string]interface{}) (Verdict, error) {

	groups := rule.EffectiveGroups()
	if len(groups) == 0 {
		return Verdict{}, fmt.Errorf("rule %s has no conditions", rule.RuleId)
	}

	verdict := Verdict{
		FieldMatches: make(map[string]FieldMatch),
	}
	matchedSet := make(map[string]bool)

	for _, group := range groups {
		groupMatched := len(group.Conditions) > 0
		var groupFields []string

		for _, condition := range group.Conditions {
			matched := fieldsMatch(condition, source, candidate)
			if _, recorded := verdict.FieldMatches[condition.FieldName]; !recorded || matched {
				verdict.FieldMatches[condition.FieldName] = FieldMatch{Matched: matched}
			}
			if !matched {
				groupMatched = false
				continue
			}
			groupFields = append(groupFields, condition.FieldName)
		}

		if groupMatched {
			verdict.IsDuplicate = true
			for _, name := range groupFields {
				if !matchedSet[name] {
					matchedSet[name] = true
					verdict.MatchedFields = append(verdict.MatchedFields, name)
				}
			}
		}
	}

	return verdict, nil
}

// fieldsMatch compares one field across the two bags under the condition's
// match type. Absent values never match.
func fieldsMatch(condition model.Condition, source, candidate map[string]interface{}) bool {

	sourceValue, sourceOk := flattenValue(source[condition.FieldName])
	candidateValue, candidateOk := flattenValue(candidate[condition.FieldName])
	if !sourceOk || !candidateOk || sourceValue == "" || candidateValue == "" {
		return false
	}

	if looksLikePhone(condition.FieldName) {
		sourceSuffix := utils.PhoneSuffix(sourceValue, phoneSuffixLength)
		candidateSuffix := utils.PhoneSuffix(candidateValue, phoneSuffixLength)
		return sourceSuffix != "" && sourceSuffix == candidateSuffix
	}

	sourceValue = strings.ToLower(strings.TrimSpace(sourceValue))
	candidateValue = strings.ToLower(strings.TrimSpace(candidateValue))

	switch condition.MatchType {
	case constants.MatchTypeContains:
		return strings.Contains(candidateValue, sourceValue) || strings.Contains(sourceValue, candidateValue)
	default:
		return sourceValue == candidateValue
	}
}

// flattenValue renders a field value as a comparable string. Structured phone
// documents collapse to their digits.
func flattenValue(value interface{}) (string, bool) {
	switch typed := value.(type) {
	case nil:
		return "", false
	case string:
		return typed, true
	case map[string]interface{}:
		number, _ := typed["number"].(string)
		countryCode, _ := typed["country_code"].(string)
		if number == "" {
			return "", false
		}
		return countryCode + number, true
	case fmt.Stringer:
		return typed.String(), true
	default:
		return fmt.Sprintf("%v", typed), true
	}
}

func looksLikePhone(fieldName string) bool {
	lower := strings.ToLower(fieldName)
	return strings.Contains(lower, "phone") || strings.Contains(lower, "mobile")
}
