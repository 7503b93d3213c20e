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
	"sort"

	recordModel "github.com/wso2/identity-resolution-service/internal/records/model"
	"github.com/wso2/identity-resolution-service/internal/resolution/model"
	"github.com/wso2/identity-resolution-service/internal/system/constants"
	"github.com/wso2/identity-resolution-service/internal/system/utils"
	ruleModel "github.com/wso2/identity-resolution-service/internal/uniqueness_rules/model"
)

// phoneClauseDigits is how many trailing digits a phone clause compares.
// Long enough to avoid false positives, short enough to bridge
// with/without-country-code storage.
const phoneClauseDigits = 9

// BuildSearchClauses builds the broad candidate search for one pipeline: for
// every field name referenced by the pipeline's rules whose name suggests an
// identifier kind present in the set, one loose clause is emitted. Clauses
// are OR-ed by the record store; a candidate need only resemble one
// identifier on one field, precision is deferred to rule evaluation. An
// empty return means there is nothing to search for this pipeline.
func BuildSearchClauses(rules []ruleModel.UniquenessRule, set model.IdentifierSet) []recordModel.SearchClause {

	seen := make(map[string]bool)
	var ruleFields []string
	for _, rule := range rules {
		for _, fieldName := range rule.ReferencedFieldNames() {
			if !seen[fieldName] {
				seen[fieldName] = true
				ruleFields = append(ruleFields, fieldName)
			}
		}
	}
	// Stable clause order keeps queries and results deterministic.
	sort.Strings(ruleFields)

	var clauses []recordModel.SearchClause
	for _, fieldName := range ruleFields {
		for _, kind := range classifyFieldName(fieldName) {
			clause, ok := clauseFor(fieldName, kind, set)
			if ok {
				clauses = append(clauses, clause)
			}
		}
	}
	return clauses
}

func clauseFor(fieldName, kind string, set model.IdentifierSet) (recordModel.SearchClause, bool) {

	switch kind {
	case constants.IdentifierEmail:
		if set.Email != "" {
			return recordModel.SearchClause{FieldName: fieldName, Kind: recordModel.ClauseExact, Value: set.Email}, true
		}
	case constants.IdentifierPhone:
		if suffix := utils.PhoneSuffix(set.Phone, phoneClauseDigits); suffix != "" {
			return recordModel.SearchClause{FieldName: fieldName, Kind: recordModel.ClausePhone, Value: suffix}, true
		}
	case constants.IdentifierLinkedIn:
		if set.LinkedInURL != "" {
			return recordModel.SearchClause{FieldName: fieldName, Kind: recordModel.ClauseContains, Value: set.LinkedInURL}, true
		}
	case constants.IdentifierDomain:
		if set.Domain != "" {
			return recordModel.SearchClause{FieldName: fieldName, Kind: recordModel.ClauseContains, Value: set.Domain}, true
		}
	case constants.IdentifierName:
		if set.Name != "" {
			return recordModel.SearchClause{FieldName: fieldName, Kind: recordModel.ClauseContains, Value: set.Name}, true
		}
	}
	return recordModel.SearchClause{}, false
}
