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

// Package ruleengine defines the rule evaluation contract the resolution
// engine depends on, together with a default field-match implementation.
// The engine treats the evaluator as a collaborator: alternative
// implementations may plug in richer matching (fuzzy, ML-scored) as long as
// they honor the Verdict shape.
package ruleengine

import (
	"github.com/wso2/identity-resolution-service/internal/uniqueness_rules/model"
)

// FieldMatch carries the per-field outcome of a rule evaluation.
type FieldMatch struct {
	Matched bool `json:"matched"`
}

// Verdict is the outcome of evaluating one rule against two field bags.
// Confidence is optional; evaluators that do not compute one leave it nil and
// the scorer derives a confidence from the matched fields.
type Verdict struct {
	IsDuplicate   bool                  `json:"is_duplicate"`
	MatchedFields []string              `json:"matched_fields"`
	FieldMatches  map[string]FieldMatch `json:"field_matches"`
	Confidence    *float64              `json:"confidence,omitempty"`
}

// Evaluator evaluates a uniqueness rule against a (source, candidate) pair of
// field bags and reports whether they describe the same entity.
type Evaluator interface {
	Evaluate(rule model.UniquenessRule, source, candidate map[string]interface{}) (Verdict, error)
}
