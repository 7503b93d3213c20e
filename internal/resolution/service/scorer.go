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
	"github.com/wso2/identity-resolution-service/internal/ruleengine"
	"github.com/wso2/identity-resolution-service/internal/system/constants"
)

// identifierWeights assigns a confidence weight per identifier kind. A
// match on a strong identifier (email) should not be diluted by also weakly
// matching on name, so the scorer takes the maximum weight rather than a sum.
var identifierWeights = map[string]float64{
	constants.IdentifierEmail:    0.9,
	constants.IdentifierLinkedIn: 0.85,
	constants.IdentifierPhone:    0.8,
	constants.IdentifierDomain:   0.7,
	constants.IdentifierName:     0.6,
}

// ScoreVerdict converts a rule evaluation verdict into a confidence in
// [0, 1]. A verdict that carries its own confidence is trusted as-is. A
// positive verdict with no field detail scores the base confidence; the
// evaluator contract leaves that case open, and the engine deliberately
// treats it as a low-confidence default.
func ScoreVerdict(verdict ruleengine.Verdict) float64 {

	if !verdict.IsDuplicate {
		return 0
	}
	if verdict.Confidence != nil {
		return clamp(*verdict.Confidence)
	}
	if len(verdict.MatchedFields) == 0 {
		return constants.BaseConfidence
	}

	confidence := 0.0
	for _, fieldName := range verdict.MatchedFields {
		weight := constants.BaseConfidence
		for _, kind := range classifyFieldName(fieldName) {
			if w, ok := identifierWeights[kind]; ok && w > weight {
				weight = w
			}
		}
		if weight > confidence {
			confidence = weight
		}
	}
	return clamp(confidence)
}

func clamp(confidence float64) float64 {
	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}
