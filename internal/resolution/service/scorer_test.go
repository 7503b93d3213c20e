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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wso2/identity-resolution-service/internal/ruleengine"
)

func TestScoreVerdictNotDuplicate(t *testing.T) {
	assert.Equal(t, 0.0, ScoreVerdict(ruleengine.Verdict{IsDuplicate: false}))
}

func TestScoreVerdictUsesVerdictConfidence(t *testing.T) {
	confidence := 0.42
	verdict := ruleengine.Verdict{
		IsDuplicate:   true,
		Confidence:    &confidence,
		MatchedFields: []string{"work_email"},
	}

	assert.Equal(t, 0.42, ScoreVerdict(verdict))
}

func TestScoreVerdictClampsVerdictConfidence(t *testing.T) {
	tooHigh := 1.7
	assert.Equal(t, 1.0, ScoreVerdict(ruleengine.Verdict{IsDuplicate: true, Confidence: &tooHigh}))

	negative := -0.3
	assert.Equal(t, 0.0, ScoreVerdict(ruleengine.Verdict{IsDuplicate: true, Confidence: &negative}))
}

func TestScoreVerdictBaseWhenNoFieldDetail(t *testing.T) {
	assert.Equal(t, 0.6, ScoreVerdict(ruleengine.Verdict{IsDuplicate: true}))
}

func TestScoreVerdictMaxOfWeights(t *testing.T) {
	testCases := []struct {
		name     string
		fields   []string
		expected float64
	}{
		{"email wins", []string{"work_email"}, 0.9},
		{"linkedin", []string{"linkedin_url"}, 0.85},
		{"phone", []string{"mobile"}, 0.8},
		{"domain", []string{"company_website"}, 0.7},
		{"name", []string{"full_name"}, 0.6},
		{"max not sum", []string{"full_name", "work_email"}, 0.9},
		{"unrecognized field scores base", []string{"deal_value"}, 0.6},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			verdict := ruleengine.Verdict{IsDuplicate: true, MatchedFields: tc.fields}
			assert.InDelta(t, tc.expected, ScoreVerdict(verdict), 1e-9)
		})
	}
}
