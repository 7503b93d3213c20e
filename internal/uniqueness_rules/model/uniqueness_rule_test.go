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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferencedFieldNamesAcrossBothForms(t *testing.T) {
	rule := UniquenessRule{
		ConditionGroups: []ConditionGroup{
			{Conditions: []Condition{{FieldName: "email"}, {FieldName: "full_name"}}},
			{Conditions: []Condition{{FieldName: "phone"}}},
		},
		Conditions: []Condition{{FieldName: "email"}, {FieldName: "linkedin_url"}},
	}

	assert.Equal(t, []string{"email", "full_name", "phone", "linkedin_url"},
		rule.ReferencedFieldNames())
}

func TestReferencedFieldNamesSkipsEmpty(t *testing.T) {
	rule := UniquenessRule{Conditions: []Condition{{FieldName: ""}, {FieldName: "email"}}}

	assert.Equal(t, []string{"email"}, rule.ReferencedFieldNames())
}

func TestEffectiveGroupsPrefersGroups(t *testing.T) {
	rule := UniquenessRule{
		ConditionGroups: []ConditionGroup{
			{Conditions: []Condition{{FieldName: "email"}}},
		},
		Conditions: []Condition{{FieldName: "phone"}},
	}

	groups := rule.EffectiveGroups()
	require.Len(t, groups, 1)
	assert.Equal(t, "email", groups[0].Conditions[0].FieldName)
}

func TestEffectiveGroupsFallsBackToFlatList(t *testing.T) {
	rule := UniquenessRule{
		Conditions: []Condition{{FieldName: "email"}, {FieldName: "full_name"}},
	}

	groups := rule.EffectiveGroups()
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Conditions, 2)
}

func TestEffectiveGroupsEmptyRule(t *testing.T) {
	assert.Nil(t, UniquenessRule{}.EffectiveGroups())
}
