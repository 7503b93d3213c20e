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

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/wso2/identity-resolution-service/internal/records/model"
)

func TestBuildSearchFilterNoClauses(t *testing.T) {
	assert.Nil(t, BuildSearchFilter("acme", "p1", nil))
}

func TestBuildSearchFilterScopesTenantAndPipeline(t *testing.T) {
	filter := BuildSearchFilter("acme", "p1", []model.SearchClause{
		{FieldName: "work_email", Kind: model.ClauseExact, Value: "jane@corp.io"},
	})

	require.NotNil(t, filter)
	assert.Equal(t, "acme", filter["org_handle"])
	assert.Equal(t, "p1", filter["pipeline_id"])
	assert.Equal(t, false, filter["is_deleted"])
}

func TestBuildSearchFilterExactIsAnchoredCaseInsensitive(t *testing.T) {
	filter := BuildSearchFilter("acme", "p1", []model.SearchClause{
		{FieldName: "work_email", Kind: model.ClauseExact, Value: "jane@corp.io"},
	})

	or := filter["$or"].([]bson.M)
	require.Len(t, or, 1)
	inner := or[0]["data.work_email"].(bson.M)
	assert.Equal(t, `^jane@corp\.io$`, inner["$regex"])
	assert.Equal(t, "i", inner["$options"])
}

func TestBuildSearchFilterContains(t *testing.T) {
	filter := BuildSearchFilter("acme", "p1", []model.SearchClause{
		{FieldName: "company_website", Kind: model.ClauseContains, Value: "corp.io"},
	})

	or := filter["$or"].([]bson.M)
	require.Len(t, or, 1)
	inner := or[0]["data.company_website"].(bson.M)
	assert.Equal(t, `corp\.io`, inner["$regex"])
}

func TestBuildSearchFilterPhoneTriesBothShapes(t *testing.T) {
	filter := BuildSearchFilter("acme", "p1", []model.SearchClause{
		{FieldName: "phone", Kind: model.ClausePhone, Value: "155550123"},
	})

	or := filter["$or"].([]bson.M)
	require.Len(t, or, 2)
	assert.Contains(t, or[0], "data.phone")
	assert.Contains(t, or[1], "data.phone.number")
}

func TestBuildSearchFilterMultipleClausesUnion(t *testing.T) {
	filter := BuildSearchFilter("acme", "p1", []model.SearchClause{
		{FieldName: "work_email", Kind: model.ClauseExact, Value: "jane@corp.io"},
		{FieldName: "full_name", Kind: model.ClauseContains, Value: "Jane"},
		{FieldName: "phone", Kind: model.ClausePhone, Value: "155550123"},
	})

	or := filter["$or"].([]bson.M)
	// Phone contributes two disjuncts.
	assert.Len(t, or, 4)
}

func TestBuildSearchFilterEscapesRegexMetacharacters(t *testing.T) {
	filter := BuildSearchFilter("acme", "p1", []model.SearchClause{
		{FieldName: "full_name", Kind: model.ClauseContains, Value: "Doe (Jane)"},
	})

	or := filter["$or"].([]bson.M)
	inner := or[0]["data.full_name"].(bson.M)
	assert.Equal(t, `Doe \(Jane\)`, inner["$regex"])
}

func TestBuildSearchFilterUnknownKindIgnored(t *testing.T) {
	filter := BuildSearchFilter("acme", "p1", []model.SearchClause{
		{FieldName: "full_name", Kind: "fuzzy", Value: "Jane"},
	})

	assert.Nil(t, filter)
}
