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
	"regexp"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/wso2/identity-resolution-service/internal/records/model"
)

// BuildSearchFilter translates disjunctive search clauses into a mongo
// filter over non-deleted records of a pipeline. Returns nil when no clauses
// are given; a nil filter means there is nothing to search.
func BuildSearchFilter(orgHandle, pipelineId string, clauses []model.SearchClause) bson.M {

	if len(clauses) == 0 {
		return nil
	}

	var or []bson.M
	for _, clause := range clauses {
		field := "data." + clause.FieldName
		escaped := regexp.QuoteMeta(clause.Value)

		switch clause.Kind {
		case model.ClauseExact:
			or = append(or, bson.M{field: bson.M{"$regex": "^" + escaped + "$", "$options": "i"}})
		case model.ClauseContains:
			or = append(or, bson.M{field: bson.M{"$regex": escaped, "$options": "i"}})
		case model.ClausePhone:
			// Tenant data stores phones either as plain strings or as
			// {number, country_code} documents; try both shapes.
			or = append(or,
				bson.M{field: bson.M{"$regex": escaped}},
				bson.M{field + ".number": bson.M{"$regex": escaped}},
			)
		}
	}
	if len(or) == 0 {
		return nil
	}

	return bson.M{
		"org_handle":  orgHandle,
		"pipeline_id": pipelineId,
		"is_deleted":  false,
		"$or":         or,
	}
}
