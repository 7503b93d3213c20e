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

// Record is one instance of a pipeline. Data is an open key-value map whose
// keys are the pipeline's field names; values may be strings or structured
// documents (e.g. phone numbers stored as {number, country_code}).
type Record struct {
	RecordId   string                 `json:"record_id" bson:"record_id" binding:"required"`
	OrgHandle  string                 `json:"org_handle" bson:"org_handle"`
	PipelineId string                 `json:"pipeline_id" bson:"pipeline_id" binding:"required"`
	Data       map[string]interface{} `json:"data" bson:"data"`
	IsDeleted  bool                   `json:"is_deleted" bson:"is_deleted"`
	CreatedAt  int64                  `json:"created_at" bson:"created_at"`
	UpdatedAt  int64                  `json:"updated_at" bson:"updated_at"`
}

// Clause match kinds used for candidate retrieval.
const (
	ClauseExact    = "exact"
	ClauseContains = "contains"
	ClausePhone    = "phone"
)

// SearchClause is one disjunct of a broad candidate search. Exact clauses
// compare case-insensitively; contains clauses match substrings; phone
// clauses match the digit suffix against both plain-string and structured
// phone representations.
type SearchClause struct {
	FieldName string
	Kind      string
	Value     string
}
