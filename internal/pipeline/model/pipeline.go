/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
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

// Pipeline represents a tenant-defined record schema. Records of a pipeline
// carry an open data map whose keys are the pipeline's field names.
type Pipeline struct {
	PipelineId string  `json:"pipeline_id" bson:"pipeline_id" binding:"required"`
	OrgHandle  string  `json:"org_handle" bson:"org_handle"`
	Name       string  `json:"pipeline_name" bson:"pipeline_name" binding:"required"`
	IsActive   bool    `json:"is_active" bson:"is_active"`
	Fields     []Field `json:"fields" bson:"fields"`
	CreatedAt  int64   `json:"created_at" bson:"created_at"`
	UpdatedAt  int64   `json:"updated_at" bson:"updated_at"`
}

// Field is a named, typed attribute of a pipeline. The type is advisory; the
// resolution engine only uses field names and types to infer identifier roles.
type Field struct {
	FieldId      string `json:"field_id" bson:"field_id"`
	PipelineId   string `json:"pipeline_id" bson:"pipeline_id"`
	Name         string `json:"field_name" bson:"field_name" binding:"required"`
	Type         string `json:"field_type" bson:"field_type"`
	DisplayOrder int    `json:"display_order" bson:"display_order"`
}

// Pipeline field types.
const (
	FieldTypeText   = "text"
	FieldTypeEmail  = "email"
	FieldTypePhone  = "phone"
	FieldTypeURL    = "url"
	FieldTypeSelect = "select"
)

// PipelineAPIRequest is the operator-facing creation payload.
type PipelineAPIRequest struct {
	Name     string  `json:"pipeline_name" binding:"required"`
	IsActive bool    `json:"is_active"`
	Fields   []Field `json:"fields"`
}
