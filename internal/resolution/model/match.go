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
	recordModel "github.com/wso2/identity-resolution-service/internal/records/model"
)

// Match is one candidate record judged to represent the same entity as the
// identifier set. MatchType lists the identifier kinds that contributed,
// comma-joined when a match carries several (e.g. "domain,email").
type Match struct {
	Record        recordModel.Record `json:"record"`
	PipelineId    string             `json:"pipeline_id"`
	PipelineName  string             `json:"pipeline_name"`
	Confidence    float64            `json:"confidence"`
	MatchedFields []string           `json:"matched_fields"`
	MatchType     string             `json:"match_type"`
}
