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

// ResolutionResult is the always-present outcome of one resolution call.
// "Not found" is an empty result, never an error; ambiguity is communicated
// by returning multiple ranked matches.
type ResolutionResult struct {
	Matches          []Match  `json:"matches"`
	TotalMatches     int      `json:"total_matches"`
	Timestamp        int64    `json:"timestamp"`
	PipelinesChecked []string `json:"pipelines_checked"`
	PipelinesSkipped []string `json:"pipelines_skipped"`
}

// BatchEntry is one slot of a batch resolution, aligned with the input order.
// Exactly one of Result and Err is set.
type BatchEntry struct {
	Result *ResolutionResult
	Err    error
}

// StorageDecision is the outcome of the storage-decision gate.
type StorageDecision struct {
	ShouldStore bool   `json:"should_store"`
	Reason      string `json:"reason"`
}
