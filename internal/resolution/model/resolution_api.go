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

// ResolveAPIRequest is the request body of a single resolution call.
type ResolveAPIRequest struct {
	Identifiers   IdentifierSet `json:"identifiers"`
	Pipelines     []string      `json:"pipelines,omitempty"`
	MinConfidence *float64      `json:"min_confidence,omitempty"`
}

// ResolveBatchAPIRequest is the request body of a batch resolution call.
type ResolveBatchAPIRequest struct {
	Items         []IdentifierSet `json:"items"`
	MaxConcurrent int             `json:"max_concurrent,omitempty"`
}

// BatchItemAPIResponse is one slot of a batch response. A failed item
// carries an error message in place of a result.
type BatchItemAPIResponse struct {
	Result *ResolutionResult `json:"result,omitempty"`
	Error  string            `json:"error,omitempty"`
}

// ResolveBatchAPIResponse is the index-aligned batch response.
type ResolveBatchAPIResponse struct {
	Results []BatchItemAPIResponse `json:"results"`
}

// StorageDecisionAPIRequest is the request body of a storage-decision call.
type StorageDecisionAPIRequest struct {
	Identifiers IdentifierSet `json:"identifiers"`
	Threshold   *float64      `json:"threshold,omitempty"`
}

// StorageDecisionAPIResponse pairs the gate decision with the resolution
// that produced it.
type StorageDecisionAPIResponse struct {
	Decision   StorageDecision   `json:"decision"`
	Resolution *ResolutionResult `json:"resolution"`
}

// CacheInvalidationAPIRequest selects what to evict. Empty identifiers mean
// a full tenant flush.
type CacheInvalidationAPIRequest struct {
	Identifiers *IdentifierSet `json:"identifiers,omitempty"`
}
