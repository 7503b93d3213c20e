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

package constants

import "time"

const (
	// ApiBasePath is the base path for all identity resolution APIs.
	ApiBasePath = "/identity"

	// IRSHomeEnv points at the installation directory holding repository/conf.
	IRSHomeEnv = "IRS_HOME"
)

// Uniqueness rule action modes. Only detect-only rules participate in
// identity resolution.
const (
	ActionModeDetectOnly = "detect_only"
	ActionModeAutoMerge  = "auto_merge"
	ActionModeAutoReject = "auto_reject"
)

// Rule condition match types.
const (
	MatchTypeExact    = "exact"
	MatchTypeContains = "contains"
)

// Confidence bands used by the scorer and the storage-decision gate.
const (
	ConfidenceHigh   = 0.9
	ConfidenceMedium = 0.7
	ConfidenceLow    = 0.5

	// BaseConfidence is assigned to a positive verdict that carries no
	// field-level detail.
	BaseConfidence = 0.6
)

// Resolution defaults. All of these are overridable through deployment.yaml.
const (
	DefaultCandidateLimit     = 50
	DefaultMaxConcurrent      = 10
	DefaultResolutionCacheTTL = time.Hour
)

// Storage-decision reasons.
const (
	ReasonNoContactFound           = "no_contact_found"
	ReasonHighConfidenceMatch      = "high_confidence_match"
	ReasonConfidenceAboveThreshold = "confidence_above_threshold"
	ReasonConfidenceBelowThreshold = "confidence_below_threshold"
)

// Identifier kinds recognized across the engine.
const (
	IdentifierEmail    = "email"
	IdentifierPhone    = "phone"
	IdentifierLinkedIn = "linkedin"
	IdentifierDomain   = "domain"
	IdentifierName     = "name"
)
