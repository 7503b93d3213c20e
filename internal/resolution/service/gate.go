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
	"github.com/wso2/identity-resolution-service/internal/resolution/model"
	"github.com/wso2/identity-resolution-service/internal/system/constants"
)

// DecideStorage turns a resolution result into a should-this-communication-
// be-persisted decision. The engine never makes the storage call itself; the
// ingestion pipeline consumes this immediately after resolution.
func DecideStorage(result model.ResolutionResult, threshold float64) model.StorageDecision {

	if len(result.Matches) == 0 {
		return model.StorageDecision{
			ShouldStore: false,
			Reason:      constants.ReasonNoContactFound,
		}
	}

	best := result.Matches[0].Confidence
	for _, match := range result.Matches[1:] {
		if match.Confidence > best {
			best = match.Confidence
		}
	}

	// The threshold alone decides storage; the high band only refines the
	// reason for matches that already clear it.
	switch {
	case best < threshold:
		return model.StorageDecision{ShouldStore: false, Reason: constants.ReasonConfidenceBelowThreshold}
	case best >= constants.ConfidenceHigh:
		return model.StorageDecision{ShouldStore: true, Reason: constants.ReasonHighConfidenceMatch}
	default:
		return model.StorageDecision{ShouldStore: true, Reason: constants.ReasonConfidenceAboveThreshold}
	}
}
