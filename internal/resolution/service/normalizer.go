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
	"strings"

	"github.com/wso2/identity-resolution-service/internal/resolution/model"
)

// NormalizeIdentifiers canonicalizes a raw identifier set: email is
// lowercased and trimmed, and the domain is derived from the email when
// absent. The phone number is left untouched here; digit normalization
// happens per field during candidate retrieval, since pipelines store phones
// in different shapes.
func NormalizeIdentifiers(set model.IdentifierSet) model.IdentifierSet {

	set.Email = strings.ToLower(strings.TrimSpace(set.Email))
	set.Name = strings.TrimSpace(set.Name)
	set.LinkedInURL = strings.TrimSpace(set.LinkedInURL)
	set.Domain = strings.ToLower(strings.TrimSpace(set.Domain))

	if set.Domain == "" && set.Email != "" {
		if at := strings.LastIndex(set.Email, "@"); at >= 0 && at+1 < len(set.Email) {
			set.Domain = set.Email[at+1:]
		}
	}
	return set
}
