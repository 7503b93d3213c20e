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

import "github.com/wso2/identity-resolution-service/internal/system/constants"

// IdentifierSet is the bag of raw identifiers extracted from one
// communication. It is never persisted; a fresh set is built per resolution
// call from message data.
type IdentifierSet struct {
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	LinkedInURL string `json:"linkedin_url,omitempty"`
	Domain      string `json:"domain,omitempty"`
	Name        string `json:"name,omitempty"`
}

// IsEmpty reports whether the set carries no identifiers at all.
func (s IdentifierSet) IsEmpty() bool {
	return s.Email == "" && s.Phone == "" && s.LinkedInURL == "" && s.Domain == "" && s.Name == ""
}

// Entries returns the present identifiers keyed by kind. Used for cache key
// derivation and identifier-kind lookups.
func (s IdentifierSet) Entries() map[string]string {
	entries := make(map[string]string)
	if s.Email != "" {
		entries[constants.IdentifierEmail] = s.Email
	}
	if s.Phone != "" {
		entries[constants.IdentifierPhone] = s.Phone
	}
	if s.LinkedInURL != "" {
		entries[constants.IdentifierLinkedIn] = s.LinkedInURL
	}
	if s.Domain != "" {
		entries[constants.IdentifierDomain] = s.Domain
	}
	if s.Name != "" {
		entries[constants.IdentifierName] = s.Name
	}
	return entries
}
