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
	"sort"
	"strings"

	"github.com/wso2/identity-resolution-service/internal/system/constants"
)

// Tenants name their fields freely, so identifier roles are inferred from
// field names. Both tables below are deliberate configuration data rather
// than scattered string checks, so they can become tenant-extensible later.

// identifierKeywords maps an identifier kind to the field-name fragments that
// suggest it.
var identifierKeywords = map[string][]string{
	constants.IdentifierEmail:    {"email"},
	constants.IdentifierPhone:    {"phone", "mobile"},
	constants.IdentifierLinkedIn: {"linkedin"},
	constants.IdentifierDomain:   {"domain", "website"},
	constants.IdentifierName:     {"name"},
}

// pseudoFieldNames maps an identifier kind to the plausible field names a
// pipeline record might store it under.
var pseudoFieldNames = map[string][]string{
	constants.IdentifierEmail:    {"email", "work_email", "personal_email", "contact_email"},
	constants.IdentifierPhone:    {"phone", "phone_number", "mobile", "work_phone", "contact_phone"},
	constants.IdentifierLinkedIn: {"linkedin", "linkedin_url", "social_linkedin"},
	constants.IdentifierDomain:   {"website", "domain", "company_domain", "company_website"},
	constants.IdentifierName:     {"name", "full_name", "contact_name", "first_name", "last_name"},
}

// classifyFieldName returns the identifier kinds a field name suggests,
// sorted for determinism. Most fields map to a single kind; a name like
// "company_website_domain" may map to several.
func classifyFieldName(fieldName string) []string {

	lower := strings.ToLower(fieldName)
	var kinds []string
	for kind, keywords := range identifierKeywords {
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				kinds = append(kinds, kind)
				break
			}
		}
	}
	sort.Strings(kinds)
	return kinds
}

// deriveMatchType classifies a match by the identifier kinds its matched
// field names suggest, comma-joined in sorted order.
func deriveMatchType(matchedFields []string) string {

	seen := make(map[string]bool)
	var kinds []string
	for _, field := range matchedFields {
		for _, kind := range classifyFieldName(field) {
			if !seen[kind] {
				seen[kind] = true
				kinds = append(kinds, kind)
			}
		}
	}
	sort.Strings(kinds)
	return strings.Join(kinds, ",")
}
