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
)

// BuildPseudoRecord maps the identifier set onto every plausible field name a
// record might use, producing a synthetic data map for rule evaluation.
// Multiple keys may receive the same value; the rule evaluator only compares
// field-by-field and does not need to know identifier semantics.
func BuildPseudoRecord(set model.IdentifierSet) map[string]interface{} {

	data := make(map[string]interface{})
	for kind, value := range set.Entries() {
		for _, fieldName := range pseudoFieldNames[kind] {
			data[fieldName] = value
		}
	}
	return data
}
