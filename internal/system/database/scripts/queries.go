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

package scripts

var InsertPipeline = map[string]string{
	"postgres": `INSERT INTO pipelines (pipeline_id, tenant_id, pipeline_name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
}

var GetActivePipelinesByOrg = map[string]string{
	"postgres": `SELECT pipeline_id, tenant_id, pipeline_name, is_active, created_at, updated_at
		FROM pipelines WHERE tenant_id = $1 AND is_active = true ORDER BY pipeline_name`,
}

var GetPipelineById = map[string]string{
	"postgres": `SELECT pipeline_id, tenant_id, pipeline_name, is_active, created_at, updated_at
		FROM pipelines WHERE tenant_id = $1 AND pipeline_id = $2 LIMIT 1`,
}

var DeletePipeline = map[string]string{
	"postgres": `DELETE FROM pipelines WHERE tenant_id = $1 AND pipeline_id = $2`,
}

var InsertPipelineField = map[string]string{
	"postgres": `INSERT INTO pipeline_fields (field_id, pipeline_id, field_name, field_type, display_order)
		VALUES ($1, $2, $3, $4, $5)`,
}

var GetPipelineFields = map[string]string{
	"postgres": `SELECT field_id, pipeline_id, field_name, field_type, display_order
		FROM pipeline_fields WHERE pipeline_id = $1 ORDER BY display_order`,
}

var DeletePipelineFields = map[string]string{
	"postgres": `DELETE FROM pipeline_fields WHERE pipeline_id = $1`,
}

var InsertUniquenessRule = map[string]string{
	"postgres": `INSERT INTO uniqueness_rules (rule_id, tenant_id, pipeline_id, rule_name, action_mode,
		condition_groups, conditions, priority, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
}

var GetUniquenessRulesByPipeline = map[string]string{
	"postgres": `SELECT rule_id, tenant_id, pipeline_id, rule_name, action_mode, condition_groups::text,
		conditions::text, priority, is_active, created_at, updated_at
		FROM uniqueness_rules WHERE tenant_id = $1 AND pipeline_id = $2 ORDER BY priority`,
}

var GetUniquenessRuleById = map[string]string{
	"postgres": `SELECT rule_id, tenant_id, pipeline_id, rule_name, action_mode, condition_groups::text,
		conditions::text, priority, is_active, created_at, updated_at
		FROM uniqueness_rules WHERE rule_id = $1 LIMIT 1`,
}

var PatchUniquenessRule = map[string]string{
	"postgres": `UPDATE uniqueness_rules SET %s, updated_at = $%d WHERE rule_id = $%d`,
}

var DeleteUniquenessRule = map[string]string{
	"postgres": `DELETE FROM uniqueness_rules WHERE tenant_id = $1 AND rule_id = $2`,
}
