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

package errors

const errorPrefix = "IRS-"

var (
	// Server error codes

	DB_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Error while initializing the database client.",
	}

	EXECUTE_QUERY = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while executing the database query.",
	}

	MONGO_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while initializing the document store client.",
	}

	ADD_PIPELINE = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while adding pipeline.",
	}

	GET_PIPELINES = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while fetching pipelines.",
	}

	DELETE_PIPELINE = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while deleting pipeline.",
	}

	ADD_UNIQUENESS_RULE = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while adding uniqueness rule.",
	}

	GET_UNIQUENESS_RULES = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Error while fetching uniqueness rules.",
	}

	PATCH_UNIQUENESS_RULE = ErrorMessage{
		Code:    errorPrefix + "15009",
		Message: "Error while updating uniqueness rule.",
	}

	DELETE_UNIQUENESS_RULE = ErrorMessage{
		Code:    errorPrefix + "15010",
		Message: "Error while deleting uniqueness rule.",
	}

	ADD_RECORD = ErrorMessage{
		Code:    errorPrefix + "15011",
		Message: "Error while adding record.",
	}

	GET_RECORD = ErrorMessage{
		Code:    errorPrefix + "15012",
		Message: "Error while fetching record.",
	}

	SEARCH_RECORDS = ErrorMessage{
		Code:    errorPrefix + "15013",
		Message: "Error while searching candidate records.",
	}

	DELETE_RECORD = ErrorMessage{
		Code:    errorPrefix + "15014",
		Message: "Error while deleting record.",
	}

	RESOLVE_IDENTITY = ErrorMessage{
		Code:    errorPrefix + "15015",
		Message: "Error while resolving identity.",
	}

	CACHE_READ = ErrorMessage{
		Code:    errorPrefix + "15016",
		Message: "Error while reading from the resolution cache.",
	}

	CACHE_WRITE = ErrorMessage{
		Code:    errorPrefix + "15017",
		Message: "Error while writing to the resolution cache.",
	}

	CACHE_FLUSH = ErrorMessage{
		Code:    errorPrefix + "15018",
		Message: "Error while flushing the resolution cache.",
	}

	UNMARSHAL_JSON = ErrorMessage{
		Code:    errorPrefix + "15019",
		Message: "Error while decoding stored JSON.",
	}

	MARSHAL_JSON = ErrorMessage{
		Code:    errorPrefix + "15020",
		Message: "Error while encoding JSON.",
	}

	// Client error codes

	BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "11001",
		Message: "Invalid request body.",
	}

	PIPELINE_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "11002",
		Message: "Pipeline not found.",
	}

	RULE_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "11003",
		Message: "Uniqueness rule not found.",
	}

	RULE_ALREADY_EXISTS = ErrorMessage{
		Code:    errorPrefix + "11004",
		Message: "A uniqueness rule with this id already exists.",
	}

	INVALID_ACTION_MODE = ErrorMessage{
		Code:    errorPrefix + "11005",
		Message: "Invalid uniqueness rule action mode.",
	}

	RULE_WITHOUT_CONDITIONS = ErrorMessage{
		Code:    errorPrefix + "11006",
		Message: "A uniqueness rule must reference at least one field.",
	}

	RECORD_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "11007",
		Message: "Record not found.",
	}

	INVALID_ORG_HANDLE = ErrorMessage{
		Code:    errorPrefix + "11008",
		Message: "Missing or invalid organization handle.",
	}
)
