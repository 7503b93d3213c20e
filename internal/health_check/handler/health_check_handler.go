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

package handler

import (
	"context"
	"net/http"
	"time"

	dbprovider "github.com/wso2/identity-resolution-service/internal/system/database/provider"
	"github.com/wso2/identity-resolution-service/internal/system/log"
	"github.com/wso2/identity-resolution-service/internal/system/mongo"
	"github.com/wso2/identity-resolution-service/internal/system/utils"
)

const readinessTimeout = 2 * time.Second

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {

	return &HealthHandler{}
}

// HandleHealth reports process liveness.
func (hh *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {

	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "UP"})
}

// HandleReadiness checks both backing stores. Any unreachable dependency
// reports the service as not ready.
func (hh *HealthHandler) HandleReadiness(w http.ResponseWriter, r *http.Request) {

	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	checks := map[string]string{
		"datasource": "UP",
		"mongo":      "UP",
	}
	ready := true

	dbClient, err := dbprovider.NewDBProvider().GetDBClient()
	if err != nil {
		checks["datasource"] = "DOWN"
		ready = false
	} else {
		defer func() {
			if err := dbClient.Close(); err != nil {
				log.GetLogger().Debug("Failed to close database client.", log.Error(err))
			}
		}()
		if _, err := dbClient.ExecuteQuery("SELECT 1"); err != nil {
			checks["datasource"] = "DOWN"
			ready = false
		}
	}

	instance := mongo.GetInstance()
	if instance == nil || instance.Client.Ping(ctx, nil) != nil {
		checks["mongo"] = "DOWN"
		ready = false
	}

	status := http.StatusOK
	overall := "UP"
	if !ready {
		status = http.StatusServiceUnavailable
		overall = "DOWN"
	}
	utils.WriteJSONResponse(w, status, map[string]interface{}{
		"status": overall,
		"checks": checks,
	})
}
