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

package main

import (
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/wso2/identity-resolution-service/internal/system/config"
	"github.com/wso2/identity-resolution-service/internal/system/constants"
	"github.com/wso2/identity-resolution-service/internal/system/log"
	"github.com/wso2/identity-resolution-service/internal/system/managers"
	"github.com/wso2/identity-resolution-service/internal/system/mongo"
)

const configFile = "/repository/conf/deployment.yaml"

func main() {

	irsHome := resolveIRSHome()

	envFiles, err := filepath.Glob("config/*.env")
	if err != nil || len(envFiles) == 0 {
		fmt.Println("No .env files found in config directory.", err)
	}
	_ = godotenv.Load(envFiles...)

	irsConfig, err := config.LoadConfig(irsHome, configFile)
	if err != nil {
		fmt.Println("Failed to load configuration.", err)
		os.Exit(1)
	}
	if err := config.InitializeIRSRuntime(irsHome, irsConfig); err != nil {
		fmt.Println("Failed to initialize runtime configuration.", err)
		os.Exit(1)
	}

	if err := log.Init(irsConfig.Log.LogLevel); err != nil {
		fmt.Println("Failed to initialize logger.", err)
		os.Exit(1)
	}
	logger := log.GetLogger()

	validateDataSourceConfig(irsConfig)
	mongo.Connect(irsConfig.Mongo.URI, irsConfig.Mongo.Database)

	serverAddr := fmt.Sprintf("%s:%d", irsConfig.Addr.Host, irsConfig.Addr.Port)
	mux := initMultiplexer()

	logger.Info("WSO2 identity resolution service starting on: " + serverAddr)
	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener.", log.Error(err))
	}

	server := &http.Server{Handler: enableCORS(mux)}
	if err := server.Serve(ln); err != nil {
		logger.Fatal("Failed to serve requests.", log.Error(err))
	}
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer() *http.ServeMux {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux)

	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		log.GetLogger().Fatal("Failed to register the services.", log.Error(err))
	}
	return mux
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// resolveIRSHome determines the service home directory: flag, then
// environment, then working directory.
func resolveIRSHome() string {

	irsHomeFlag := flag.String("irsHome", "", "Path to identity resolution service home directory")
	if !flag.Parsed() {
		flag.Parse()
	}
	if *irsHomeFlag != "" {
		fmt.Printf("Using %s from command line argument\n", *irsHomeFlag)
		return *irsHomeFlag
	}
	if envHome := os.Getenv(constants.IRSHomeEnv); envHome != "" {
		fmt.Printf("Using %s from environment: %s\n", constants.IRSHomeEnv, envHome)
		return envHome
	}

	dir, err := os.Getwd()
	if err != nil {
		fmt.Println("Failed to get current working directory.", err)
		os.Exit(1)
	}
	return dir
}

func validateDataSourceConfig(cfg *config.Config) {

	logger := log.GetLogger()
	ds := cfg.DataSource
	if ds.Hostname == "" || ds.Username == "" || ds.Name == "" {
		logger.Error("One or more database configuration values are missing.")
		return
	}
	logger.Info(fmt.Sprintf("Database configured - db name:%s, db host:%s, db port:%d",
		ds.Name, ds.Hostname, ds.Port))
}
