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

package mongo

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wso2/identity-resolution-service/internal/system/log"
)

// MongoDB wraps the shared document store connection.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

var (
	mongoInstance *MongoDB
	once          sync.Once
)

// Connect initializes the shared MongoDB connection. The records collection
// lives here; relational metadata stays in postgres.
func Connect(uri, dbName string) *MongoDB {
	once.Do(func() {
		logger := log.GetLogger()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			logger.Fatal("MongoDB connection failed", log.Error(err))
		}

		// Ping to ensure connection is live
		if err := client.Ping(ctx, nil); err != nil {
			logger.Fatal("MongoDB ping failed", log.Error(err))
		}

		mongoInstance = &MongoDB{
			Client:   client,
			Database: client.Database(dbName),
		}
		logger.Info("Connected to MongoDB", log.String("database", dbName))
	})

	return mongoInstance
}

// GetInstance returns the MongoDB instance.
func GetInstance() *MongoDB {
	return mongoInstance
}

// OverrideInstanceForTest swaps the shared instance and returns a restore
// function. Intended for tests.
func OverrideInstanceForTest(instance *MongoDB) func() {
	previous := mongoInstance
	mongoInstance = instance
	return func() { mongoInstance = previous }
}
