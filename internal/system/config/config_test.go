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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
addr:
  host: "0.0.0.0"
  port: 8090
log:
  log_level: "DEBUG"
datasource:
  hostname: "${IRS_TEST_DB_HOST}"
  port: 5432
  name: "irsdb"
  username: "irs"
  password: "secret"
  sslmode: "disable"
mongo:
  uri: "mongodb://localhost:27017"
  database: "irs_records"
cache:
  backend: "redis"
  redis_addr: "localhost:6379"
  redis_db: 2
resolution:
  min_confidence: 0.5
  candidate_limit: 50
  max_concurrent: 10
  cache_ttl_seconds: 3600
  cache_empty_results: true
`

func writeSampleConfig(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	confDir := filepath.Join(home, "repository", "conf")
	require.NoError(t, os.MkdirAll(confDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(confDir, "deployment.yaml"), []byte(sampleConfig), 0o644))
	return home
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("IRS_TEST_DB_HOST", "db.internal")
	home := writeSampleConfig(t)

	cfg, err := LoadConfig(home, "/repository/conf/deployment.yaml")
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Addr.Port)
	assert.Equal(t, "DEBUG", cfg.Log.LogLevel)
	// Environment references are expanded before unmarshalling.
	assert.Equal(t, "db.internal", cfg.DataSource.Hostname)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, 2, cfg.Cache.RedisDB)
	assert.Equal(t, 0.5, cfg.Resolution.MinConfidence)
	assert.Equal(t, 3600, cfg.Resolution.CacheTTLSeconds)
	assert.True(t, cfg.Resolution.CacheEmptyResults)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir(), "/repository/conf/deployment.yaml")

	assert.Error(t, err)
}

func TestLoadConfigInvalidYaml(t *testing.T) {
	home := t.TempDir()
	confDir := filepath.Join(home, "repository", "conf")
	require.NoError(t, os.MkdirAll(confDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(confDir, "deployment.yaml"),
		[]byte("addr: [not a map"), 0o644))

	_, err := LoadConfig(home, "/repository/conf/deployment.yaml")
	assert.Error(t, err)
}
