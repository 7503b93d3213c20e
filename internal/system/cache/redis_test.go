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

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniRedisCache(t *testing.T) *RedisCache {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	return NewRedisCacheFromClient(client)
}

func TestRedisCacheSetGet(t *testing.T) {
	ctx := context.Background()
	store := newMiniRedisCache(t)

	require.NoError(t, store.Set(ctx, "k1", "v1", time.Minute))

	value, found, err := store.Get(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v1", value)
}

func TestRedisCacheMissIsNotAnError(t *testing.T) {
	_, found, err := newMiniRedisCache(t).Get(context.Background(), "absent")

	assert.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCacheDelete(t *testing.T) {
	ctx := context.Background()
	store := newMiniRedisCache(t)

	require.NoError(t, store.Set(ctx, "k1", "v1", time.Minute))
	require.NoError(t, store.Delete(ctx, "k1"))

	_, found, err := store.Get(ctx, "k1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCacheDeletePrefix(t *testing.T) {
	ctx := context.Background()
	store := newMiniRedisCache(t)

	require.NoError(t, store.Set(ctx, "resolution:acme:a", "1", time.Minute))
	require.NoError(t, store.Set(ctx, "resolution:acme:b", "2", time.Minute))
	require.NoError(t, store.Set(ctx, "resolution:globex:a", "3", time.Minute))

	require.NoError(t, store.DeletePrefix(ctx, "resolution:acme:"))

	_, found, _ := store.Get(ctx, "resolution:acme:a")
	assert.False(t, found)
	_, found, _ = store.Get(ctx, "resolution:acme:b")
	assert.False(t, found)
	_, found, _ = store.Get(ctx, "resolution:globex:a")
	assert.True(t, found)
}
