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
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/identity-resolution-service/internal/resolution/model"
	"github.com/wso2/identity-resolution-service/internal/system/cache"
)

func newTestCache(cacheEmpty bool) *ResolutionCache {
	return NewResolutionCache(cache.NewInMemoryCache(), time.Minute, cacheEmpty)
}

func TestCacheKeyIgnoresEntryOrderAndScopesTenant(t *testing.T) {
	set := model.IdentifierSet{Email: "jane@corp.io", Phone: "+14155550123"}

	assert.Equal(t, CacheKey("acme", set), CacheKey("acme", set))
	assert.NotEqual(t, CacheKey("acme", set), CacheKey("globex", set))
	assert.NotEqual(t, CacheKey("acme", set), CacheKey("acme", model.IdentifierSet{Email: "jane@corp.io"}))
}

func TestCachePutAndGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	resolutionCache := newTestCache(false)
	set := model.IdentifierSet{Email: "jane@corp.io"}
	result := model.ResolutionResult{
		Matches:      []model.Match{{PipelineId: "p1", Confidence: 0.9}},
		TotalMatches: 1,
	}

	require.NoError(t, resolutionCache.Put(ctx, "acme", set, result))

	cached, found, err := resolutionCache.Get(ctx, "acme", set)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1, cached.TotalMatches)
	assert.Equal(t, "p1", cached.Matches[0].PipelineId)
}

func TestCacheMiss(t *testing.T) {
	_, found, err := newTestCache(false).Get(context.Background(), "acme",
		model.IdentifierSet{Email: "nobody@corp.io"})

	assert.NoError(t, err)
	assert.False(t, found)
}

func TestCacheEmptyResultPolicy(t *testing.T) {
	ctx := context.Background()
	set := model.IdentifierSet{Email: "jane@corp.io"}
	empty := model.ResolutionResult{Matches: []model.Match{}}

	skipping := newTestCache(false)
	require.NoError(t, skipping.Put(ctx, "acme", set, empty))
	_, found, err := skipping.Get(ctx, "acme", set)
	require.NoError(t, err)
	assert.False(t, found)

	caching := newTestCache(true)
	require.NoError(t, caching.Put(ctx, "acme", set, empty))
	_, found, err = caching.Get(ctx, "acme", set)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestCacheInvalidate(t *testing.T) {
	ctx := context.Background()
	resolutionCache := newTestCache(true)
	set := model.IdentifierSet{Email: "jane@corp.io"}

	require.NoError(t, resolutionCache.Put(ctx, "acme", set, model.ResolutionResult{TotalMatches: 1}))
	require.NoError(t, resolutionCache.Invalidate(ctx, "acme", set))

	_, found, err := resolutionCache.Get(ctx, "acme", set)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCacheFlushTenantLeavesOtherTenants(t *testing.T) {
	ctx := context.Background()
	resolutionCache := newTestCache(true)
	set := model.IdentifierSet{Email: "jane@corp.io"}

	require.NoError(t, resolutionCache.Put(ctx, "acme", set, model.ResolutionResult{TotalMatches: 1}))
	require.NoError(t, resolutionCache.Put(ctx, "globex", set, model.ResolutionResult{TotalMatches: 1}))

	require.NoError(t, resolutionCache.FlushTenant(ctx, "acme"))

	_, found, err := resolutionCache.Get(ctx, "acme", set)
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = resolutionCache.Get(ctx, "globex", set)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestCacheDiscardsCorruptEntry(t *testing.T) {
	ctx := context.Background()
	store := cache.NewInMemoryCache()
	resolutionCache := NewResolutionCache(store, time.Minute, true)
	set := model.IdentifierSet{Email: "jane@corp.io"}

	require.NoError(t, store.Set(ctx, CacheKey("acme", set), "{not json", time.Minute))

	_, found, err := resolutionCache.Get(ctx, "acme", set)
	assert.NoError(t, err)
	assert.False(t, found)
}
