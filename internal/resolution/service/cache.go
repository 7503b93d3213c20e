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
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/wso2/identity-resolution-service/internal/resolution/model"
	"github.com/wso2/identity-resolution-service/internal/system/cache"
	errors2 "github.com/wso2/identity-resolution-service/internal/system/errors"
	"github.com/wso2/identity-resolution-service/internal/system/log"
)

const cacheKeyPrefix = "resolution:"

// ResolutionCache is the tenant-scoped cache of resolution results. Entries
// are written wholesale, so last-writer-wins is an acceptable race outcome.
type ResolutionCache struct {
	store      cache.Store
	ttl        time.Duration
	cacheEmpty bool
}

// NewResolutionCache creates a resolution cache over the given backend.
// cacheEmpty controls whether zero-match results are cached too, to avoid
// repeated full scans for known-unmatched identifiers.
func NewResolutionCache(store cache.Store, ttl time.Duration, cacheEmpty bool) *ResolutionCache {
	return &ResolutionCache{
		store:      store,
		ttl:        ttl,
		cacheEmpty: cacheEmpty,
	}
}

// CacheKey derives a stable key from the tenant and the identifier set:
// entries sorted by kind, hashed, truncated. Sorting makes the key
// independent of field order in the request.
func CacheKey(orgHandle string, set model.IdentifierSet) string {

	entries := set.Entries()
	kinds := make([]string, 0, len(entries))
	for kind := range entries {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	var parts []string
	for _, kind := range kinds {
		parts = append(parts, kind+"="+entries[kind])
	}
	digest := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return cacheKeyPrefix + orgHandle + ":" + hex.EncodeToString(digest[:])[:16]
}

// Get returns the cached result for the identifier set, if any.
func (c *ResolutionCache) Get(ctx context.Context, orgHandle string,
	set model.IdentifierSet) (*model.ResolutionResult, bool, error) {

	value, found, err := c.store.Get(ctx, CacheKey(orgHandle, set))
	if err != nil {
		return nil, false, errors2.NewServerError(errors2.CACHE_READ, err)
	}
	if !found {
		return nil, false, nil
	}

	var result model.ResolutionResult
	if err := json.Unmarshal([]byte(value), &result); err != nil {
		// A corrupt entry is treated as a miss; it will be overwritten.
		log.GetLogger().Warn("Discarding undecodable resolution cache entry", log.Error(err))
		return nil, false, nil
	}
	return &result, true, nil
}

// Put stores a resolution result, subject to the empty-result policy.
func (c *ResolutionCache) Put(ctx context.Context, orgHandle string,
	set model.IdentifierSet, result model.ResolutionResult) error {

	if result.TotalMatches == 0 && !c.cacheEmpty {
		return nil
	}

	value, err := json.Marshal(result)
	if err != nil {
		return errors2.NewServerError(errors2.MARSHAL_JSON, err)
	}
	if err := c.store.Set(ctx, CacheKey(orgHandle, set), string(value), c.ttl); err != nil {
		return errors2.NewServerError(errors2.CACHE_WRITE, err)
	}
	return nil
}

// Invalidate evicts the entry for one identifier set.
func (c *ResolutionCache) Invalidate(ctx context.Context, orgHandle string, set model.IdentifierSet) error {

	if err := c.store.Delete(ctx, CacheKey(orgHandle, set)); err != nil {
		return errors2.NewServerError(errors2.CACHE_FLUSH, err)
	}
	return nil
}

// FlushTenant evicts every cached resolution of a tenant. Expensive; meant
// for bulk rule changes, not the request path.
func (c *ResolutionCache) FlushTenant(ctx context.Context, orgHandle string) error {

	if err := c.store.DeletePrefix(ctx, cacheKeyPrefix+orgHandle+":"); err != nil {
		return errors2.NewServerError(errors2.CACHE_FLUSH, err)
	}
	return nil
}
