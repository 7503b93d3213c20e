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

package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/wso2/identity-resolution-service/internal/system/log"
)

// Store is the contract for resolution cache backends. Values are stored as
// serialized strings so backends stay interchangeable.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeletePrefix(ctx context.Context, prefix string) error
}

type cacheItem struct {
	value      string
	expiration time.Time
}

// InMemoryCache is a TTL cache backed by a mutex-guarded map.
type InMemoryCache struct {
	items map[string]cacheItem
	mutex sync.RWMutex
}

// NewInMemoryCache creates a new in-memory cache.
func NewInMemoryCache() *InMemoryCache {
	return &InMemoryCache{
		items: make(map[string]cacheItem),
	}
}

// Set adds an item to the cache
func (c *InMemoryCache) Set(_ context.Context, key, value string, ttl time.Duration) error {

	logger := log.GetLogger()
	logger.Debug("Setting cache for key: " + key)
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.items[key] = cacheItem{
		value:      value,
		expiration: time.Now().Add(ttl),
	}
	return nil
}

// Get retrieves an item from the cache
func (c *InMemoryCache) Get(_ context.Context, key string) (string, bool, error) {

	logger := log.GetLogger()
	c.mutex.RLock()
	item, found := c.items[key]
	c.mutex.RUnlock()

	if !found {
		logger.Debug("Cache not found for key: " + key)
		return "", false, nil
	}
	// Evict on expired read so dead entries don't pile up between hits.
	if time.Now().After(item.expiration) {
		logger.Debug("Cache expired for key: " + key)
		c.mutex.Lock()
		if current, ok := c.items[key]; ok && time.Now().After(current.expiration) {
			delete(c.items, key)
		}
		c.mutex.Unlock()
		return "", false, nil
	}

	return item.value, true, nil
}

// Delete removes an item from the cache
func (c *InMemoryCache) Delete(_ context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.items, key)
	return nil
}

// DeletePrefix removes every item whose key starts with the given prefix.
func (c *InMemoryCache) DeletePrefix(_ context.Context, prefix string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
		}
	}
	return nil
}
