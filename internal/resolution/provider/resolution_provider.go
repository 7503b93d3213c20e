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

package provider

import (
	"sync"
	"time"

	pipelineProvider "github.com/wso2/identity-resolution-service/internal/pipeline/provider"
	recordStore "github.com/wso2/identity-resolution-service/internal/records/store"
	"github.com/wso2/identity-resolution-service/internal/resolution/service"
	"github.com/wso2/identity-resolution-service/internal/ruleengine"
	"github.com/wso2/identity-resolution-service/internal/system/cache"
	"github.com/wso2/identity-resolution-service/internal/system/config"
	"github.com/wso2/identity-resolution-service/internal/system/constants"
	"github.com/wso2/identity-resolution-service/internal/system/log"
	ruleProvider "github.com/wso2/identity-resolution-service/internal/uniqueness_rules/provider"
)

// ResolutionProviderInterface defines the interface for the resolution provider.
type ResolutionProviderInterface interface {
	GetResolutionService() (*service.ResolutionService, error)
}

// ResolutionProvider is the default implementation of the ResolutionProviderInterface.
type ResolutionProvider struct{}

var (
	engineOnce sync.Once
	engine     *service.ResolutionService
	engineErr  error
)

// NewResolutionProvider creates a new instance of ResolutionProvider.
func NewResolutionProvider() ResolutionProviderInterface {

	return &ResolutionProvider{}
}

// GetResolutionService returns the resolution engine, constructed once from
// the runtime configuration. The engine holds the shared result cache, so
// every caller must see the same instance.
func (rp *ResolutionProvider) GetResolutionService() (*service.ResolutionService, error) {

	engineOnce.Do(func() {
		engine, engineErr = buildEngine()
	})
	return engine, engineErr
}

func buildEngine() (*service.ResolutionService, error) {

	cfg := config.GetIRSRuntime().Config

	records, err := recordStore.NewRecordRepository()
	if err != nil {
		return nil, err
	}

	ttl := constants.DefaultResolutionCacheTTL
	if cfg.Resolution.CacheTTLSeconds > 0 {
		ttl = time.Duration(cfg.Resolution.CacheTTLSeconds) * time.Second
	}
	resolutionCache := service.NewResolutionCache(
		newCacheStore(cfg.Cache), ttl, cfg.Resolution.CacheEmptyResults)

	return service.NewResolutionService(service.Options{
		Pipelines:     pipelineProvider.NewPipelineProvider().GetPipelineService(),
		Rules:         ruleProvider.NewUniquenessRuleProvider().GetUniquenessRuleService(),
		Records:       records,
		Evaluator:     ruleengine.NewFieldMatchEvaluator(),
		Cache:         resolutionCache,
		MinConfidence: cfg.Resolution.MinConfidence,
		CandidateLim:  cfg.Resolution.CandidateLimit,
		MaxConcurrent: cfg.Resolution.MaxConcurrent,
	}), nil
}

func newCacheStore(cfg config.CacheConfig) cache.Store {

	if cfg.Backend == "redis" && cfg.RedisAddr != "" {
		log.GetLogger().Info("Using redis resolution cache backend: " + cfg.RedisAddr)
		return cache.NewRedisCache(cfg.RedisAddr, cfg.RedisDB)
	}
	return cache.NewInMemoryCache()
}
