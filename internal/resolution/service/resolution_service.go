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

// Package service implements identity resolution: given a bag of
// identifiers, search every eligible pipeline of the tenant and return
// ranked candidate matches with confidence scores.
package service

import (
	"context"
	"net/http"
	"sort"
	"time"

	pipelineModel "github.com/wso2/identity-resolution-service/internal/pipeline/model"
	recordModel "github.com/wso2/identity-resolution-service/internal/records/model"
	"github.com/wso2/identity-resolution-service/internal/resolution/model"
	"github.com/wso2/identity-resolution-service/internal/ruleengine"
	"github.com/wso2/identity-resolution-service/internal/system/constants"
	errors2 "github.com/wso2/identity-resolution-service/internal/system/errors"
	"github.com/wso2/identity-resolution-service/internal/system/log"
	ruleModel "github.com/wso2/identity-resolution-service/internal/uniqueness_rules/model"
)

// PipelineReader is the pipeline metadata the engine needs.
type PipelineReader interface {
	GetActivePipelines(orgHandle string) ([]pipelineModel.Pipeline, error)
	GetPipeline(orgHandle, pipelineId string) (*pipelineModel.Pipeline, error)
}

// RuleReader supplies the active detect-only rules of a pipeline, ordered
// by priority.
type RuleReader interface {
	ListActiveDetectRules(orgHandle, pipelineId string) ([]ruleModel.UniquenessRule, error)
}

// RecordSearcher runs the broad candidate search against record storage.
type RecordSearcher interface {
	SearchRecords(ctx context.Context, orgHandle, pipelineId string,
		clauses []recordModel.SearchClause, limit int) ([]recordModel.Record, error)
}

// ResolveOptions narrows a single resolution request.
type ResolveOptions struct {
	// Pipelines restricts the search to the given pipeline ids, in the
	// given order. Empty means all active pipelines.
	Pipelines []string
	// MinConfidence overrides the configured floor for this request.
	MinConfidence *float64
}

// ResolutionService is the identity resolution engine. Collaborators are
// injected so the engine can be exercised without live stores.
type ResolutionService struct {
	pipelines     PipelineReader
	rules         RuleReader
	records       RecordSearcher
	evaluator     ruleengine.Evaluator
	cache         *ResolutionCache
	minConfidence float64
	candidateLim  int
	maxConcurrent int
}

// Options carries the constructor parameters of the resolution engine.
type Options struct {
	Pipelines     PipelineReader
	Rules         RuleReader
	Records       RecordSearcher
	Evaluator     ruleengine.Evaluator
	Cache         *ResolutionCache
	MinConfidence float64
	CandidateLim  int
	MaxConcurrent int
}

// NewResolutionService wires the engine from its collaborators. Zero-valued
// tuning knobs fall back to the documented defaults.
func NewResolutionService(opts Options) *ResolutionService {

	if opts.MinConfidence <= 0 {
		opts.MinConfidence = constants.ConfidenceLow
	}
	if opts.CandidateLim <= 0 {
		opts.CandidateLim = constants.DefaultCandidateLimit
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = constants.DefaultMaxConcurrent
	}
	return &ResolutionService{
		pipelines:     opts.Pipelines,
		rules:         opts.Rules,
		records:       opts.Records,
		evaluator:     opts.Evaluator,
		cache:         opts.Cache,
		minConfidence: opts.MinConfidence,
		candidateLim:  opts.CandidateLim,
		maxConcurrent: opts.MaxConcurrent,
	}
}

// ResolveIdentity resolves one identifier set against the tenant's
// pipelines. An empty identifier set is not an error; it resolves to zero
// matches with every eligible pipeline reported as checked. Storage or rule
// lookup failures fail the whole resolution rather than silently returning
// a partial answer.
func (rs *ResolutionService) ResolveIdentity(ctx context.Context, orgHandle string,
	set model.IdentifierSet, opts ResolveOptions) (*model.ResolutionResult, error) {

	logger := log.GetLogger().With(log.String("orgHandle", orgHandle))

	normalized := NormalizeIdentifiers(set)

	if rs.cache != nil {
		cached, found, err := rs.cache.Get(ctx, orgHandle, normalized)
		if err != nil {
			// Cache trouble degrades to a full resolution, never a failure.
			logger.Warn("Resolution cache read failed", log.Error(err))
		} else if found {
			logger.Debug("Resolution served from cache")
			return cached, nil
		}
	}

	pipelines, err := rs.listPipelines(orgHandle, opts.Pipelines)
	if err != nil {
		return nil, err
	}

	rulesByPipeline := make(map[string][]ruleModel.UniquenessRule, len(pipelines))
	for _, pipeline := range pipelines {
		rules, err := rs.rules.ListActiveDetectRules(orgHandle, pipeline.PipelineId)
		if err != nil {
			return nil, err
		}
		rulesByPipeline[pipeline.PipelineId] = rules
	}

	eligible, skipped := FilterEligiblePipelines(pipelines, rulesByPipeline)

	minConfidence := rs.minConfidence
	if opts.MinConfidence != nil {
		minConfidence = *opts.MinConfidence
	}

	result := &model.ResolutionResult{
		Matches:          []model.Match{},
		Timestamp:        time.Now().UTC().Unix(),
		PipelinesChecked: []string{},
		PipelinesSkipped: skipped,
	}
	for _, ep := range eligible {
		result.PipelinesChecked = append(result.PipelinesChecked, ep.Pipeline.Name)
	}

	if !normalized.IsEmpty() {
		pseudo := BuildPseudoRecord(normalized)
		for _, ep := range eligible {
			if err := ctx.Err(); err != nil {
				return nil, errors2.NewServerError(errors2.RESOLVE_IDENTITY, err)
			}
			matches, err := rs.resolvePipeline(ctx, orgHandle, ep, normalized, pseudo)
			if err != nil {
				return nil, err
			}
			for _, match := range matches {
				if match.Confidence >= minConfidence {
					result.Matches = append(result.Matches, match)
				}
			}
		}
	}

	// Highest confidence first; equal scores order by record id so repeated
	// requests see identical rankings.
	sort.SliceStable(result.Matches, func(i, j int) bool {
		if result.Matches[i].Confidence != result.Matches[j].Confidence {
			return result.Matches[i].Confidence > result.Matches[j].Confidence
		}
		return result.Matches[i].Record.RecordId < result.Matches[j].Record.RecordId
	})
	result.TotalMatches = len(result.Matches)

	if rs.cache != nil {
		if err := rs.cache.Put(ctx, orgHandle, normalized, *result); err != nil {
			logger.Warn("Resolution cache write failed", log.Error(err))
		}
	}

	logger.Debug("Identity resolution completed",
		log.Int("totalMatches", result.TotalMatches),
		log.Int("pipelinesChecked", len(result.PipelinesChecked)),
		log.Int("pipelinesSkipped", len(result.PipelinesSkipped)))
	return result, nil
}

// DecideStorage resolves the identifier set and applies the storage gate.
func (rs *ResolutionService) DecideStorage(ctx context.Context, orgHandle string,
	set model.IdentifierSet, threshold *float64) (*model.ResolutionResult, model.StorageDecision, error) {

	result, err := rs.ResolveIdentity(ctx, orgHandle, set, ResolveOptions{})
	if err != nil {
		return nil, model.StorageDecision{}, err
	}
	gate := rs.minConfidence
	if threshold != nil {
		gate = *threshold
	}
	return result, DecideStorage(*result, gate), nil
}

// InvalidateCachedResolution evicts the cached result of one identifier set.
func (rs *ResolutionService) InvalidateCachedResolution(ctx context.Context,
	orgHandle string, set model.IdentifierSet) error {

	if rs.cache == nil {
		return nil
	}
	return rs.cache.Invalidate(ctx, orgHandle, NormalizeIdentifiers(set))
}

// FlushTenantResolutions evicts every cached resolution of the tenant,
// typically after a rule or pipeline change.
func (rs *ResolutionService) FlushTenantResolutions(ctx context.Context, orgHandle string) error {

	if rs.cache == nil {
		return nil
	}
	return rs.cache.FlushTenant(ctx, orgHandle)
}

func (rs *ResolutionService) listPipelines(orgHandle string, requested []string) ([]pipelineModel.Pipeline, error) {

	if len(requested) == 0 {
		return rs.pipelines.GetActivePipelines(orgHandle)
	}

	// An explicit subset keeps the caller's order; unknown or inactive ids
	// are a client error, not a silent skip.
	pipelines := make([]pipelineModel.Pipeline, 0, len(requested))
	for _, pipelineId := range requested {
		pipeline, err := rs.pipelines.GetPipeline(orgHandle, pipelineId)
		if err != nil {
			return nil, err
		}
		if pipeline == nil || !pipeline.IsActive {
			return nil, errors2.NewClientError(errors2.PIPELINE_NOT_FOUND, http.StatusNotFound)
		}
		pipelines = append(pipelines, *pipeline)
	}
	return pipelines, nil
}

// resolvePipeline searches one pipeline and evaluates its rules against
// every candidate. Rules run in priority order and the first rule that
// flags a candidate wins; later rules cannot change its confidence. One
// record appears at most once per pipeline.
func (rs *ResolutionService) resolvePipeline(ctx context.Context, orgHandle string,
	ep EligiblePipeline, set model.IdentifierSet, pseudo map[string]interface{}) ([]model.Match, error) {

	clauses := BuildSearchClauses(ep.Rules, set)
	if len(clauses) == 0 {
		return nil, nil
	}

	candidates, err := rs.records.SearchRecords(ctx, orgHandle, ep.Pipeline.PipelineId, clauses, rs.candidateLim)
	if err != nil {
		return nil, err
	}

	logger := log.GetLogger()
	var matches []model.Match
	for _, candidate := range candidates {
		for _, rule := range ep.Rules {
			verdict, err := rs.evaluator.Evaluate(rule, pseudo, candidate.Data)
			if err != nil {
				// One malformed rule must not take down the pipeline scan.
				logger.Warn("Rule evaluation failed",
					log.String("ruleId", rule.RuleId),
					log.String("pipelineId", ep.Pipeline.PipelineId),
					log.Error(err))
				continue
			}
			if !verdict.IsDuplicate {
				continue
			}

			matchedFields := append([]string(nil), verdict.MatchedFields...)
			sort.Strings(matchedFields)
			matches = append(matches, model.Match{
				Record:        candidate,
				PipelineId:    ep.Pipeline.PipelineId,
				PipelineName:  ep.Pipeline.Name,
				Confidence:    ScoreVerdict(verdict),
				MatchedFields: matchedFields,
				MatchType:     deriveMatchType(matchedFields),
			})
			break
		}
	}
	return matches, nil
}
