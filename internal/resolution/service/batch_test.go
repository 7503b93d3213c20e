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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pipelineModel "github.com/wso2/identity-resolution-service/internal/pipeline/model"
	recordModel "github.com/wso2/identity-resolution-service/internal/records/model"
	"github.com/wso2/identity-resolution-service/internal/resolution/model"
	"github.com/wso2/identity-resolution-service/internal/ruleengine"
	"github.com/wso2/identity-resolution-service/internal/system/constants"
	ruleModel "github.com/wso2/identity-resolution-service/internal/uniqueness_rules/model"
)

func TestResolveBatchPreservesInputOrder(t *testing.T) {
	searcher := &fakeRecordSearcher{recordsByPipeline: map[string][]recordModel.Record{
		"p1": {salesRecord("r1", map[string]interface{}{"work_email": "jane@corp.io"})},
	}}
	rs := newTestService(searcher, false)

	sets := []model.IdentifierSet{
		{Email: "jane@corp.io"},
		{Email: "stranger@corp.io"},
		{Email: "jane@corp.io"},
	}
	entries, err := rs.ResolveBatch(context.Background(), "acme", sets, 2)

	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.NoError(t, entries[0].Err)
	require.NoError(t, entries[1].Err)
	require.NoError(t, entries[2].Err)
	assert.Equal(t, 1, entries[0].Result.TotalMatches)
	assert.Zero(t, entries[1].Result.TotalMatches)
	assert.Equal(t, 1, entries[2].Result.TotalMatches)
}

func TestResolveBatchLargerThanConcurrencyLimit(t *testing.T) {
	searcher := &fakeRecordSearcher{recordsByPipeline: map[string][]recordModel.Record{
		"p1": {salesRecord("r1", map[string]interface{}{"work_email": "jane@corp.io"})},
	}}
	rs := newTestService(searcher, false)

	sets := make([]model.IdentifierSet, 25)
	for i := range sets {
		sets[i] = model.IdentifierSet{Email: fmt.Sprintf("user%d@corp.io", i)}
	}
	entries, err := rs.ResolveBatch(context.Background(), "acme", sets, 3)

	require.NoError(t, err)
	require.Len(t, entries, 25)
	for i, entry := range entries {
		require.NoError(t, entry.Err, "entry %d", i)
		require.NotNil(t, entry.Result, "entry %d", i)
	}
}

func TestResolveBatchEmptyInput(t *testing.T) {
	rs := newTestService(&fakeRecordSearcher{}, false)

	entries, err := rs.ResolveBatch(context.Background(), "acme", nil, 4)

	require.NoError(t, err)
	assert.Empty(t, entries)
}

type flakySearcher struct {
	fakeRecordSearcher
	failFor string
}

func (f *flakySearcher) SearchRecords(ctx context.Context, orgHandle, pipelineId string,
	clauses []recordModel.SearchClause, limit int) ([]recordModel.Record, error) {

	for _, clause := range clauses {
		if clause.Value == f.failFor {
			return nil, fmt.Errorf("store unavailable")
		}
	}
	return f.fakeRecordSearcher.SearchRecords(ctx, orgHandle, pipelineId, clauses, limit)
}

func TestResolveBatchIsolatesItemErrors(t *testing.T) {
	searcher := &flakySearcher{
		fakeRecordSearcher: fakeRecordSearcher{recordsByPipeline: map[string][]recordModel.Record{
			"p1": {salesRecord("r1", map[string]interface{}{"work_email": "jane@corp.io"})},
		}},
		failFor: "broken@corp.io",
	}
	rs := NewResolutionService(Options{
		Pipelines: &fakePipelineReader{pipelines: []pipelineModel.Pipeline{
			{PipelineId: "p1", Name: "Sales", IsActive: true},
		}},
		Rules: &fakeRuleReader{rulesByPipeline: map[string][]ruleModel.UniquenessRule{
			"p1": {detectRule("email-rule", "work_email", constants.MatchTypeExact, 1)},
		}},
		Records:   searcher,
		Evaluator: ruleengine.NewFieldMatchEvaluator(),
	})

	sets := []model.IdentifierSet{
		{Email: "jane@corp.io"},
		{Email: "broken@corp.io"},
		{Email: "jane@corp.io"},
	}
	entries, err := rs.ResolveBatch(context.Background(), "acme", sets, 2)

	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.NoError(t, entries[0].Err)
	assert.Equal(t, 1, entries[0].Result.TotalMatches)
	assert.Error(t, entries[1].Err)
	assert.Nil(t, entries[1].Result)
	assert.NoError(t, entries[2].Err)
	assert.Equal(t, 1, entries[2].Result.TotalMatches)
}

func TestResolveBatchCancelledContext(t *testing.T) {
	rs := newTestService(&fakeRecordSearcher{}, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	entries, err := rs.ResolveBatch(ctx, "acme",
		[]model.IdentifierSet{{Email: "jane@corp.io"}}, 1)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Error(t, entries[0].Err)
}
