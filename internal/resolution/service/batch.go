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
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/wso2/identity-resolution-service/internal/resolution/model"
)

// ResolveBatch resolves several identifier sets concurrently. The returned
// slice is index-aligned with the input; a failed item carries its error in
// place without disturbing its neighbours. maxConcurrent <= 0 falls back to
// the engine's configured limit.
func (rs *ResolutionService) ResolveBatch(ctx context.Context, orgHandle string,
	sets []model.IdentifierSet, maxConcurrent int) ([]model.BatchEntry, error) {

	if len(sets) == 0 {
		return []model.BatchEntry{}, nil
	}
	if maxConcurrent <= 0 {
		maxConcurrent = rs.maxConcurrent
	}

	sem := semaphore.NewWeighted(int64(maxConcurrent))
	entries := make([]model.BatchEntry, len(sets))
	var wg sync.WaitGroup

	for i, set := range sets {
		if err := sem.Acquire(ctx, 1); err != nil {
			// Context cancelled mid-batch; mark the remainder and stop.
			for j := i; j < len(sets); j++ {
				entries[j].Err = err
			}
			break
		}
		wg.Add(1)
		go func(i int, set model.IdentifierSet) {
			defer wg.Done()
			defer sem.Release(1)
			result, err := rs.ResolveIdentity(ctx, orgHandle, set, ResolveOptions{})
			entries[i] = model.BatchEntry{Result: result, Err: err}
		}(i, set)
	}
	wg.Wait()

	return entries, nil
}
