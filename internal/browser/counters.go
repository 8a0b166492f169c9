/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package browser

import (
	"context"
	"errors"

	"coin-browser-go/internal/models"
	"coin-browser-go/internal/store"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RefreshCounters re-fetches the aggregate counters for the current filter.
// Only the response to the most recent refresh is applied.
func (b *Browser) RefreshCounters() {
	b.mu.Lock()
	b.refreshCountersLocked()
	b.mu.Unlock()
}

func (b *Browser) refreshCountersLocked() {
	if b.closed {
		return
	}
	seq, params := b.nextCounterRequestLocked()
	b.spawnLocked(func(base context.Context) {
		ctx, cancel := b.operationContext(base)
		defer cancel()
		b.fetchCounters(ctx, seq, params)
	})
}

func (b *Browser) nextCounterRequestLocked() (uint64, store.CountParams) {
	b.counterSeq++
	return b.counterSeq, store.NewCountParams(b.filter)
}

func (b *Browser) fetchCounters(ctx context.Context, seq uint64, params store.CountParams) {
	counters, err := b.gateway.CountCoins(ctx, params)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			zap.L().Warn("Failed to load coin counters", zap.Error(err))
		}
		return
	}

	b.mu.Lock()
	if seq != b.counterSeq {
		b.mu.Unlock()
		zap.L().Debug("Discarding counters for a previous filter")
		return
	}
	b.counters = *counters
	b.mu.Unlock()

	b.notify()
}

// Refresh reloads the reference lists and then starts the listing over.
// It returns false while a refresh is already running.
func (b *Browser) Refresh() bool {
	b.mu.Lock()
	if b.closed || b.isRefreshing {
		b.mu.Unlock()
		return false
	}
	b.isRefreshing = true
	b.spawnLocked(func(base context.Context) {
		b.reloadReferences(base)

		b.mu.Lock()
		b.isRefreshing = false
		b.resetAndReloadLocked()
		b.mu.Unlock()

		b.notify()
	})
	b.mu.Unlock()

	b.notify()
	return true
}

// reloadReferences replaces the country and collection lists together.
// On failure both lists keep their previous contents.
func (b *Browser) reloadReferences(base context.Context) {
	ctx, cancel := b.operationContext(base)
	defer cancel()

	var (
		countries   []models.Country
		collections []models.Collection
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		countries, err = b.gateway.ListCountries(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		collections, err = b.gateway.ListCollections(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		if !errors.Is(err, context.Canceled) {
			zap.L().Warn("Failed to load reference lists", zap.Error(err))
		}
		return
	}

	if countries == nil {
		countries = []models.Country{}
	}
	if collections == nil {
		collections = []models.Collection{}
	}

	b.mu.Lock()
	b.countries = countries
	b.collections = collections
	b.mu.Unlock()

	b.notify()
}
