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
)

// LoadNextPage fetches the page at the cursor and appends it to the list.
// It reports whether a fetch was issued: nothing happens while a page is
// loading or after the last page has been reached.
func (b *Browser) LoadNextPage() bool {
	b.mu.Lock()
	issued := b.loadNextPageLocked()
	b.mu.Unlock()

	if issued {
		b.notify()
	}
	return issued
}

// OnLastItemReached is the end-of-list trigger of a scrolling front end.
func (b *Browser) OnLastItemReached() bool {
	return b.LoadNextPage()
}

func (b *Browser) loadNextPageLocked() bool {
	if b.closed || b.isLoading || b.isLastPage {
		return false
	}
	b.isLoading = true

	gen := b.listGen
	params := store.NewListCoinsParams(b.filter, b.currentPage, b.pageSize)
	ctx, cancel := b.operationContext(b.ctx)
	b.pageCancel = cancel

	b.spawnLocked(func(context.Context) {
		defer cancel()
		b.fetchPage(ctx, gen, params)
	})
	return true
}

func (b *Browser) fetchPage(ctx context.Context, gen uint64, params store.ListCoinsParams) {
	page, err := b.gateway.ListCoins(ctx, params)

	b.mu.Lock()
	if gen != b.listGen {
		b.mu.Unlock()
		zap.L().Debug("Discarding page fetched under a previous filter", zap.Int("page", params.Page))
		return
	}
	b.isLoading = false
	b.pageCancel = nil

	if err != nil {
		b.mu.Unlock()
		if !errors.Is(err, context.Canceled) {
			zap.L().Warn("Failed to load coins page", zap.Int("page", params.Page), zap.Error(err))
		}
		b.notify()
		return
	}

	for _, coin := range page.Coins {
		if coin.Images == nil {
			coin.Images = []models.Image{}
		}
		b.coins = append(b.coins, coin)
	}
	if len(page.Coins) < b.pageSize {
		b.isLastPage = true
	} else {
		b.currentPage++
	}
	for _, coin := range page.Coins {
		b.prefetchImagesLocked(coin.Id)
	}
	b.mu.Unlock()

	zap.L().Debug("Loaded coins page",
		zap.Int("page", params.Page),
		zap.Int("count", len(page.Coins)))
	b.notify()
}

// resetAndReloadLocked starts the listing over under the current filter:
// a page fetch issued under the previous filter is cancelled and its result
// discarded, then one page fetch and one counter refresh are issued.
func (b *Browser) resetAndReloadLocked() {
	b.listGen++
	if b.pageCancel != nil {
		b.pageCancel()
		b.pageCancel = nil
	}
	b.coins = []models.Coin{}
	b.currentPage = 1
	b.isLastPage = false
	b.isLoading = false

	b.loadNextPageLocked()
	b.refreshCountersLocked()
}
