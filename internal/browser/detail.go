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

// OpenDetail selects a coin from the list and loads its detail record.
// A pending fetch for a different coin is abandoned so the dialog never
// shows one coin's detail under another's selection.
func (b *Browser) OpenDetail(coin models.Coin) bool {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return false
	}
	if b.detailLoading && b.detailCoinId != coin.Id {
		b.abandonDetailLocked()
	}
	b.selectedCoin = &coin
	issued := b.loadDetailLocked(coin.Id)
	b.mu.Unlock()

	b.notify()
	return issued
}

// LoadDetail fetches the detail record for a coin. Only one detail fetch runs
// at a time; a call made while one is pending is ignored and returns false.
func (b *Browser) LoadDetail(coinId int) bool {
	b.mu.Lock()
	issued := b.loadDetailLocked(coinId)
	b.mu.Unlock()

	if issued {
		b.notify()
	}
	return issued
}

// CloseDetail dismisses the detail view. A pending detail fetch is cancelled
// and its result ignored.
func (b *Browser) CloseDetail() {
	b.mu.Lock()
	b.selectedCoin = nil
	b.coinDetail = nil
	b.abandonDetailLocked()
	b.mu.Unlock()

	b.notify()
}

// abandonDetailLocked cancels the pending detail fetch and makes its result stale.
func (b *Browser) abandonDetailLocked() {
	b.detailGen++
	if b.detailCancel != nil {
		b.detailCancel()
		b.detailCancel = nil
	}
	b.detailLoading = false
}

func (b *Browser) loadDetailLocked(coinId int) bool {
	if b.closed || b.detailLoading {
		return false
	}
	b.detailLoading = true
	b.detailCoinId = coinId
	b.coinDetail = nil

	gen := b.detailGen
	ctx, cancel := b.operationContext(b.ctx)
	b.detailCancel = cancel

	b.spawnLocked(func(context.Context) {
		defer cancel()
		b.fetchDetail(ctx, gen, coinId)
	})
	return true
}

func (b *Browser) fetchDetail(ctx context.Context, gen uint64, coinId int) {
	detail, err := b.gateway.GetCoinDetail(ctx, coinId)

	b.mu.Lock()
	if gen != b.detailGen {
		b.mu.Unlock()
		return
	}
	b.detailLoading = false
	b.detailCancel = nil
	b.coinDetail = nil
	if err == nil {
		b.coinDetail = detail
	}
	b.mu.Unlock()

	switch {
	case err == nil:
	case errors.Is(err, store.ErrNotFound):
		zap.L().Info("Coin detail not found", zap.Int("coin_id", coinId))
	case errors.Is(err, context.Canceled):
	default:
		zap.L().Warn("Failed to load coin detail", zap.Int("coin_id", coinId), zap.Error(err))
	}
	b.notify()
}
