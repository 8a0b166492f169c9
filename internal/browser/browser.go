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

// Package browser holds the collection browsing controller: the client-side
// state of a paged, filtered coin listing and the gateway calls that feed it.
//
// Every operation returns immediately and runs its gateway call on its own
// goroutine; completions merge into the shared state under a single mutex.
// Front ends read the state through Snapshot and learn about changes through
// Subscribe.
package browser

import (
	"context"
	"sync"
	"time"

	"coin-browser-go/internal/models"
	"coin-browser-go/internal/store"
)

const (
	DefaultPageSize         = 10
	DefaultOperationTimeout = 10 * time.Second
)

// Option configures a Browser.
type Option func(*Browser)

// WithPageSize sets the fixed page size used for every listing call.
func WithPageSize(n int) Option {
	return func(b *Browser) {
		if n > 0 {
			b.pageSize = n
		}
	}
}

// WithOperationTimeout bounds every gateway call made by the browser.
// Zero disables the bound; the gateway's own timeouts still apply.
func WithOperationTimeout(d time.Duration) Option {
	return func(b *Browser) {
		b.opTimeout = d
	}
}

// WithFilter sets the filter the initial load runs under.
func WithFilter(f models.Filter) Option {
	return func(b *Browser) {
		b.filter = copyFilter(f)
		b.filter.SearchText = models.NormalizeSearchText(f.SearchText)
	}
}

// Browser is the collection browsing controller.
type Browser struct {
	gateway   store.CoinGateway
	pageSize  int
	opTimeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	started bool
	closed  bool

	// Listing
	coins       []models.Coin
	filter      models.Filter
	currentPage int
	isLoading   bool
	isLastPage  bool
	listGen     uint64
	pageCancel  context.CancelFunc

	// Reference lists and counters
	countries    []models.Country
	collections  []models.Collection
	counters     models.Counters
	counterSeq   uint64
	isRefreshing bool

	// Detail dialog
	selectedCoin  *models.Coin
	coinDetail    *models.CoinDetail
	detailLoading bool
	detailCoinId  int
	detailGen     uint64
	detailCancel  context.CancelFunc

	// Coin ids with an image fetch outstanding
	loadingImages map[int]struct{}

	showScrollToTop bool

	subMu       sync.Mutex
	subscribers map[int]chan struct{}
	nextSubId   int
}

// New creates a Browser over the given gateway. Nothing is fetched until Start.
func New(gateway store.CoinGateway, opts ...Option) *Browser {
	ctx, cancel := context.WithCancel(context.Background())
	b := &Browser{
		gateway:       gateway,
		pageSize:      DefaultPageSize,
		opTimeout:     DefaultOperationTimeout,
		ctx:           ctx,
		cancel:        cancel,
		coins:         []models.Coin{},
		currentPage:   1,
		countries:     []models.Country{},
		collections:   []models.Collection{},
		loadingImages: make(map[int]struct{}),
		subscribers:   make(map[int]chan struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// PageSize returns the fixed page size.
func (b *Browser) PageSize() int {
	return b.pageSize
}

// Start performs the initial load: counters and reference lists concurrently,
// then the first page. The load is also bound by ctx. Calling Start more than
// once has no effect.
func (b *Browser) Start(ctx context.Context) {
	b.mu.Lock()
	if b.started || b.closed {
		b.mu.Unlock()
		return
	}
	b.started = true
	seq, params := b.nextCounterRequestLocked()
	gen := b.listGen
	b.spawnLocked(func(base context.Context) {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		stop := context.AfterFunc(base, cancel)
		defer stop()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			cctx, ccancel := b.operationContext(ctx)
			defer ccancel()
			b.fetchCounters(cctx, seq, params)
		}()
		go func() {
			defer wg.Done()
			b.reloadReferences(ctx)
		}()
		wg.Wait()

		// A filter change during the load has already issued its own first page.
		b.mu.Lock()
		issued := false
		if gen == b.listGen && len(b.coins) == 0 {
			issued = b.loadNextPageLocked()
		}
		b.mu.Unlock()
		if issued {
			b.notify()
		}
	})
	b.mu.Unlock()
}

// Wait blocks until every outstanding operation has completed.
func (b *Browser) Wait() {
	b.wg.Wait()
}

// Close cancels all outstanding operations and waits for them to finish.
// Operations requested after Close are ignored.
func (b *Browser) Close() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()

	b.cancel()
	b.wg.Wait()
}

// spawnLocked runs fn on its own goroutine under the browser's base context.
// Must be called with b.mu held.
func (b *Browser) spawnLocked(fn func(ctx context.Context)) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		fn(b.ctx)
	}()
}

// operationContext derives a context bounded by the operation timeout.
func (b *Browser) operationContext(parent context.Context) (context.Context, context.CancelFunc) {
	if b.opTimeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, b.opTimeout)
}
