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
	"coin-browser-go/internal/models"
)

// State is an immutable snapshot of the browser, consistent for one render pass.
type State struct {
	Coins               []models.Coin
	Countries           []models.Country
	Collections         []models.Collection
	FilteredCollections []models.Collection
	Filter              models.Filter
	Counters            models.Counters

	CurrentPage  int
	IsLoading    bool
	IsLastPage   bool
	IsRefreshing bool

	SelectedCoin  *models.Coin
	CoinDetail    *models.CoinDetail
	DetailLoading bool

	ShowScrollToTop bool
}

// Snapshot returns a copy of the current state.
func (b *Browser) Snapshot() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := State{
		Coins:               append([]models.Coin(nil), b.coins...),
		Countries:           append([]models.Country(nil), b.countries...),
		Collections:         append([]models.Collection(nil), b.collections...),
		FilteredCollections: CollectionsForCountry(b.collections, b.filter.Country),
		Filter:              copyFilter(b.filter),
		Counters:            b.counters,
		CurrentPage:         b.currentPage,
		IsLoading:           b.isLoading,
		IsLastPage:          b.isLastPage,
		IsRefreshing:        b.isRefreshing,
		DetailLoading:       b.detailLoading,
		ShowScrollToTop:     b.showScrollToTop,
	}
	if b.selectedCoin != nil {
		c := *b.selectedCoin
		s.SelectedCoin = &c
	}
	if b.coinDetail != nil {
		d := *b.coinDetail
		s.CoinDetail = &d
	}
	return s
}

// Subscribe returns a channel that receives a signal after state changes.
// Signals are coalesced: a slow reader sees one pending signal, then reads
// the latest Snapshot. The returned function cancels the subscription.
func (b *Browser) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	b.subMu.Lock()
	id := b.nextSubId
	b.nextSubId++
	b.subscribers[id] = ch
	b.subMu.Unlock()

	return ch, func() {
		b.subMu.Lock()
		delete(b.subscribers, id)
		b.subMu.Unlock()
	}
}

func (b *Browser) notify() {
	b.subMu.Lock()
	defer b.subMu.Unlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// OnScroll records the first visible list index; the scroll-to-top hint shows past index 1.
func (b *Browser) OnScroll(index int) {
	b.mu.Lock()
	changed := b.showScrollToTop != (index > 1)
	b.showScrollToTop = index > 1
	b.mu.Unlock()

	if changed {
		b.notify()
	}
}

// ScrollToTop hides the scroll-to-top hint.
func (b *Browser) ScrollToTop() {
	b.OnScroll(0)
}

func copyFilter(f models.Filter) models.Filter {
	out := models.Filter{SearchText: f.SearchText}
	if f.Country != nil {
		c := *f.Country
		out.Country = &c
	}
	if f.Collection != nil {
		c := *f.Collection
		out.Collection = &c
	}
	return out
}
