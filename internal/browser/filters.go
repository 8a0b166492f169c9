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

// SelectCountry applies a country filter and clears any collection filter.
// A nil or sentinel country removes the country constraint.
func (b *Browser) SelectCountry(country *models.Country) {
	b.mu.Lock()
	if country != nil {
		c := *country
		b.filter.Country = &c
	} else {
		b.filter.Country = nil
	}
	b.filter.Collection = nil
	b.resetAndReloadLocked()
	b.mu.Unlock()

	b.notify()
}

// SelectCollection applies a collection filter. A nil or sentinel collection
// removes the collection constraint.
func (b *Browser) SelectCollection(collection *models.Collection) {
	b.mu.Lock()
	if collection != nil {
		c := *collection
		b.filter.Collection = &c
	} else {
		b.filter.Collection = nil
	}
	b.resetAndReloadLocked()
	b.mu.Unlock()

	b.notify()
}

// SetSearchText applies a free-text filter. Blank text means no search filter.
func (b *Browser) SetSearchText(text string) {
	b.mu.Lock()
	b.filter.SearchText = models.NormalizeSearchText(text)
	b.resetAndReloadLocked()
	b.mu.Unlock()

	b.notify()
}

// Filter returns the current filter set.
func (b *Browser) Filter() models.Filter {
	b.mu.Lock()
	defer b.mu.Unlock()
	return copyFilter(b.filter)
}

// FilteredCollections returns the collections selectable under the current
// country filter.
func (b *Browser) FilteredCollections() []models.Collection {
	b.mu.Lock()
	defer b.mu.Unlock()
	return CollectionsForCountry(b.collections, b.filter.Country)
}

// CollectionsForCountry keeps every collection when no country applies, otherwise
// the collections of that country plus those not tied to any country.
func CollectionsForCountry(collections []models.Collection, country *models.Country) []models.Collection {
	out := make([]models.Collection, 0, len(collections))
	for _, c := range collections {
		if country.IsAll() || c.CountryId == nil || *c.CountryId == country.Id {
			out = append(out, c)
		}
	}
	return out
}
