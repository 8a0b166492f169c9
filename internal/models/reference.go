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

package models

import "strings"

// AllId marks the synthetic "all" choice on a country or collection reference.
// It is never sent to a gateway as a filter value.
const AllId = -1

// Country is a reference entry used for filtering
type Country struct {
	Id   int
	Name string
}

// IsAll reports whether the reference is absent or the "all" sentinel
func (c *Country) IsAll() bool {
	return c == nil || c.Id == AllId
}

// AllCountries returns the sentinel "all countries" reference
func AllCountries() *Country {
	return &Country{Id: AllId, Name: "All countries"}
}

// Collection is a series of coins, optionally tied to a country
type Collection struct {
	Id                int
	Name              string
	TotalInCollection *int
	FullCollection    *int
	CountryId         *int
}

// IsAll reports whether the reference is absent or the "all" sentinel
func (c *Collection) IsAll() bool {
	return c == nil || c.Id == AllId
}

// AllCollections returns the sentinel "all collections" reference
func AllCollections() *Collection {
	return &Collection{Id: AllId, Name: "All collections"}
}

// Filter is the set of constraints applied to coin listings and counters
type Filter struct {
	Country    *Country
	Collection *Collection
	SearchText string
}

// CountryId returns the country filter value, nil when no country filter applies
func (f Filter) CountryId() *int {
	if f.Country.IsAll() {
		return nil
	}
	id := f.Country.Id
	return &id
}

// CollectionId returns the collection filter value, nil when no collection filter applies
func (f Filter) CollectionId() *int {
	if f.Collection.IsAll() {
		return nil
	}
	id := f.Collection.Id
	return &id
}

// NormalizeSearchText collapses blank input to the empty string, meaning no search filter
func NormalizeSearchText(text string) string {
	return strings.TrimSpace(text)
}
