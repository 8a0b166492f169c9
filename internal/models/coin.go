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

import (
	"github.com/shopspring/decimal"
)

// Coin is a display record for one coin of the collection.
// Identity is Id; a Coin is only ever replaced, never mutated in place.
type Coin struct {
	Id          int
	Country     string
	Collection  string
	YearCentury string
	Title       string
	Value       string
	Count       int
	Condition   string
	Images      []Image
}

// WithImages returns a copy of the coin carrying the given images.
func (c Coin) WithImages(images []Image) Coin {
	c.Images = images
	return c
}

// Image is a decoded coin photo
type Image struct {
	Data        []byte
	ContentType string
}

// CoinPage is one bounded batch of coins as returned by the gateway
type CoinPage struct {
	Coins    []Coin
	Page     int
	PageSize int
}

// CoinImages holds the base64 encoded photos of a coin as returned by the gateway
type CoinImages struct {
	CoinId int
	Images []string
}

// CoinDetail is the full record of a single coin
type CoinDetail struct {
	Id            int
	Country       string
	Collection    string
	Name          string
	Type          string
	Value         string
	Mint          string
	YearCentury   string
	Material      string
	Mintage       *int64
	Weight        decimal.NullDecimal
	Diameter      decimal.NullDecimal
	Condition     string
	PurchasePrice decimal.NullDecimal
	AddExpenses   decimal.NullDecimal
	PurchaseDate  string
	Count         int
	Description   string
}

// Counters are the aggregate figures for the currently applied filter set
type Counters struct {
	TotalCount  int
	UniqueCount int
	TotalPrice  decimal.Decimal
	MarketPrice decimal.Decimal
}
