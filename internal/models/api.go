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

// DataResponse is the envelope the coin API wraps list payloads in
type DataResponse[T any] struct {
	Data T `json:"data"`
}

// CoinItemResponse is one coin summary of a listing page
type CoinItemResponse struct {
	IdCoin           FlexInt    `json:"id_coin"`
	Country          FlexString `json:"country"`
	CollectionSeries FlexString `json:"collection_series"`
	Name             FlexString `json:"name"`
	Value            FlexString `json:"value"`
	YearCentury      FlexString `json:"year_century"`
	Count            FlexInt    `json:"count"`
	CoinCondition    FlexString `json:"coin_condition"`
}

// PaginatedCoinResponse is the /get_coins payload
type PaginatedCoinResponse struct {
	Data     []CoinItemResponse `json:"data"`
	Page     FlexInt            `json:"page"`
	PageSize FlexInt            `json:"page_size"`
}

// CoinsCountResponse is the /get_coins_count payload
type CoinsCountResponse struct {
	TotalCount   FlexInt     `json:"total_count"`
	UnicCount    FlexInt     `json:"unic_count"`
	TotalPrice   FlexDecimal `json:"total_price"`
	NumistaPrice FlexDecimal `json:"numista_price"`
}

// CountryResponse is one /get_countries entry
type CountryResponse struct {
	IdCountry FlexInt    `json:"id_country"`
	Country   FlexString `json:"country"`
}

// CollectionResponse is one /get_collections_series entry
type CollectionResponse struct {
	IdCollectionSeries     FlexInt    `json:"id_collection_series"`
	CollectionSeries       FlexString `json:"collection_series"`
	TotalCoinsInCollection *FlexInt   `json:"total_coins_in_collection"`
	FullCollection         *FlexInt   `json:"full_collection"`
	IdCountry              *FlexInt   `json:"id_country"`
}

// CoinDetailItemResponse is the full record inside /get_coin_info
type CoinDetailItemResponse struct {
	IdCoin           FlexInt     `json:"id_coin"`
	Country          FlexString  `json:"country"`
	CollectionSeries FlexString  `json:"collection_series"`
	Name             FlexString  `json:"name"`
	Type             FlexString  `json:"type"`
	Value            FlexString  `json:"value"`
	Mint             FlexString  `json:"mint"`
	YearCentury      FlexString  `json:"year_century"`
	Material         FlexString  `json:"material"`
	Mintage          *FlexInt    `json:"mintage"`
	Weight           FlexDecimal `json:"weight"`
	Diameter         FlexDecimal `json:"diameter"`
	CoinCondition    FlexString  `json:"coin_condition"`
	PurchasePrice    FlexDecimal `json:"purchase_price"`
	AddExpenses      FlexDecimal `json:"add_expenses"`
	PurchaseDate     FlexString  `json:"purchase_date"`
	Count            FlexInt     `json:"count"`
	Description      FlexString  `json:"description"`
}

// CoinDetailResponse is the /get_coin_info/{id} payload
type CoinDetailResponse struct {
	Data  *CoinDetailItemResponse `json:"data"`
	Count FlexInt                 `json:"count"`
}

// ImagesResponse is the /coins/{id}/images payload
type ImagesResponse struct {
	CoinId FlexInt  `json:"coin_id"`
	Images []string `json:"images"`
}

func (r CoinItemResponse) ToCoin() Coin {
	return Coin{
		Id:          r.IdCoin.Int(),
		Country:     r.Country.String(),
		Collection:  r.CollectionSeries.String(),
		YearCentury: r.YearCentury.String(),
		Title:       r.Name.String(),
		Value:       r.Value.String(),
		Count:       r.Count.Int(),
		Condition:   r.CoinCondition.String(),
		Images:      []Image{},
	}
}

func NewCoinItemResponse(c Coin) CoinItemResponse {
	return CoinItemResponse{
		IdCoin:           FlexInt(c.Id),
		Country:          FlexString(c.Country),
		CollectionSeries: FlexString(c.Collection),
		Name:             FlexString(c.Title),
		Value:            FlexString(c.Value),
		YearCentury:      FlexString(c.YearCentury),
		Count:            FlexInt(c.Count),
		CoinCondition:    FlexString(c.Condition),
	}
}

func (r PaginatedCoinResponse) ToCoinPage() *CoinPage {
	coins := make([]Coin, len(r.Data))
	for i, item := range r.Data {
		coins[i] = item.ToCoin()
	}
	return &CoinPage{
		Coins:    coins,
		Page:     r.Page.Int(),
		PageSize: r.PageSize.Int(),
	}
}

func NewPaginatedCoinResponse(p *CoinPage) PaginatedCoinResponse {
	items := make([]CoinItemResponse, len(p.Coins))
	for i, c := range p.Coins {
		items[i] = NewCoinItemResponse(c)
	}
	return PaginatedCoinResponse{
		Data:     items,
		Page:     FlexInt(p.Page),
		PageSize: FlexInt(p.PageSize),
	}
}

func (r CoinsCountResponse) ToCounters() *Counters {
	return &Counters{
		TotalCount:  r.TotalCount.Int(),
		UniqueCount: r.UnicCount.Int(),
		TotalPrice:  r.TotalPrice.OrZero(),
		MarketPrice: r.NumistaPrice.OrZero(),
	}
}

func NewCoinsCountResponse(c *Counters) CoinsCountResponse {
	return CoinsCountResponse{
		TotalCount:   FlexInt(c.TotalCount),
		UnicCount:    FlexInt(c.UniqueCount),
		TotalPrice:   NewFlexDecimal(c.TotalPrice),
		NumistaPrice: NewFlexDecimal(c.MarketPrice),
	}
}

func (r CountryResponse) ToCountry() Country {
	return Country{Id: r.IdCountry.Int(), Name: r.Country.String()}
}

func NewCountryResponse(c Country) CountryResponse {
	return CountryResponse{IdCountry: FlexInt(c.Id), Country: FlexString(c.Name)}
}

func (r CollectionResponse) ToCollection() Collection {
	return Collection{
		Id:                r.IdCollectionSeries.Int(),
		Name:              r.CollectionSeries.String(),
		TotalInCollection: flexIntPtr(r.TotalCoinsInCollection),
		FullCollection:    flexIntPtr(r.FullCollection),
		CountryId:         flexIntPtr(r.IdCountry),
	}
}

func NewCollectionResponse(c Collection) CollectionResponse {
	return CollectionResponse{
		IdCollectionSeries:     FlexInt(c.Id),
		CollectionSeries:       FlexString(c.Name),
		TotalCoinsInCollection: toFlexIntPtr(c.TotalInCollection),
		FullCollection:         toFlexIntPtr(c.FullCollection),
		IdCountry:              toFlexIntPtr(c.CountryId),
	}
}

// ToCoinDetail maps the payload to a CoinDetail. The envelope count is used
// when the record itself carries none. Returns nil when the payload has no record.
func (r CoinDetailResponse) ToCoinDetail() *CoinDetail {
	if r.Data == nil {
		return nil
	}
	d := r.Data
	detail := &CoinDetail{
		Id:            d.IdCoin.Int(),
		Country:       d.Country.String(),
		Collection:    d.CollectionSeries.String(),
		Name:          d.Name.String(),
		Type:          d.Type.String(),
		Value:         d.Value.String(),
		Mint:          d.Mint.String(),
		YearCentury:   d.YearCentury.String(),
		Material:      d.Material.String(),
		Weight:        d.Weight.Null(),
		Diameter:      d.Diameter.Null(),
		Condition:     d.CoinCondition.String(),
		PurchasePrice: d.PurchasePrice.Null(),
		AddExpenses:   d.AddExpenses.Null(),
		PurchaseDate:  d.PurchaseDate.String(),
		Count:         d.Count.Int(),
		Description:   d.Description.String(),
	}
	if d.Mintage != nil {
		m := int64(*d.Mintage)
		detail.Mintage = &m
	}
	if detail.Count == 0 {
		detail.Count = r.Count.Int()
	}
	return detail
}

func NewCoinDetailResponse(d *CoinDetail) CoinDetailResponse {
	item := &CoinDetailItemResponse{
		IdCoin:           FlexInt(d.Id),
		Country:          FlexString(d.Country),
		CollectionSeries: FlexString(d.Collection),
		Name:             FlexString(d.Name),
		Type:             FlexString(d.Type),
		Value:            FlexString(d.Value),
		Mint:             FlexString(d.Mint),
		YearCentury:      FlexString(d.YearCentury),
		Material:         FlexString(d.Material),
		Weight:           FlexDecimal(d.Weight),
		Diameter:         FlexDecimal(d.Diameter),
		CoinCondition:    FlexString(d.Condition),
		PurchasePrice:    FlexDecimal(d.PurchasePrice),
		AddExpenses:      FlexDecimal(d.AddExpenses),
		PurchaseDate:     FlexString(d.PurchaseDate),
		Count:            FlexInt(d.Count),
		Description:      FlexString(d.Description),
	}
	if d.Mintage != nil {
		m := FlexInt(*d.Mintage)
		item.Mintage = &m
	}
	return CoinDetailResponse{Data: item, Count: FlexInt(d.Count)}
}

func (r ImagesResponse) ToCoinImages() *CoinImages {
	return &CoinImages{CoinId: r.CoinId.Int(), Images: r.Images}
}

func NewImagesResponse(ci *CoinImages) ImagesResponse {
	images := ci.Images
	if images == nil {
		images = []string{}
	}
	return ImagesResponse{CoinId: FlexInt(ci.CoinId), Images: images}
}
