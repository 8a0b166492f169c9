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

package remote

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"coin-browser-go/internal/models"
	"coin-browser-go/internal/store"

	"go.uber.org/zap"
)

func (s *Service) ListCoins(ctx context.Context, params store.ListCoinsParams) (*models.CoinPage, error) {
	q := url.Values{}
	setOptionalInt(q, "country_id", params.CountryId)
	setOptionalInt(q, "collection_id", params.CollectionId)
	q.Set("page", strconv.Itoa(params.Page))
	q.Set("page_size", strconv.Itoa(params.PageSize))
	setOptionalString(q, "search_text", params.SearchText)

	var resp models.PaginatedCoinResponse
	if err := s.getJSON(ctx, "/get_coins", q, &resp); err != nil {
		return nil, fmt.Errorf("unable to list coins: %w", err)
	}

	page := resp.ToCoinPage()
	zap.L().Debug("Coins page received",
		zap.Int("page", params.Page),
		zap.Int("page_size", params.PageSize),
		zap.Int("count", len(page.Coins)))
	return page, nil
}

func (s *Service) CountCoins(ctx context.Context, params store.CountParams) (*models.Counters, error) {
	q := url.Values{}
	setOptionalInt(q, "country_id", params.CountryId)
	setOptionalInt(q, "collection_id", params.CollectionId)
	setOptionalString(q, "search_text", params.SearchText)

	var resp models.CoinsCountResponse
	if err := s.getJSON(ctx, "/get_coins_count", q, &resp); err != nil {
		return nil, fmt.Errorf("unable to count coins: %w", err)
	}
	return resp.ToCounters(), nil
}

func (s *Service) GetCoinDetail(ctx context.Context, coinId int) (*models.CoinDetail, error) {
	var resp models.CoinDetailResponse
	if err := s.getJSON(ctx, fmt.Sprintf("/get_coin_info/%d", coinId), nil, &resp); err != nil {
		return nil, fmt.Errorf("unable to get coin %d: %w", coinId, err)
	}

	detail := resp.ToCoinDetail()
	if detail == nil {
		return nil, fmt.Errorf("unable to get coin %d: %w", coinId, store.ErrNotFound)
	}
	return detail, nil
}

func (s *Service) GetCoinImages(ctx context.Context, coinId int) (*models.CoinImages, error) {
	var resp models.ImagesResponse
	if err := s.getJSON(ctx, fmt.Sprintf("/coins/%d/images", coinId), nil, &resp); err != nil {
		return nil, fmt.Errorf("unable to get images for coin %d: %w", coinId, err)
	}

	images := resp.ToCoinImages()
	if images.CoinId == 0 {
		images.CoinId = coinId
	}
	return images, nil
}
