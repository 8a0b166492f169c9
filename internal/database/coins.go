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

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"coin-browser-go/internal/models"
	"coin-browser-go/internal/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// UpsertCoinParams contains a full coin record plus its catalog links.
type UpsertCoinParams struct {
	Detail       models.CoinDetail
	CountryId    *int
	CollectionId *int
	NumistaPrice decimal.NullDecimal // market valuation per piece
}

func (s *Service) ListCoins(ctx context.Context, params store.ListCoinsParams) (*models.CoinPage, error) {
	if params.Page < 1 {
		return nil, fmt.Errorf("page must be at least 1, got %d", params.Page)
	}
	if params.PageSize <= 0 {
		return nil, fmt.Errorf("page size must be positive, got %d", params.PageSize)
	}

	where, args := filterClause(params.CountryId, params.CollectionId, params.SearchText)
	args = append(args, params.PageSize, (params.Page-1)*params.PageSize)

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(queryListCoins, where), args...)
	if err != nil {
		zap.L().Error("Failed to query coins", zap.Error(err))
		return nil, fmt.Errorf("unable to query coins: %w", err)
	}
	defer closeRows(rows)

	coins := make([]models.Coin, 0, params.PageSize)
	for rows.Next() {
		c := models.Coin{Images: []models.Image{}}
		if err := rows.Scan(&c.Id, &c.Country, &c.Collection, &c.YearCentury, &c.Title, &c.Value, &c.Count, &c.Condition); err != nil {
			zap.L().Error("Failed to scan coin row", zap.Error(err))
			return nil, fmt.Errorf("unable to scan coin row: %w", err)
		}
		coins = append(coins, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating coin rows: %w", err)
	}

	zap.L().Debug("Retrieved coins page",
		zap.Int("page", params.Page),
		zap.Int("page_size", params.PageSize),
		zap.Int("count", len(coins)))

	return &models.CoinPage{Coins: coins, Page: params.Page, PageSize: params.PageSize}, nil
}

// CountCoins aggregates the filtered set. Total price is purchase price times
// count plus additional expenses; market price is the valuation times count.
func (s *Service) CountCoins(ctx context.Context, params store.CountParams) (*models.Counters, error) {
	where, args := filterClause(params.CountryId, params.CollectionId, params.SearchText)

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(queryCountCoins, where), args...)
	if err != nil {
		zap.L().Error("Failed to query coin counters", zap.Error(err))
		return nil, fmt.Errorf("unable to query coin counters: %w", err)
	}
	defer closeRows(rows)

	counters := &models.Counters{TotalPrice: decimal.Zero, MarketPrice: decimal.Zero}
	for rows.Next() {
		var count int
		var purchase, expenses, numista decimal.NullDecimal
		if err := rows.Scan(&count, &purchase, &expenses, &numista); err != nil {
			return nil, fmt.Errorf("unable to scan counter row: %w", err)
		}

		qty := decimal.NewFromInt(int64(count))
		counters.TotalCount += count
		counters.UniqueCount++
		if purchase.Valid {
			counters.TotalPrice = counters.TotalPrice.Add(purchase.Decimal.Mul(qty))
		}
		if expenses.Valid {
			counters.TotalPrice = counters.TotalPrice.Add(expenses.Decimal)
		}
		if numista.Valid {
			counters.MarketPrice = counters.MarketPrice.Add(numista.Decimal.Mul(qty))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating counter rows: %w", err)
	}

	return counters, nil
}

func (s *Service) GetCoinDetail(ctx context.Context, coinId int) (*models.CoinDetail, error) {
	zap.L().Debug("Querying coin detail", zap.Int("coin_id", coinId))

	var d models.CoinDetail
	var mintage sql.NullInt64
	err := s.db.QueryRowContext(ctx, queryGetCoinDetail, coinId).Scan(
		&d.Id, &d.Country, &d.Collection, &d.Name, &d.Type, &d.Value, &d.Mint,
		&d.YearCentury, &d.Material, &mintage, &d.Weight, &d.Diameter,
		&d.Condition, &d.PurchasePrice, &d.AddExpenses, &d.PurchaseDate, &d.Count, &d.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("coin %d: %w", coinId, store.ErrNotFound)
		}
		zap.L().Error("Failed to query coin detail", zap.Int("coin_id", coinId), zap.Error(err))
		return nil, fmt.Errorf("unable to query coin detail: %w", err)
	}
	if mintage.Valid {
		d.Mintage = &mintage.Int64
	}

	return &d, nil
}

func (s *Service) UpsertCoin(ctx context.Context, params UpsertCoinParams) error {
	d := params.Detail
	if d.Id <= 0 {
		return fmt.Errorf("coin id must be positive, got %d", d.Id)
	}
	if d.Count < 0 {
		return fmt.Errorf("coin %d: count cannot be negative", d.Id)
	}

	var mintage sql.NullInt64
	if d.Mintage != nil {
		mintage = sql.NullInt64{Int64: *d.Mintage, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, queryUpsertCoin,
		d.Id, nullableInt(params.CountryId), nullableInt(params.CollectionId),
		nullableString(d.Name), nullableString(d.Type), nullableString(d.Value), nullableString(d.Mint),
		nullableString(d.YearCentury), nullableString(d.Material), mintage, d.Weight, d.Diameter,
		nullableString(d.Condition), d.PurchasePrice, d.AddExpenses, params.NumistaPrice,
		nullableString(d.PurchaseDate), d.Count, nullableString(d.Description))
	if err != nil {
		zap.L().Error("Failed to upsert coin", zap.Int("coin_id", d.Id), zap.Error(err))
		return fmt.Errorf("unable to upsert coin %d: %w", d.Id, err)
	}

	zap.L().Debug("Coin stored", zap.Int("coin_id", d.Id), zap.String("name", d.Name))
	return nil
}

func (s *Service) coinExists(ctx context.Context, coinId int) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, queryCoinExists, coinId).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("unable to check coin %d: %w", coinId, err)
	}
	return true, nil
}

func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
