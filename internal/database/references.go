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
	"fmt"

	"coin-browser-go/internal/models"

	"go.uber.org/zap"
)

func (s *Service) ListCountries(ctx context.Context) ([]models.Country, error) {
	rows, err := s.db.QueryContext(ctx, queryGetCountries)
	if err != nil {
		zap.L().Error("Failed to query countries", zap.Error(err))
		return nil, fmt.Errorf("unable to query countries: %w", err)
	}
	defer closeRows(rows)

	countries := []models.Country{}
	for rows.Next() {
		var c models.Country
		if err := rows.Scan(&c.Id, &c.Name); err != nil {
			return nil, fmt.Errorf("unable to scan country row: %w", err)
		}
		countries = append(countries, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating country rows: %w", err)
	}

	return countries, nil
}

func (s *Service) ListCollections(ctx context.Context) ([]models.Collection, error) {
	rows, err := s.db.QueryContext(ctx, queryGetCollections)
	if err != nil {
		zap.L().Error("Failed to query collections", zap.Error(err))
		return nil, fmt.Errorf("unable to query collections: %w", err)
	}
	defer closeRows(rows)

	collections := []models.Collection{}
	for rows.Next() {
		var c models.Collection
		var total, full, country sql.NullInt64
		if err := rows.Scan(&c.Id, &c.Name, &total, &full, &country); err != nil {
			return nil, fmt.Errorf("unable to scan collection row: %w", err)
		}
		c.TotalInCollection = intPtr(total)
		c.FullCollection = intPtr(full)
		c.CountryId = intPtr(country)
		collections = append(collections, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating collection rows: %w", err)
	}

	return collections, nil
}

func (s *Service) UpsertCountry(ctx context.Context, country models.Country) error {
	if country.Id <= 0 || country.Name == "" {
		return fmt.Errorf("country requires a positive id and a name, got %+v", country)
	}
	if _, err := s.db.ExecContext(ctx, queryUpsertCountry, country.Id, country.Name); err != nil {
		return fmt.Errorf("unable to upsert country %d: %w", country.Id, err)
	}
	return nil
}

func (s *Service) UpsertCollection(ctx context.Context, collection models.Collection) error {
	if collection.Id <= 0 || collection.Name == "" {
		return fmt.Errorf("collection requires a positive id and a name, got id=%d", collection.Id)
	}
	_, err := s.db.ExecContext(ctx, queryUpsertCollection,
		collection.Id, collection.Name,
		nullableInt(collection.TotalInCollection),
		nullableInt(collection.FullCollection),
		nullableInt(collection.CountryId))
	if err != nil {
		return fmt.Errorf("unable to upsert collection %d: %w", collection.Id, err)
	}
	return nil
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
