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
	"encoding/base64"
	"errors"
	"fmt"

	"coin-browser-go/internal/models"
	"coin-browser-go/internal/store"

	"go.uber.org/zap"
)

// GetCoinImages returns the coin's photos base64 encoded, in insertion order.
func (s *Service) GetCoinImages(ctx context.Context, coinId int) (*models.CoinImages, error) {
	exists, err := s.coinExists(ctx, coinId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("coin %d: %w", coinId, store.ErrNotFound)
	}

	rows, err := s.db.QueryContext(ctx, queryGetCoinImages, coinId)
	if err != nil {
		zap.L().Error("Failed to query coin images", zap.Int("coin_id", coinId), zap.Error(err))
		return nil, fmt.Errorf("unable to query coin images: %w", err)
	}
	defer closeRows(rows)

	images := &models.CoinImages{CoinId: coinId, Images: []string{}}
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("unable to scan image row: %w", err)
		}
		images.Images = append(images.Images, base64.StdEncoding.EncodeToString(data))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating image rows: %w", err)
	}

	return images, nil
}

// AddCoinImage appends a raw photo to the coin's image list.
func (s *Service) AddCoinImage(ctx context.Context, coinId int, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("coin %d: image data is empty", coinId)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("unable to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			zap.L().Warn("Failed to roll back image insert", zap.Error(err))
		}
	}()

	var position int
	if err := tx.QueryRowContext(ctx, queryNextImagePosition, coinId).Scan(&position); err != nil {
		return fmt.Errorf("unable to compute image position: %w", err)
	}
	if _, err := tx.ExecContext(ctx, queryInsertCoinImage, coinId, position, data); err != nil {
		return fmt.Errorf("unable to insert image for coin %d: %w", coinId, err)
	}

	return tx.Commit()
}

// ClearCoinImages removes every photo of a coin.
func (s *Service) ClearCoinImages(ctx context.Context, coinId int) error {
	if _, err := s.db.ExecContext(ctx, queryDeleteCoinImages, coinId); err != nil {
		return fmt.Errorf("unable to delete images for coin %d: %w", coinId, err)
	}
	return nil
}
