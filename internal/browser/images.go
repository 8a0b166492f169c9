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
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"coin-browser-go/internal/models"

	"go.uber.org/zap"
)

var base64Encodings = []*base64.Encoding{
	base64.StdEncoding,
	base64.RawStdEncoding,
	base64.URLEncoding,
	base64.RawURLEncoding,
}

// prefetchImagesLocked starts an image fetch for a coin unless one is already
// outstanding for the same id.
func (b *Browser) prefetchImagesLocked(coinId int) {
	if b.closed {
		return
	}
	if _, ok := b.loadingImages[coinId]; ok {
		return
	}
	b.loadingImages[coinId] = struct{}{}

	b.spawnLocked(func(base context.Context) {
		ctx, cancel := b.operationContext(base)
		defer cancel()
		b.fetchImages(ctx, coinId)
	})
}

func (b *Browser) fetchImages(ctx context.Context, coinId int) {
	resp, err := b.gateway.GetCoinImages(ctx, coinId)

	var images []models.Image
	if err == nil {
		images = DecodeImages(resp.Images)
	}

	b.mu.Lock()
	delete(b.loadingImages, coinId)
	if err != nil {
		b.mu.Unlock()
		zap.L().Warn("Failed to load coin images", zap.Int("coin_id", coinId), zap.Error(err))
		return
	}
	// The coin may have left the list through a reset; then there is nothing to update.
	updated := false
	for i := range b.coins {
		if b.coins[i].Id == coinId {
			b.coins[i] = b.coins[i].WithImages(images)
			updated = true
		}
	}
	b.mu.Unlock()

	if updated {
		b.notify()
	}
}

// DecodeImages turns base64 image payloads into raw bytes. A payload that
// does not decode is skipped without affecting the others.
func DecodeImages(payloads []string) []models.Image {
	images := make([]models.Image, 0, len(payloads))
	for i, payload := range payloads {
		data, ok := decodeBase64(payload)
		if !ok {
			zap.L().Debug("Skipping undecodable image", zap.Int("index", i))
			continue
		}
		images = append(images, models.Image{
			Data:        data,
			ContentType: http.DetectContentType(data),
		})
	}
	return images
}

func decodeBase64(payload string) ([]byte, bool) {
	s := payload
	if strings.HasPrefix(s, "data:") {
		idx := strings.Index(s, ",")
		if idx < 0 {
			return nil, false
		}
		s = s[idx+1:]
	}
	s = strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', ' ', '\t':
			return -1
		}
		return r
	}, s)
	if s == "" {
		return nil, false
	}

	for _, enc := range base64Encodings {
		if data, err := enc.DecodeString(s); err == nil && len(data) > 0 {
			return data, true
		}
	}
	return nil, false
}
