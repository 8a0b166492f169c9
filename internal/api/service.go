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

package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"coin-browser-go/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// CatalogService serves a CoinGateway over the coin API wire contract
type CatalogService struct {
	gateway store.CoinGateway
	router  chi.Router
}

func NewCatalogService(gateway store.CoinGateway) *CatalogService {
	s := &CatalogService{
		gateway: gateway,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// Handler returns the http.Handler for this service.
func (s *CatalogService) Handler() http.Handler {
	return s.router
}

func (s *CatalogService) routes() {
	r := s.router
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/health", s.handleHealth)

	r.Get("/get_coins", s.handleListCoins)
	r.Get("/get_coins_count", s.handleCountCoins)
	r.Get("/get_countries", s.handleListCountries)
	r.Get("/get_collections_series", s.handleListCollections)
	r.Get("/get_coin_info/{id}", s.handleGetCoinDetail)
	r.Get("/coins/{id}/images", s.handleGetCoinImages)
}

func (s *CatalogService) HealthCheck(ctx context.Context) error {
	if _, err := s.gateway.ListCountries(ctx); err != nil {
		return fmt.Errorf("catalog health check failed: %w", err)
	}
	return nil
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		zap.L().Debug("Catalog request",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("query", r.URL.RawQuery),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("elapsed", time.Since(start)))
	})
}
