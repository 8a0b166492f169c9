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
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"coin-browser-go/internal/models"
	"coin-browser-go/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const defaultPageSize = 10

type errorResponse struct {
	Error string `json:"error"`
}

func (s *CatalogService) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.HealthCheck(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *CatalogService) handleListCoins(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	countryId, err := optionalInt(q.Get("country_id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid country_id: %v", err))
		return
	}
	collectionId, err := optionalInt(q.Get("collection_id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid collection_id: %v", err))
		return
	}
	page, err := intOrDefault(q.Get("page"), 1)
	if err != nil || page < 1 {
		respondError(w, http.StatusBadRequest, "page must be a positive integer")
		return
	}
	pageSize, err := intOrDefault(q.Get("page_size"), defaultPageSize)
	if err != nil || pageSize < 1 {
		respondError(w, http.StatusBadRequest, "page_size must be a positive integer")
		return
	}

	result, err := s.gateway.ListCoins(r.Context(), store.ListCoinsParams{
		CountryId:    countryId,
		CollectionId: collectionId,
		Page:         page,
		PageSize:     pageSize,
		SearchText:   q.Get("search_text"),
	})
	if err != nil {
		respondGatewayError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, models.NewPaginatedCoinResponse(result))
}

func (s *CatalogService) handleCountCoins(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	countryId, err := optionalInt(q.Get("country_id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid country_id: %v", err))
		return
	}
	collectionId, err := optionalInt(q.Get("collection_id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid collection_id: %v", err))
		return
	}

	counters, err := s.gateway.CountCoins(r.Context(), store.CountParams{
		CountryId:    countryId,
		CollectionId: collectionId,
		SearchText:   q.Get("search_text"),
	})
	if err != nil {
		respondGatewayError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, models.NewCoinsCountResponse(counters))
}

func (s *CatalogService) handleListCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := s.gateway.ListCountries(r.Context())
	if err != nil {
		respondGatewayError(w, err)
		return
	}

	data := make([]models.CountryResponse, len(countries))
	for i, c := range countries {
		data[i] = models.NewCountryResponse(c)
	}
	respondJSON(w, http.StatusOK, models.DataResponse[[]models.CountryResponse]{Data: data})
}

func (s *CatalogService) handleListCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := s.gateway.ListCollections(r.Context())
	if err != nil {
		respondGatewayError(w, err)
		return
	}

	data := make([]models.CollectionResponse, len(collections))
	for i, c := range collections {
		data[i] = models.NewCollectionResponse(c)
	}
	respondJSON(w, http.StatusOK, models.DataResponse[[]models.CollectionResponse]{Data: data})
}

func (s *CatalogService) handleGetCoinDetail(w http.ResponseWriter, r *http.Request) {
	coinId, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "coin id must be an integer")
		return
	}

	detail, err := s.gateway.GetCoinDetail(r.Context(), coinId)
	if err != nil {
		respondGatewayError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, models.NewCoinDetailResponse(detail))
}

func (s *CatalogService) handleGetCoinImages(w http.ResponseWriter, r *http.Request) {
	coinId, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "coin id must be an integer")
		return
	}

	images, err := s.gateway.GetCoinImages(r.Context(), coinId)
	if err != nil {
		respondGatewayError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, models.NewImagesResponse(images))
}

func optionalInt(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	if v == models.AllId {
		return nil, nil
	}
	return &v, nil
}

func intOrDefault(raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func respondGatewayError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrUnavailable):
		respondError(w, http.StatusBadGateway, err.Error())
	default:
		zap.L().Error("Catalog request failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zap.L().Warn("Failed to write response", zap.Error(err))
	}
}
