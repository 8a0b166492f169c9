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

	"coin-browser-go/internal/models"
)

func (s *Service) ListCountries(ctx context.Context) ([]models.Country, error) {
	var resp models.DataResponse[[]models.CountryResponse]
	if err := s.getJSON(ctx, "/get_countries", nil, &resp); err != nil {
		return nil, fmt.Errorf("unable to list countries: %w", err)
	}

	countries := make([]models.Country, len(resp.Data))
	for i, c := range resp.Data {
		countries[i] = c.ToCountry()
	}
	return countries, nil
}

func (s *Service) ListCollections(ctx context.Context) ([]models.Collection, error) {
	var resp models.DataResponse[[]models.CollectionResponse]
	if err := s.getJSON(ctx, "/get_collections_series", nil, &resp); err != nil {
		return nil, fmt.Errorf("unable to list collections: %w", err)
	}

	collections := make([]models.Collection, len(resp.Data))
	for i, c := range resp.Data {
		collections[i] = c.ToCollection()
	}
	return collections, nil
}
