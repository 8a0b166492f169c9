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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"coin-browser-go/internal/models"
	"coin-browser-go/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
)

// Compile-time check: *Service must satisfy store.CoinGateway.
var _ store.CoinGateway = (*Service)(nil)

const maxBodySize = 32 << 20

type Service struct {
	client  http.Client
	baseURL *url.URL
}

func NewService(cfg models.GatewayConfig) (*Service, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("gateway base url cannot be empty")
	}
	baseURL, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid gateway base url %q: %w", cfg.BaseURL, err)
	}
	if baseURL.Scheme != "http" && baseURL.Scheme != "https" {
		return nil, fmt.Errorf("gateway base url must be http or https, got %q", cfg.BaseURL)
	}

	httpClient, err := createCustomHttpClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to create custom http client: %w", err)
	}

	zap.L().Debug("Coin gateway client created", zap.String("base_url", baseURL.String()))
	return &Service{client: httpClient, baseURL: baseURL}, nil
}

func createCustomHttpClient(cfg models.GatewayConfig) (http.Client, error) {
	connectTimeout := orDefault(cfg.ConnectTimeout, 3*time.Second)
	socketTimeout := orDefault(cfg.SocketTimeout, 3*time.Second)

	tr := &http.Transport{
		ResponseHeaderTimeout: socketTimeout,
		Proxy:                 http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			KeepAlive: 30 * time.Second,
			Timeout:   connectTimeout,
		}).DialContext,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   connectTimeout,
		MaxIdleConnsPerHost:   10,
		ExpectContinueTimeout: 1 * time.Second,
	}

	if err := http2.ConfigureTransport(tr); err != nil {
		return http.Client{}, err
	}

	return http.Client{
		Transport: tr,
		Timeout:   orDefault(cfg.RequestTimeout, 3*time.Second),
	}, nil
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

// Close releases idle connections.
func (s *Service) Close() {
	s.client.CloseIdleConnections()
}

// getJSON issues a GET against the gateway and decodes the JSON body into out.
// 404 maps to store.ErrNotFound, transport failures and 5xx to store.ErrUnavailable,
// undecodable bodies to store.ErrMalformedResponse.
func (s *Service) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := *s.baseURL
	u.Path = u.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("unable to build request for %s: %w", path, err)
	}
	requestId := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestId)

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: GET %s: %v", store.ErrUnavailable, path, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			zap.L().Warn("Failed to close response body", zap.Error(err))
		}
	}()

	zap.L().Debug("Coin gateway response",
		zap.String("request_id", requestId),
		zap.String("path", path),
		zap.String("query", u.RawQuery),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: GET %s", store.ErrNotFound, path)
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: GET %s: status %d", store.ErrUnavailable, path, resp.StatusCode)
	case resp.StatusCode >= 300:
		return fmt.Errorf("%w: GET %s: unexpected status %d", store.ErrMalformedResponse, path, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", store.ErrUnavailable, path, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", store.ErrMalformedResponse, path, err)
	}
	return nil
}

func setOptionalInt(q url.Values, key string, v *int) {
	if v != nil {
		q.Set(key, strconv.Itoa(*v))
	}
}

func setOptionalString(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}
