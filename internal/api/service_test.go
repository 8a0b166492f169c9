package api

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"coin-browser-go/internal/database"
	"coin-browser-go/internal/models"
	"coin-browser-go/internal/remote"
	"coin-browser-go/internal/store"

	"github.com/shopspring/decimal"
)

func newTestCatalog(t *testing.T) *database.Service {
	t.Helper()
	ctx := context.Background()

	catalog, err := database.NewService(ctx, models.DatabaseConfig{
		Path:         filepath.Join(t.TempDir(), "coins.db"),
		MaxOpenConns: 4,
		MaxIdleConns: 1,
		PingTimeout:  time.Second,
	})
	if err != nil {
		t.Fatalf("Failed to open catalog: %v", err)
	}
	t.Cleanup(catalog.Close)

	if err := catalog.UpsertCountry(ctx, models.Country{Id: 1, Name: "Japan"}); err != nil {
		t.Fatalf("UpsertCountry failed: %v", err)
	}
	countryId := 1
	if err := catalog.UpsertCollection(ctx, models.Collection{Id: 5, Name: "Showa", CountryId: &countryId}); err != nil {
		t.Fatalf("UpsertCollection failed: %v", err)
	}
	for i := 1; i <= 3; i++ {
		err := catalog.UpsertCoin(ctx, database.UpsertCoinParams{
			Detail: models.CoinDetail{
				Id:            i,
				Name:          fmt.Sprintf("%d Yen", i*100),
				Count:         1,
				PurchasePrice: decimal.NewNullDecimal(decimal.NewFromInt(int64(i))),
			},
			CountryId: &countryId,
		})
		if err != nil {
			t.Fatalf("UpsertCoin failed: %v", err)
		}
	}
	if err := catalog.AddCoinImage(ctx, 1, []byte("obverse")); err != nil {
		t.Fatalf("AddCoinImage failed: %v", err)
	}
	return catalog
}

// newRemoteOverCatalog returns an HTTP gateway client talking to a catalog server.
func newRemoteOverCatalog(t *testing.T, gw store.CoinGateway) *remote.Service {
	t.Helper()
	ts := httptest.NewServer(NewCatalogService(gw).Handler())
	t.Cleanup(ts.Close)

	client, err := remote.NewService(models.GatewayConfig{BaseURL: ts.URL, RequestTimeout: 2 * time.Second})
	if err != nil {
		t.Fatalf("remote.NewService failed: %v", err)
	}
	t.Cleanup(client.Close)
	return client
}

func TestCatalogRoundTrip(t *testing.T) {
	client := newRemoteOverCatalog(t, newTestCatalog(t))
	ctx := context.Background()

	page, err := client.ListCoins(ctx, store.ListCoinsParams{Page: 1, PageSize: 2})
	if err != nil {
		t.Fatalf("ListCoins failed: %v", err)
	}
	if len(page.Coins) != 2 || page.Coins[0].Title != "100 Yen" || page.Coins[0].Country != "Japan" {
		t.Errorf("Unexpected page: %+v", page.Coins)
	}

	counters, err := client.CountCoins(ctx, store.CountParams{})
	if err != nil {
		t.Fatalf("CountCoins failed: %v", err)
	}
	if counters.UniqueCount != 3 || !counters.TotalPrice.Equal(decimal.NewFromInt(6)) {
		t.Errorf("Unexpected counters: %+v", counters)
	}

	countries, err := client.ListCountries(ctx)
	if err != nil || len(countries) != 1 || countries[0].Name != "Japan" {
		t.Errorf("Unexpected countries: %+v (%v)", countries, err)
	}

	collections, err := client.ListCollections(ctx)
	if err != nil || len(collections) != 1 || collections[0].CountryId == nil {
		t.Errorf("Unexpected collections: %+v (%v)", collections, err)
	}

	detail, err := client.GetCoinDetail(ctx, 2)
	if err != nil {
		t.Fatalf("GetCoinDetail failed: %v", err)
	}
	if detail.Name != "200 Yen" || !detail.PurchasePrice.Valid {
		t.Errorf("Unexpected detail: %+v", detail)
	}

	images, err := client.GetCoinImages(ctx, 1)
	if err != nil {
		t.Fatalf("GetCoinImages failed: %v", err)
	}
	if len(images.Images) != 1 || images.Images[0] != base64.StdEncoding.EncodeToString([]byte("obverse")) {
		t.Errorf("Unexpected images: %+v", images)
	}
}

func TestCatalogNotFound(t *testing.T) {
	client := newRemoteOverCatalog(t, newTestCatalog(t))

	if _, err := client.GetCoinDetail(context.Background(), 404); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for detail, got %v", err)
	}
	if _, err := client.GetCoinImages(context.Background(), 404); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for images, got %v", err)
	}
}

func TestSentinelQueryValueMeansNoFilter(t *testing.T) {
	ts := httptest.NewServer(NewCatalogService(newTestCatalog(t)).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/get_coins?country_id=-1&page=1&page_size=10")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}
}

func TestBadRequests(t *testing.T) {
	ts := httptest.NewServer(NewCatalogService(newTestCatalog(t)).Handler())
	defer ts.Close()

	paths := []string{
		"/get_coins?page=0",
		"/get_coins?page_size=abc",
		"/get_coins?country_id=x",
		"/get_coins_count?collection_id=1.5",
		"/get_coin_info/abc",
		"/coins/abc/images",
	}
	for _, path := range paths {
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("GET %s failed: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("GET %s: expected 400, got %d", path, resp.StatusCode)
		}
	}
}

func TestHealth(t *testing.T) {
	ts := httptest.NewServer(NewCatalogService(newTestCatalog(t)).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}
}
