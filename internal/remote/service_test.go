package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coin-browser-go/internal/models"
	"coin-browser-go/internal/store"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	svc, err := NewService(models.GatewayConfig{
		BaseURL:        ts.URL,
		RequestTimeout: 500 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	t.Cleanup(svc.Close)
	return svc
}

func TestNewServiceValidation(t *testing.T) {
	tests := []struct {
		baseURL string
		wantErr bool
	}{
		{"", true},
		{"ftp://example.com", true},
		{"http://localhost:5000", false},
		{"https://coins.example.com/", false},
	}
	for _, tt := range tests {
		_, err := NewService(models.GatewayConfig{BaseURL: tt.baseURL})
		if (err != nil) != tt.wantErr {
			t.Errorf("NewService(%q) error = %v, wantErr %v", tt.baseURL, err, tt.wantErr)
		}
	}
}

func TestListCoinsSendsOnlyRealFilters(t *testing.T) {
	var gotQuery map[string][]string
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/get_coins" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Error("Expected X-Request-Id header")
		}
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"data":[{"id_coin":1,"name":"Penny","count":1}],"page":2,"page_size":10}`))
	})

	collection := 7
	page, err := svc.ListCoins(context.Background(), store.ListCoinsParams{
		CollectionId: &collection,
		Page:         2,
		PageSize:     10,
	})
	if err != nil {
		t.Fatalf("ListCoins failed: %v", err)
	}

	if len(page.Coins) != 1 || page.Coins[0].Title != "Penny" {
		t.Errorf("Unexpected page: %+v", page)
	}
	if _, ok := gotQuery["country_id"]; ok {
		t.Error("country_id must not be sent without a country filter")
	}
	if _, ok := gotQuery["search_text"]; ok {
		t.Error("search_text must not be sent without a search filter")
	}
	if gotQuery["collection_id"][0] != "7" || gotQuery["page"][0] != "2" || gotQuery["page_size"][0] != "10" {
		t.Errorf("Unexpected query: %v", gotQuery)
	}
}

func TestCountCoins(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("search_text") != "euro" {
			t.Errorf("Expected search_text=euro, got %q", r.URL.Query().Get("search_text"))
		}
		w.Write([]byte(`{"total_count":5,"unic_count":3,"total_price":10.5,"numista_price":"22"}`))
	})

	counters, err := svc.CountCoins(context.Background(), store.CountParams{SearchText: "euro"})
	if err != nil {
		t.Fatalf("CountCoins failed: %v", err)
	}
	if counters.TotalCount != 5 || counters.UniqueCount != 3 {
		t.Errorf("Unexpected counters: %+v", counters)
	}
	if counters.MarketPrice.String() != "22" {
		t.Errorf("Expected market price 22, got %s", counters.MarketPrice)
	}
}

func TestReferenceLists(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/get_countries":
			w.Write([]byte(`{"data":[{"id_country":1,"country":"France"},{"id_country":2,"country":"Italy"}]}`))
		case "/get_collections_series":
			w.Write([]byte(`{"data":[{"id_collection_series":4,"collection_series":"Euro","id_country":null},{"id_collection_series":5,"collection_series":"Lira","id_country":2,"full_collection":1}]}`))
		default:
			http.NotFound(w, r)
		}
	})

	countries, err := svc.ListCountries(context.Background())
	if err != nil {
		t.Fatalf("ListCountries failed: %v", err)
	}
	if len(countries) != 2 || countries[1].Name != "Italy" {
		t.Errorf("Unexpected countries: %+v", countries)
	}

	collections, err := svc.ListCollections(context.Background())
	if err != nil {
		t.Fatalf("ListCollections failed: %v", err)
	}
	if len(collections) != 2 {
		t.Fatalf("Expected 2 collections, got %d", len(collections))
	}
	if collections[0].CountryId != nil {
		t.Error("Expected first collection without country")
	}
	if collections[1].CountryId == nil || *collections[1].CountryId != 2 {
		t.Errorf("Expected second collection in country 2, got %v", collections[1].CountryId)
	}
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"not found", http.StatusNotFound, `{"error":"no coin"}`, store.ErrNotFound},
		{"server error", http.StatusInternalServerError, ``, store.ErrUnavailable},
		{"not json", http.StatusOK, `<html>oops</html>`, store.ErrMalformedResponse},
		{"empty detail", http.StatusOK, `{"count":0}`, store.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := svc.GetCoinDetail(context.Background(), 42)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestTimeoutIsUnavailable(t *testing.T) {
	release := make(chan struct{})
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	_, err := svc.GetCoinImages(context.Background(), 1)
	if !errors.Is(err, store.ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable on timeout, got %v", err)
	}
}

func TestGetCoinImagesFillsMissingCoinId(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/coins/9/images" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"images":["aGVsbG8="]}`))
	})

	images, err := svc.GetCoinImages(context.Background(), 9)
	if err != nil {
		t.Fatalf("GetCoinImages failed: %v", err)
	}
	if images.CoinId != 9 || len(images.Images) != 1 {
		t.Errorf("Unexpected images: %+v", images)
	}
}
