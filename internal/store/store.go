package store

import (
	"context"
	"errors"

	"coin-browser-go/internal/models"
)

// Sentinel errors shared across all gateway implementations.
var (
	ErrNotFound          = errors.New("not found")
	ErrUnavailable       = errors.New("gateway unavailable")
	ErrMalformedResponse = errors.New("malformed gateway response")
)

// ListCoinsParams contains the parameters for fetching one page of coins.
// Nil filter ids mean no filter on that dimension.
type ListCoinsParams struct {
	CountryId    *int
	CollectionId *int
	Page         int // 1-based
	PageSize     int
	SearchText   string // empty = no search filter
}

// CountParams contains the filter set for aggregate counters.
type CountParams struct {
	CountryId    *int
	CollectionId *int
	SearchText   string
}

// NewListCoinsParams builds page parameters from a filter, dropping sentinel ids.
func NewListCoinsParams(f models.Filter, page, pageSize int) ListCoinsParams {
	return ListCoinsParams{
		CountryId:    f.CountryId(),
		CollectionId: f.CollectionId(),
		Page:         page,
		PageSize:     pageSize,
		SearchText:   models.NormalizeSearchText(f.SearchText),
	}
}

// NewCountParams builds counter parameters from a filter, dropping sentinel ids.
func NewCountParams(f models.Filter) CountParams {
	return CountParams{
		CountryId:    f.CountryId(),
		CollectionId: f.CollectionId(),
		SearchText:   models.NormalizeSearchText(f.SearchText),
	}
}

// CoinGateway defines the contract that every coin data backend (HTTP API, SQLite, ...) must satisfy.
type CoinGateway interface {
	// --- Coins ---
	ListCoins(ctx context.Context, params ListCoinsParams) (*models.CoinPage, error)
	CountCoins(ctx context.Context, params CountParams) (*models.Counters, error)
	GetCoinDetail(ctx context.Context, coinId int) (*models.CoinDetail, error)
	GetCoinImages(ctx context.Context, coinId int) (*models.CoinImages, error)

	// --- Reference lists ---
	ListCountries(ctx context.Context) ([]models.Country, error)
	ListCollections(ctx context.Context) ([]models.Collection, error)

	// --- Lifecycle ---
	Close()
}
