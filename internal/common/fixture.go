package common

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"coin-browser-go/internal/database"
	"coin-browser-go/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

type CountryFixture struct {
	Id   int    `yaml:"id"`
	Name string `yaml:"name"`
}

type CollectionFixture struct {
	Id                int    `yaml:"id"`
	Name              string `yaml:"name"`
	TotalInCollection *int   `yaml:"total_coins_in_collection"`
	FullCollection    *int   `yaml:"full_collection"`
	CountryId         *int   `yaml:"country_id"`
}

type CoinFixture struct {
	Id            int      `yaml:"id"`
	CountryId     *int     `yaml:"country_id"`
	CollectionId  *int     `yaml:"collection_id"`
	Name          string   `yaml:"name"`
	Type          string   `yaml:"type"`
	Value         string   `yaml:"value"`
	Mint          string   `yaml:"mint"`
	YearCentury   string   `yaml:"year_century"`
	Material      string   `yaml:"material"`
	Mintage       *int64   `yaml:"mintage"`
	Weight        string   `yaml:"weight"`
	Diameter      string   `yaml:"diameter"`
	Condition     string   `yaml:"condition"`
	PurchasePrice string   `yaml:"purchase_price"`
	AddExpenses   string   `yaml:"add_expenses"`
	NumistaPrice  string   `yaml:"numista_price"`
	PurchaseDate  string   `yaml:"purchase_date"`
	Count         int      `yaml:"count"`
	Description   string   `yaml:"description"`
	Images        []string `yaml:"images"`
}

type CatalogFixture struct {
	Countries   []CountryFixture    `yaml:"countries"`
	Collections []CollectionFixture `yaml:"collections"`
	Coins       []CoinFixture       `yaml:"coins"`

	// directory the fixture was read from; image paths resolve against it
	baseDir string
}

func LoadCatalogFixture(fixtureFile string) (*CatalogFixture, error) {
	var fixturePath string
	if filepath.IsAbs(fixtureFile) {
		fixturePath = fixtureFile
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		fixturePath = filepath.Join(wd, fixtureFile)
	}

	data, err := os.ReadFile(fixturePath)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", fixtureFile, err)
	}

	fixture, err := ParseCatalogFixture(data)
	if err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", fixtureFile, err)
	}
	fixture.baseDir = filepath.Dir(fixturePath)

	return fixture, nil
}

func ParseCatalogFixture(data []byte) (*CatalogFixture, error) {
	var fixture CatalogFixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, err
	}

	for i, c := range fixture.Countries {
		if c.Id <= 0 || c.Name == "" {
			return nil, fmt.Errorf("country at index %d needs an id and a name", i)
		}
	}
	for i, c := range fixture.Collections {
		if c.Id <= 0 || c.Name == "" {
			return nil, fmt.Errorf("collection at index %d needs an id and a name", i)
		}
	}
	for i, c := range fixture.Coins {
		if c.Id <= 0 {
			return nil, fmt.Errorf("coin at index %d missing id", i)
		}
		if c.Count < 0 {
			return nil, fmt.Errorf("coin %d has a negative count", c.Id)
		}
		for _, field := range []string{c.Weight, c.Diameter, c.PurchasePrice, c.AddExpenses, c.NumistaPrice} {
			if _, err := parseOptionalDecimal(field); err != nil {
				return nil, fmt.Errorf("coin %d: %w", c.Id, err)
			}
		}
	}

	return &fixture, nil
}

// ImportCatalogFixture writes every fixture record into the catalog.
// Existing rows with the same ids are replaced, images included.
func ImportCatalogFixture(ctx context.Context, db *database.Service, fixture *CatalogFixture) error {
	for _, c := range fixture.Countries {
		if err := db.UpsertCountry(ctx, models.Country{Id: c.Id, Name: c.Name}); err != nil {
			return err
		}
	}

	for _, c := range fixture.Collections {
		err := db.UpsertCollection(ctx, models.Collection{
			Id:                c.Id,
			Name:              c.Name,
			TotalInCollection: c.TotalInCollection,
			FullCollection:    c.FullCollection,
			CountryId:         c.CountryId,
		})
		if err != nil {
			return err
		}
	}

	for _, c := range fixture.Coins {
		params, err := c.upsertParams()
		if err != nil {
			return err
		}
		if err := db.UpsertCoin(ctx, params); err != nil {
			return err
		}

		if err := db.ClearCoinImages(ctx, c.Id); err != nil {
			return err
		}
		for _, imagePath := range c.Images {
			if !filepath.IsAbs(imagePath) {
				imagePath = filepath.Join(fixture.baseDir, imagePath)
			}
			data, err := os.ReadFile(imagePath)
			if err != nil {
				return fmt.Errorf("unable to read image for coin %d: %w", c.Id, err)
			}
			if err := db.AddCoinImage(ctx, c.Id, data); err != nil {
				return err
			}
		}
	}

	zap.L().Info("Catalog fixture imported",
		zap.Int("countries", len(fixture.Countries)),
		zap.Int("collections", len(fixture.Collections)),
		zap.Int("coins", len(fixture.Coins)))

	return nil
}

func (c CoinFixture) upsertParams() (database.UpsertCoinParams, error) {
	var err error
	decimals := make([]decimal.NullDecimal, 5)
	for i, raw := range []string{c.Weight, c.Diameter, c.PurchasePrice, c.AddExpenses, c.NumistaPrice} {
		if decimals[i], err = parseOptionalDecimal(raw); err != nil {
			return database.UpsertCoinParams{}, fmt.Errorf("coin %d: %w", c.Id, err)
		}
	}

	return database.UpsertCoinParams{
		Detail: models.CoinDetail{
			Id:            c.Id,
			Name:          c.Name,
			Type:          c.Type,
			Value:         c.Value,
			Mint:          c.Mint,
			YearCentury:   c.YearCentury,
			Material:      c.Material,
			Mintage:       c.Mintage,
			Weight:        decimals[0],
			Diameter:      decimals[1],
			Condition:     c.Condition,
			PurchasePrice: decimals[2],
			AddExpenses:   decimals[3],
			PurchaseDate:  c.PurchaseDate,
			Count:         c.Count,
			Description:   c.Description,
		},
		CountryId:    c.CountryId,
		CollectionId: c.CollectionId,
		NumistaPrice: decimals[4],
	}, nil
}

func parseOptionalDecimal(raw string) (decimal.NullDecimal, error) {
	if raw == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return decimal.NewNullDecimal(d), nil
}
