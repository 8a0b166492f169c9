package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFlexIntDecoding(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{`7`, 7, false},
		{`"12"`, 12, false},
		{`3.0`, 3, false},
		{`null`, 0, false},
		{`""`, 0, false},
		{`"abc"`, 0, true},
	}
	for _, tt := range tests {
		var v FlexInt
		err := json.Unmarshal([]byte(tt.input), &v)
		if (err != nil) != tt.wantErr {
			t.Errorf("FlexInt(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && v.Int() != tt.want {
			t.Errorf("FlexInt(%s) = %d, want %d", tt.input, v.Int(), tt.want)
		}
	}
}

func TestFlexStringDecoding(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{`"XIX century"`, "XIX century", false},
		{`1990`, "1990", false},
		{`null`, "", false},
		{`"1\/2 penny"`, "1/2 penny", false},
		{`"\ud83e\ude99 coin"`, "\U0001FA99 coin", false},
		{`"caf\u00e9"`, "café", false},
		{`"bad\x"`, "", true},
		{`["a"]`, "", true},
	}
	for _, tt := range tests {
		var v FlexString
		err := json.Unmarshal([]byte(tt.input), &v)
		if (err != nil) != tt.wantErr {
			t.Errorf("FlexString(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && v.String() != tt.want {
			t.Errorf("FlexString(%s) = %q, want %q", tt.input, v.String(), tt.want)
		}
	}
}

func TestPaginatedCoinResponseIsLenient(t *testing.T) {
	body := `{
		"data": [
			{"id_coin": 1, "country": "France", "name": "5 francs", "count": 2, "extra": {"x": 1}},
			{"id_coin": "2", "country": null, "year_century": 1890, "count": null},
			{"id_coin": 3, "name": "1\/2 penny", "country": "\u00c9tats-Unis"}
		],
		"page": 1,
		"page_size": 10,
		"unknown": true
	}`

	var resp PaginatedCoinResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	page := resp.ToCoinPage()
	if len(page.Coins) != 3 {
		t.Fatalf("Expected 3 coins, got %d", len(page.Coins))
	}
	if page.Coins[0].Title != "5 francs" || page.Coins[0].Count != 2 {
		t.Errorf("Unexpected first coin: %+v", page.Coins[0])
	}
	second := page.Coins[1]
	if second.Id != 2 || second.Country != "" || second.YearCentury != "1890" || second.Count != 0 {
		t.Errorf("Unexpected second coin: %+v", second)
	}
	if second.Images == nil || len(second.Images) != 0 {
		t.Errorf("Expected empty non-nil image list, got %v", second.Images)
	}
	if third := page.Coins[2]; third.Title != "1/2 penny" || third.Country != "États-Unis" {
		t.Errorf("Unexpected escaped coin: %+v", third)
	}
}

func TestCoinsCountResponseAcceptsStringsAndNumbers(t *testing.T) {
	body := `{"total_count": 14, "unic_count": "9", "total_price": 120.5, "numista_price": "300.25"}`

	var resp CoinsCountResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	c := resp.ToCounters()
	if c.TotalCount != 14 || c.UniqueCount != 9 {
		t.Errorf("Unexpected counts: %+v", c)
	}
	if !c.TotalPrice.Equal(decimal.RequireFromString("120.5")) {
		t.Errorf("Expected total price 120.5, got %s", c.TotalPrice)
	}
	if !c.MarketPrice.Equal(decimal.RequireFromString("300.25")) {
		t.Errorf("Expected market price 300.25, got %s", c.MarketPrice)
	}
}

func TestFlexDecimalDecoding(t *testing.T) {
	tests := []struct {
		input     string
		want      string
		wantValid bool
		wantErr   bool
	}{
		{`12.5`, "12.5", true, false},
		{`"0.75"`, "0.75", true, false},
		{`""`, "", false, false},
		{`" "`, "", false, false},
		{`null`, "", false, false},
		{`"n/a"`, "", false, true},
	}
	for _, tt := range tests {
		var v FlexDecimal
		err := json.Unmarshal([]byte(tt.input), &v)
		if (err != nil) != tt.wantErr {
			t.Errorf("FlexDecimal(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			continue
		}
		if v.Valid != tt.wantValid {
			t.Errorf("FlexDecimal(%s) valid = %v, want %v", tt.input, v.Valid, tt.wantValid)
		}
		if tt.wantValid && !v.Decimal.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("FlexDecimal(%s) = %s, want %s", tt.input, v.Decimal, tt.want)
		}
	}
}

func TestCoinsCountResponseTreatsEmptyPriceAsZero(t *testing.T) {
	body := `{"total_count": 3, "unic_count": 2, "total_price": "", "numista_price": null}`

	var resp CoinsCountResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	c := resp.ToCounters()
	if c.TotalCount != 3 || c.UniqueCount != 2 {
		t.Errorf("Unexpected counts: %+v", c)
	}
	if !c.TotalPrice.IsZero() || !c.MarketPrice.IsZero() {
		t.Errorf("Expected zero prices, got %s and %s", c.TotalPrice, c.MarketPrice)
	}
}

func TestCoinDetailResponseTreatsEmptyMeasurementsAsAbsent(t *testing.T) {
	body := `{"data": {"id_coin": 9, "name": "1\/2 penny", "weight": "", "diameter": "21.2", "purchase_price": "", "add_expenses": null, "count": 1}}`

	var resp CoinDetailResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	got := resp.ToCoinDetail()
	if got == nil {
		t.Fatal("Expected detail, got nil")
	}
	if got.Name != "1/2 penny" {
		t.Errorf("Expected name %q, got %q", "1/2 penny", got.Name)
	}
	if got.Weight.Valid || got.PurchasePrice.Valid || got.AddExpenses.Valid {
		t.Errorf("Expected empty fields to be absent, got %+v", got)
	}
	if !got.Diameter.Valid || !got.Diameter.Decimal.Equal(decimal.RequireFromString("21.2")) {
		t.Errorf("Unexpected diameter: %+v", got.Diameter)
	}
}

func TestCoinDetailResponseRoundTrip(t *testing.T) {
	mintage := int64(50000)
	detail := &CoinDetail{
		Id:            5,
		Name:          "Rouble",
		Mintage:       &mintage,
		PurchasePrice: decimal.NewNullDecimal(decimal.RequireFromString("12.30")),
		Count:         3,
	}

	data, err := json.Marshal(NewCoinDetailResponse(detail))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var resp CoinDetailResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	got := resp.ToCoinDetail()
	if got == nil {
		t.Fatal("Expected detail, got nil")
	}
	if got.Id != 5 || got.Name != "Rouble" || got.Count != 3 {
		t.Errorf("Unexpected detail: %+v", got)
	}
	if got.Mintage == nil || *got.Mintage != mintage {
		t.Errorf("Expected mintage %d, got %v", mintage, got.Mintage)
	}
	if !got.PurchasePrice.Valid || !got.PurchasePrice.Decimal.Equal(decimal.RequireFromString("12.3")) {
		t.Errorf("Unexpected purchase price: %+v", got.PurchasePrice)
	}
	if got.Weight.Valid {
		t.Errorf("Expected weight to be absent")
	}
}

func TestCoinDetailResponseWithoutRecord(t *testing.T) {
	var resp CoinDetailResponse
	if err := json.Unmarshal([]byte(`{"count": 0}`), &resp); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if resp.ToCoinDetail() != nil {
		t.Error("Expected nil detail for payload without data")
	}
}

func TestFilterSentinelTranslatesToNoFilter(t *testing.T) {
	f := Filter{Country: AllCountries(), Collection: AllCollections()}
	if f.CountryId() != nil || f.CollectionId() != nil {
		t.Error("Expected sentinel references to yield no filter")
	}

	f = Filter{Country: &Country{Id: 3}, Collection: &Collection{Id: 8}}
	if id := f.CountryId(); id == nil || *id != 3 {
		t.Errorf("Expected country id 3, got %v", id)
	}
	if id := f.CollectionId(); id == nil || *id != 8 {
		t.Errorf("Expected collection id 8, got %v", id)
	}

	if (Filter{}).CountryId() != nil {
		t.Error("Expected empty filter to yield no country filter")
	}
}

func TestNormalizeSearchText(t *testing.T) {
	tests := []struct{ input, want string }{
		{"  ", ""},
		{"", ""},
		{" penny ", "penny"},
	}
	for _, tt := range tests {
		if got := NormalizeSearchText(tt.input); got != tt.want {
			t.Errorf("NormalizeSearchText(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
