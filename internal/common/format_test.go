package common

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2021-03-14", "14.03.2021"},
		{" 1999-12-01 ", "01.12.1999"},
		{"14.03.2021", "14.03.2021"},
		{"", ""},
		{"spring 2020", "spring 2020"},
	}
	for _, tt := range tests {
		if got := FormatDate(tt.in); got != tt.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatAmounts(t *testing.T) {
	if got := FormatMoney(decimal.RequireFromString("8.5")); got != "8.50" {
		t.Errorf("FormatMoney = %q", got)
	}
	if got := FormatOptionalDecimal(decimal.NullDecimal{}); got != "-" {
		t.Errorf("FormatOptionalDecimal(null) = %q", got)
	}
	if got := OrDash("  "); got != "-" {
		t.Errorf("OrDash(blank) = %q", got)
	}
}
