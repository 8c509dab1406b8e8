package quote

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		day  int
		want string
	}{
		{1, "1st Jan 2026"},
		{2, "2nd Jan 2026"},
		{3, "3rd Jan 2026"},
		{4, "4th Jan 2026"},
		{11, "11th Jan 2026"},
		{12, "12th Jan 2026"},
		{13, "13th Jan 2026"},
		{21, "21st Jan 2026"},
		{22, "22nd Jan 2026"},
		{23, "23rd Jan 2026"},
		{31, "31st Jan 2026"},
	}
	for _, tc := range tests {
		d := time.Date(2026, time.January, tc.day, 0, 0, 0, 0, time.UTC)
		if got := FormatDate(d); got != tc.want {
			t.Errorf("FormatDate(day %d) = %q, want %q", tc.day, got, tc.want)
		}
	}
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "₹0"},
		{500, "₹500"},
		{3750, "₹3,750"},
		{75000, "₹75,000"},
		{123456, "₹1,23,456"},
		{1234567, "₹12,34,567"},
		{-3750, "-₹3,750"},
	}
	for _, tc := range tests {
		if got := FormatINR(decimal.NewFromInt(tc.amount)); got != tc.want {
			t.Errorf("FormatINR(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
