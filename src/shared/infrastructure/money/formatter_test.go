package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCLP(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "$0"},
		{"999", "$999"},
		{"31500", "$31.500"},
		{"1250000", "$1.250.000"},
		// El redondeo a cero decimales ocurre solo aquí.
		{"13999.93", "$14.000"},
		{"13999.49", "$13.999"},
	}

	for _, tc := range cases {
		got := FormatCLP(decimal.RequireFromString(tc.in))
		if got != tc.want {
			t.Errorf("FormatCLP(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"33.157894736842105", "$33.16"},
		{"1234.5", "$1,234.50"},
	}

	for _, tc := range cases {
		got := FormatUSD(decimal.RequireFromString(tc.in))
		if got != tc.want {
			t.Errorf("FormatUSD(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUSDUnavailableMarker(t *testing.T) {
	if USDUnavailable != "N/A" {
		t.Fatalf("unexpected marker: %q", USDUnavailable)
	}
}
