package money_test

import (
	"errors"
	"testing"

	"github.com/abdidvp/invoicegen/internal/domain"
	"github.com/abdidvp/invoicegen/internal/domain/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	f := money.New()

	tests := []struct {
		name   string
		amount string
		code   string
		want   string
	}{
		{"pounds", "12334", "GBP", "£123.34"},
		{"dollars", "1000", "USD", "$10.00"},
		{"thousands", "123456", "USD", "$1,234.56"},
		{"millions", "123456789", "USD", "$1,234,567.89"},
		{"zero", "0", "USD", "$0.00"},
		{"euro grouping", "123456", "EUR", "€1.234,56"},
		{"zero decimal currency", "1235", "JPY", "¥1,235"},
		{"lowercase code", "12334", "gbp", "£123.34"},
		{"no convention", "123456", "NOK", "1,234.56 NOK"},
		{"suffix symbol", "12345", "SEK", "123,45 kr"},
		{"negative", "-500", "USD", "-$5.00"},
		{"beyond int64", "10000000000000000000000", "USD", "$100,000,000,000,000,000,000.00"},
		{"beyond int64 euro", "123456789012345678901234", "EUR", "€1.234.567.890.123.456.789.012,34"},
		{"beyond int64 yen", "98765432109876543210", "JPY", "¥98,765,432,109,876,543,210"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Format(decimal.RequireFromString(tt.amount), tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_HalfEvenRounding(t *testing.T) {
	f := money.New()

	tests := []struct {
		amount string
		want   string
	}{
		{"6167.5", "£61.68"},
		{"6166.5", "£61.66"},
		{"6166.51", "£61.67"},
		{"0.5", "£0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got, err := f.Format(decimal.RequireFromString(tt.amount), "GBP")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_UnknownCurrency(t *testing.T) {
	f := money.New()

	for _, code := range []string{"ABC", "", "dollars", "US"} {
		_, err := f.Format(decimal.NewFromInt(100), code)
		require.Error(t, err, "code %q", code)

		var curErr *domain.UnknownCurrencyError
		require.True(t, errors.As(err, &curErr))
		assert.Equal(t, code, curErr.Code)
	}
}

func TestLookup(t *testing.T) {
	unit, err := money.Lookup(" eur ")
	require.NoError(t, err)
	assert.Equal(t, "EUR", unit.String())
}
