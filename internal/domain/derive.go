package domain

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// CalendarFields derives the month, past_month and year placeholders from today.
func CalendarFields(today time.Time) FieldSet {
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	previous := first.AddDate(0, -1, 0)

	return FieldSet{
		KeyMonth:     first.Month().String(),
		KeyPastMonth: previous.Month().String(),
		KeyYear:      strconv.Itoa(first.Year()),
	}
}

// Balance sums the exact subtotals of items in minor units.
func Balance(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, li := range items {
		total = total.Add(li.Subtotal())
	}
	return total
}

// ComputeBalance parses raw items, sums their subtotals without intermediate
// rounding and formats the total once.
func ComputeBalance(raw any, f MoneyFormatter, currency string) (string, error) {
	items, err := ParseItems(raw)
	if err != nil {
		return "", err
	}
	return f.Format(Balance(items), currency)
}
