package domain

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// LineItem is one billable entry. UnitPrice is expressed in the currency's
// minor unit (cents, pence, yen).
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Subtotal is quantity times unit price, unrounded, in minor units.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice)
}

// LineItemRow is the display form of a LineItem.
type LineItemRow struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Subtotal    string `json:"subtotal"`
}

// Cells returns the row's columns in table order.
func (r LineItemRow) Cells() []string {
	return []string{r.Description, r.Quantity, r.UnitPrice, r.Subtotal}
}

// ParseItems converts the raw items value of a FieldSet into line items,
// preserving order. Each raw item must be a [description, quantity, unit price]
// list with non-negative numbers.
func ParseItems(raw any) ([]LineItem, error) {
	switch v := raw.(type) {
	case []LineItem:
		for i, li := range v {
			if li.Quantity.IsNegative() || li.UnitPrice.IsNegative() {
				return nil, &ItemShapeError{Index: i, Reason: "quantity and unit price must not be negative"}
			}
		}
		return append([]LineItem(nil), v...), nil
	case [][]any:
		out := make([]LineItem, 0, len(v))
		for i, fields := range v {
			li, err := parseItem(i, fields)
			if err != nil {
				return nil, err
			}
			out = append(out, li)
		}
		return out, nil
	case []any:
		out := make([]LineItem, 0, len(v))
		for i, elem := range v {
			fields, ok := elem.([]any)
			if !ok {
				return nil, &ItemShapeError{Index: i, Reason: fmt.Sprintf("expected a list of 3 values, got %T", elem)}
			}
			li, err := parseItem(i, fields)
			if err != nil {
				return nil, err
			}
			out = append(out, li)
		}
		return out, nil
	default:
		return nil, &ConfigError{Msg: fmt.Sprintf("items must be a list, got %T", raw)}
	}
}

func parseItem(index int, fields []any) (LineItem, error) {
	if len(fields) != 3 {
		return LineItem{}, &ItemShapeError{Index: index, Reason: fmt.Sprintf("items must have 3 values, got %d", len(fields))}
	}

	desc, err := cast.ToStringE(fields[0])
	if err != nil {
		return LineItem{}, &ItemShapeError{Index: index, Reason: "description is not text"}
	}
	qty, ok := toDecimal(fields[1])
	if !ok {
		return LineItem{}, &ItemShapeError{Index: index, Reason: fmt.Sprintf("quantity %v is not a number", fields[1])}
	}
	price, ok := toDecimal(fields[2])
	if !ok {
		return LineItem{}, &ItemShapeError{Index: index, Reason: fmt.Sprintf("unit price %v is not a number", fields[2])}
	}
	if qty.IsNegative() || price.IsNegative() {
		return LineItem{}, &ItemShapeError{Index: index, Reason: "quantity and unit price must not be negative"}
	}

	return LineItem{Description: desc, Quantity: qty, UnitPrice: price}, nil
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(n), true
	case float32:
		if math.IsNaN(float64(n)) || math.IsInf(float64(n), 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat32(n), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		i, err := cast.ToInt64E(n)
		if err != nil {
			return decimal.Zero, false
		}
		return decimal.NewFromInt(i), true
	}
	return decimal.Zero, false
}
