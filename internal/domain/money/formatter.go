// Package money renders minor-unit amounts as currency strings. It is the
// single formatting authority for every monetary value on an invoice.
package money

import (
	"strings"

	"github.com/abdidvp/invoicegen/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// convention describes how a currency is written.
type convention struct {
	symbol      string
	symbolFirst bool
	decimalMark string
	grouping    language.Tag // locale whose digit grouping is used
}

// Currencies without an entry are written as "1,234.56 XYZ".
var conventions = map[string]convention{
	"USD": {symbol: "$", symbolFirst: true, decimalMark: ".", grouping: language.AmericanEnglish},
	"GBP": {symbol: "£", symbolFirst: true, decimalMark: ".", grouping: language.BritishEnglish},
	"EUR": {symbol: "€", symbolFirst: true, decimalMark: ",", grouping: language.German},
	"JPY": {symbol: "¥", symbolFirst: true, decimalMark: ".", grouping: language.Japanese},
	"CNY": {symbol: "¥", symbolFirst: true, decimalMark: ".", grouping: language.Chinese},
	"KRW": {symbol: "₩", symbolFirst: true, decimalMark: ".", grouping: language.Korean},
	"CAD": {symbol: "C$", symbolFirst: true, decimalMark: ".", grouping: language.English},
	"AUD": {symbol: "A$", symbolFirst: true, decimalMark: ".", grouping: language.English},
	"NZD": {symbol: "NZ$", symbolFirst: true, decimalMark: ".", grouping: language.English},
	"CHF": {symbol: "CHF ", symbolFirst: true, decimalMark: ".", grouping: language.English},
	"INR": {symbol: "₹", symbolFirst: true, decimalMark: ".", grouping: language.English},
	"BRL": {symbol: "R$", symbolFirst: true, decimalMark: ",", grouping: language.BrazilianPortuguese},
	"SEK": {symbol: "kr", symbolFirst: false, decimalMark: ",", grouping: language.Swedish},
}

// Formatter implements domain.MoneyFormatter.
type Formatter struct{}

// New creates a Formatter.
func New() *Formatter { return &Formatter{} }

// Format renders amount, given in minor units, for the ISO 4217 code.
// The amount is first rounded to a whole minor unit with half-to-even
// rounding, then shifted by the currency's standard scale.
//
//	Format(12334, "GBP")  -> "£123.34"
//	Format(123456, "EUR") -> "€1.234,56"
//	Format(1235, "JPY")   -> "¥1,235"
func (f *Formatter) Format(amount decimal.Decimal, code string) (string, error) {
	unit, err := Lookup(code)
	if err != nil {
		return "", err
	}

	iso := unit.String()
	scale, _ := currency.Standard.Rounding(unit)

	major := amount.RoundBank(0).Shift(-int32(scale))
	negative := major.IsNegative()
	whole, frac, _ := strings.Cut(major.Abs().StringFixed(int32(scale)), ".")

	conv, known := conventions[iso]
	if !known {
		conv = convention{symbol: iso, decimalMark: ".", grouping: language.English}
	}

	number := group(whole, groupSeparator(conv.grouping))
	if scale > 0 {
		number += conv.decimalMark + frac
	}

	var out string
	if conv.symbolFirst {
		out = conv.symbol + number
	} else {
		out = number + " " + conv.symbol
	}
	if negative {
		out = "-" + out
	}
	return out, nil
}

// groupSeparator returns the thousands separator the locale prints.
func groupSeparator(tag language.Tag) string {
	s := message.NewPrinter(tag).Sprintf("%d", 1000)
	return strings.TrimSuffix(strings.TrimPrefix(s, "1"), "000")
}

// group inserts sep between every three digits of an unsigned digit string
// of any length.
func group(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Lookup validates an ISO 4217 code, case-insensitively.
func Lookup(code string) (currency.Unit, error) {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil || unit == (currency.Unit{}) {
		return currency.Unit{}, &domain.UnknownCurrencyError{Code: code}
	}
	return unit, nil
}
