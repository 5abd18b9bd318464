// Package items turns line items into invoice table rows.
package items

import (
	"strings"

	"github.com/abdidvp/invoicegen/internal/domain"
)

// Rows builds one display row per item, in input order. Items are not modified.
func Rows(items []domain.LineItem, currency string, f domain.MoneyFormatter) ([]domain.LineItemRow, error) {
	rows := make([]domain.LineItemRow, 0, len(items))

	for _, li := range items {
		unit, err := f.Format(li.UnitPrice, currency)
		if err != nil {
			return nil, err
		}
		sub, err := f.Format(li.Subtotal(), currency)
		if err != nil {
			return nil, err
		}

		rows = append(rows, domain.LineItemRow{
			Description: li.Description,
			Quantity:    li.Quantity.String(),
			UnitPrice:   unit,
			Subtotal:    sub,
		})
	}

	return rows, nil
}

// Render converts the raw items value of a FieldSet into table-row markup
// and the formatted balance. It fails as a whole: on error both strings are empty.
func Render(raw any, currency string, f domain.MoneyFormatter) (string, string, error) {
	parsed, err := domain.ParseItems(raw)
	if err != nil {
		return "", "", err
	}

	rows, err := Rows(parsed, currency, f)
	if err != nil {
		return "", "", err
	}
	balance, err := domain.ComputeBalance(parsed, f, currency)
	if err != nil {
		return "", "", err
	}

	return Markup(rows), balance, nil
}

// Markup renders rows as concatenated <tr> elements.
func Markup(rows []domain.LineItemRow) string {
	var b strings.Builder
	for _, r := range rows {
		b.WriteString("<tr><td>")
		b.WriteString(strings.Join(r.Cells(), "</td><td>"))
		b.WriteString("</td></tr>")
	}
	return b.String()
}
