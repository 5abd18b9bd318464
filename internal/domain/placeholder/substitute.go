// Package placeholder fills %name% tokens in template text.
package placeholder

import (
	"fmt"
	"strings"
	"time"

	"github.com/abdidvp/invoicegen/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Delim wraps a field name to form a placeholder.
const Delim = '%'

// Substitute replaces every %key% token whose key is present in fs with the
// value's string form. The template is scanned once and matched by exact
// name, so %date% never matches inside %due-date%. A name may hold any
// character except the delimiter and line breaks. Unknown tokens and stray
// delimiters are copied verbatim; inserted values are not rescanned.
func Substitute(template string, fs domain.FieldSet) string {
	var b strings.Builder
	b.Grow(len(template))

	rest := template
	for {
		open := strings.IndexByte(rest, Delim)
		if open < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:open])
		rest = rest[open+1:]

		end := strings.IndexByte(rest, Delim)
		if end < 0 {
			b.WriteByte(Delim)
			b.WriteString(rest)
			break
		}

		name := rest[:end]
		v, ok := fs[name]
		if !ok || !validName(name) {
			// The closing delimiter may open the next token.
			b.WriteByte(Delim)
			continue
		}
		b.WriteString(ValueString(v))
		rest = rest[end+1:]
	}

	return b.String()
}

// ValueString renders a field value for insertion into a template.
func ValueString(v any) string {
	switch val := v.(type) {
	case time.Time:
		return domain.FormatDate(val)
	case *time.Time:
		if val == nil {
			return ""
		}
		return domain.FormatDate(*val)
	case decimal.Decimal:
		return val.String()
	case fmt.Stringer:
		return val.String()
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}

// ExpandRefs substitutes refs into every string value of fs and into the
// descriptions of parsed line items, so a note such as "Work for %month%"
// reads "Work for March". fs itself is not modified.
func ExpandRefs(fs, refs domain.FieldSet) domain.FieldSet {
	result := fs.Clone()
	for k, v := range result {
		switch val := v.(type) {
		case string:
			result[k] = Substitute(val, refs)
		case []domain.LineItem:
			expanded := make([]domain.LineItem, len(val))
			for i, li := range val {
				li.Description = Substitute(li.Description, refs)
				expanded[i] = li
			}
			result[k] = expanded
		}
	}
	return result
}

func validName(name string) bool {
	return name != "" && !strings.ContainsAny(name, "\r\n")
}
