package domain

import "time"

// Field names recognized by the invoice pipeline.
const (
	KeyClient    = "client"
	KeyCurrency  = "currency"
	KeyDate      = "date"
	KeyDueDate   = "due-date"
	KeyFrom      = "from"
	KeyHeader    = "header"
	KeyNotes     = "notes"
	KeyNumber    = "number"
	KeyItems     = "items"
	KeyTemplate  = "template"
	KeyMonth     = "month"
	KeyPastMonth = "past_month"
	KeyYear      = "year"
	KeyBalance   = "balance"
)

// Defaults applied at the command-line boundary when neither source sets a field.
const (
	DefaultCurrency = "USD"
	DefaultHeader   = "Invoice"
	DefaultDueDays  = 15
)

// FieldSet maps a field name to its value. Values are strings, numbers,
// dates (time.Time), decimals or lists. Keys beyond the well-known ones are
// carried through so a template can reference them.
type FieldSet map[string]any

// Clone returns a shallow copy of fs. Transformations build on a clone so the
// caller's set is never modified.
func (fs FieldSet) Clone() FieldSet {
	out := make(FieldSet, len(fs))
	for k, v := range fs {
		out[k] = v
	}
	return out
}

// IsSet reports whether key holds a usable value. Nil and the empty string
// count as unset.
func (fs FieldSet) IsSet(key string) bool {
	v, ok := fs[key]
	if !ok || v == nil {
		return false
	}
	if s, isStr := v.(string); isStr && s == "" {
		return false
	}
	return true
}

// String returns the value under key when it is a string.
func (fs FieldSet) String(key string) string {
	s, _ := fs[key].(string)
	return s
}

// Date returns the value under key when it is a normalized date.
func (fs FieldSet) Date(key string) (time.Time, bool) {
	t, ok := fs[key].(time.Time)
	return t, ok
}
