package domain

import (
	"errors"
	"time"

	"github.com/spf13/cast"
)

// DateLayout is how dates appear in a rendered invoice.
const DateLayout = "January 2, 2006"

// Layouts accepted on top of the ones cast.StringToDate understands.
var extraDateLayouts = []string{
	DateLayout,
	"Jan 2, 2006",
	"2 January 2006",
	"2006/01/02",
}

var errNoLayout = errors.New("no matching date layout")

// CalendarDate truncates t to midnight UTC of its calendar day.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NormalizeDates coerces the given keys (date and due-date when none are
// named) into calendar dates. Absent keys stay absent.
func NormalizeDates(fs FieldSet, keys ...string) (FieldSet, error) {
	if len(keys) == 0 {
		keys = []string{KeyDate, KeyDueDate}
	}

	result := fs.Clone()
	for _, key := range keys {
		v, ok := result[key]
		if !ok {
			continue
		}
		d, err := ParseDate(v)
		if err != nil {
			return nil, &DateParseError{Field: key, Value: v, Err: err}
		}
		result[key] = d
	}
	return result, nil
}

// ParseDate accepts a time.Time or a date string and returns its calendar date.
func ParseDate(v any) (time.Time, error) {
	switch val := v.(type) {
	case time.Time:
		return CalendarDate(val), nil
	case *time.Time:
		if val == nil {
			return time.Time{}, errNoLayout
		}
		return CalendarDate(*val), nil
	case string:
		return parseDateString(val)
	default:
		return time.Time{}, errNoLayout
	}
}

func parseDateString(s string) (time.Time, error) {
	if t, err := cast.StringToDate(s); err == nil && t.Year() != 0 {
		return CalendarDate(t), nil
	}
	for _, layout := range extraDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return CalendarDate(t), nil
		}
	}
	return time.Time{}, errNoLayout
}

// FormatDate renders a date the way it appears on the invoice.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
