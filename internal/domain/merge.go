package domain

import "time"

// Merge combines command-line fields with file fields. A value given on the
// command line always wins; file values fill every key the command line
// leaves unset. The result must carry an items list.
func Merge(cli, file FieldSet) (FieldSet, error) {
	result := cli.Clone()
	for k, v := range file {
		if !result.IsSet(k) {
			result[k] = v
		}
	}

	items, ok := result[KeyItems]
	if !ok || items == nil {
		return nil, &ConfigError{Msg: "items not in the right format, something is missing"}
	}
	if !isList(items) {
		return nil, &ConfigError{Msg: "items must be a list of [description, quantity, unit price]"}
	}

	return result, nil
}

// ApplyDefaults fills absent optional fields with the standard policy:
// currency USD, header "Invoice", invoice date today and due date fifteen
// days after today. Present values, even malformed ones, are left alone.
func ApplyDefaults(fs FieldSet, today time.Time) FieldSet {
	result := fs.Clone()
	day := CalendarDate(today)

	if !result.IsSet(KeyCurrency) {
		result[KeyCurrency] = DefaultCurrency
	}
	if !result.IsSet(KeyHeader) {
		result[KeyHeader] = DefaultHeader
	}
	if !result.IsSet(KeyDate) {
		result[KeyDate] = day
	}
	if !result.IsSet(KeyDueDate) {
		result[KeyDueDate] = day.AddDate(0, 0, DefaultDueDays)
	}

	return result
}

func isList(v any) bool {
	switch v.(type) {
	case []any, [][]any, []LineItem:
		return true
	}
	return false
}
