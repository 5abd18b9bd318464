package domain

import "fmt"

// ConfigError reports configuration that lacks required structure or a
// configuration source that cannot be read.
type ConfigError struct {
	Msg string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

// DateParseError reports a date field that is neither a date nor a parseable string.
type DateParseError struct {
	Field string
	Value any
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: not a recognizable date", e.Field, fmt.Sprint(e.Value))
}

func (e *DateParseError) Unwrap() error { return e.Err }

// ItemShapeError reports a line item that does not have exactly three fields
// or whose quantity or price is not a non-negative number. Index is zero-based.
type ItemShapeError struct {
	Index  int
	Reason string
}

func (e *ItemShapeError) Error() string {
	return fmt.Sprintf("item %d: %s", e.Index+1, e.Reason)
}

// UnknownCurrencyError reports a currency code with no formatting rule.
type UnknownCurrencyError struct {
	Code string
}

func (e *UnknownCurrencyError) Error() string {
	return fmt.Sprintf("unknown currency %q", e.Code)
}
