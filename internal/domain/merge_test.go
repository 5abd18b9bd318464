package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/abdidvp/invoicegen/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() []any {
	return []any{[]any{"Widget", 2, 500}}
}

func TestMerge_CommandLineWins(t *testing.T) {
	cli := domain.FieldSet{"currency": "GBP"}
	file := domain.FieldSet{"currency": "USD", "items": sampleItems()}

	merged, err := domain.Merge(cli, file)
	require.NoError(t, err)

	assert.Equal(t, "GBP", merged["currency"])
	assert.Equal(t, sampleItems(), merged["items"])
}

func TestMerge_FileFillsUnsetKeys(t *testing.T) {
	cli := domain.FieldSet{"number": "42", "client": ""}
	file := domain.FieldSet{"client": "Acme", "number": "7", "items": sampleItems(), "po": "PO-1"}

	merged, err := domain.Merge(cli, file)
	require.NoError(t, err)

	assert.Equal(t, "42", merged["number"])
	assert.Equal(t, "Acme", merged["client"], "empty command-line value must not shadow the file")
	assert.Equal(t, "PO-1", merged["po"], "unknown keys are carried through")
}

func TestMerge_DoesNotModifyInputs(t *testing.T) {
	cli := domain.FieldSet{"number": "42"}
	file := domain.FieldSet{"client": "Acme", "items": sampleItems()}

	_, err := domain.Merge(cli, file)
	require.NoError(t, err)

	assert.Len(t, cli, 1)
	assert.Len(t, file, 2)
}

func TestMerge_ItemsRequired(t *testing.T) {
	tests := []struct {
		name string
		file domain.FieldSet
	}{
		{"missing", domain.FieldSet{"client": "Acme"}},
		{"null", domain.FieldSet{"items": nil}},
		{"scalar", domain.FieldSet{"items": "three widgets"}},
		{"map", domain.FieldSet{"items": map[string]any{"a": 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.Merge(domain.FieldSet{}, tt.file)
			require.Error(t, err)

			var cfgErr *domain.ConfigError
			assert.True(t, errors.As(err, &cfgErr))
			assert.Contains(t, err.Error(), "items")
		})
	}
}

func TestApplyDefaults_FillsAbsentFields(t *testing.T) {
	today := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	fs := domain.ApplyDefaults(domain.FieldSet{"items": sampleItems()}, today)

	assert.Equal(t, "USD", fs["currency"])
	assert.Equal(t, "Invoice", fs["header"])
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), fs["date"])
	assert.Equal(t, time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC), fs["due-date"])
}

func TestApplyDefaults_KeepsPresentValues(t *testing.T) {
	today := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	in := domain.FieldSet{
		"currency": "EUR",
		"header":   "Facture",
		"date":     "not a date",
		"due-date": "2024-02-01",
	}

	fs := domain.ApplyDefaults(in, today)

	assert.Equal(t, "EUR", fs["currency"])
	assert.Equal(t, "Facture", fs["header"])
	assert.Equal(t, "not a date", fs["date"])
	assert.Equal(t, "2024-02-01", fs["due-date"])
	assert.NotContains(t, in, "balance")
}

func TestFieldSet_IsSet(t *testing.T) {
	fs := domain.FieldSet{"a": "x", "b": "", "c": nil, "d": 0}

	assert.True(t, fs.IsSet("a"))
	assert.False(t, fs.IsSet("b"))
	assert.False(t, fs.IsSet("c"))
	assert.True(t, fs.IsSet("d"))
	assert.False(t, fs.IsSet("missing"))
}
