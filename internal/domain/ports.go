package domain

import (
	"context"
	"io"

	"github.com/shopspring/decimal"
)

// ConfigLoader reads the file half of an invoice configuration.
type ConfigLoader interface {
	LoadFile(path string) (FieldSet, error)
	LoadReader(r io.Reader) (FieldSet, error)
}

// TemplateLoader returns template text. An empty path selects the built-in template.
type TemplateLoader interface {
	Load(path string) (string, error)
}

// MoneyFormatter renders an amount in minor units for a currency code.
type MoneyFormatter interface {
	Format(amount decimal.Decimal, currency string) (string, error)
}

// Renderer turns substituted markup into the final document at outPath.
type Renderer interface {
	Render(ctx context.Context, markup, outPath string) error
	Extension() string
}
