// Package template loads invoice template text.
package template

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/abdidvp/invoicegen/internal/domain"
)

//go:embed default.html
var defaultTemplate string

// Default returns the built-in HTML template.
func Default() string { return defaultTemplate }

// Loader implements domain.TemplateLoader.
type Loader struct{}

// New creates a Loader.
func New() *Loader { return &Loader{} }

// Load returns the template at path, or the built-in template when path is empty.
func (l *Loader) Load(path string) (string, error) {
	if path == "" {
		return defaultTemplate, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &domain.ConfigError{Msg: fmt.Sprintf("template %s not found or can't be read", path), Err: err}
	}
	return string(data), nil
}
