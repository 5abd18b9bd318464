// Package renderer writes substituted invoice markup to its final document.
package renderer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdidvp/invoicegen/internal/domain"
)

// Formats accepted by ForFormat.
const (
	FormatHTML = "html"
	FormatPDF  = "pdf"
)

// ForFormat returns the renderer for an output format name.
func ForFormat(format string) (domain.Renderer, error) {
	switch format {
	case FormatHTML:
		return NewHTML(), nil
	case FormatPDF, "":
		return NewWKHTMLToPDF(""), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (valid: pdf, html)", format)
	}
}

// commit writes into a temporary sibling of outPath via write, then renames
// it into place. On any failure the temporary file is removed, so outPath
// is either complete or untouched.
func commit(outPath string, write func(tmp string) error) error {
	dir := filepath.Dir(outPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(outPath)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	if err := write(tmp); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, outPath); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
