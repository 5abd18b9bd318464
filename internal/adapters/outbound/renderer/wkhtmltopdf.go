package renderer

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultWKHTMLToPDF is the binary looked up on PATH.
const DefaultWKHTMLToPDF = "wkhtmltopdf"

// WKHTMLToPDF converts markup to PDF by piping it through wkhtmltopdf.
type WKHTMLToPDF struct {
	binary string
	args   []string
}

// NewWKHTMLToPDF creates a PDF renderer. An empty binary selects
// DefaultWKHTMLToPDF.
func NewWKHTMLToPDF(binary string, extraArgs ...string) *WKHTMLToPDF {
	if binary == "" {
		binary = DefaultWKHTMLToPDF
	}
	return &WKHTMLToPDF{binary: binary, args: extraArgs}
}

func (w *WKHTMLToPDF) Extension() string { return FormatPDF }

func (w *WKHTMLToPDF) Render(ctx context.Context, markup, outPath string) error {
	bin, err := exec.LookPath(w.binary)
	if err != nil {
		return fmt.Errorf("%s not available: %w", w.binary, err)
	}

	return commit(outPath, func(tmp string) error {
		args := append([]string{"--quiet", "--encoding", "utf-8"}, w.args...)
		args = append(args, "-", tmp)

		cmd := exec.CommandContext(ctx, bin, args...)
		cmd.Stdin = strings.NewReader(markup)
		var stderr bytes.Buffer
		cmd.Stderr = &stderr

		if err := cmd.Run(); err != nil {
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				return fmt.Errorf("%s: %w: %s", w.binary, err, msg)
			}
			return fmt.Errorf("%s: %w", w.binary, err)
		}
		return nil
	})
}
