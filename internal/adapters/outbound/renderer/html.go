package renderer

import (
	"context"
	"os"
)

// HTML writes the markup as-is.
type HTML struct{}

// NewHTML creates an HTML renderer.
func NewHTML() *HTML { return &HTML{} }

func (h *HTML) Extension() string { return FormatHTML }

func (h *HTML) Render(ctx context.Context, markup, outPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return commit(outPath, func(tmp string) error {
		return os.WriteFile(tmp, []byte(markup), 0644)
	})
}
