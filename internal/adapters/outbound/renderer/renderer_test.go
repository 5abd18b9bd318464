package renderer_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/abdidvp/invoicegen/internal/adapters/outbound/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForFormat(t *testing.T) {
	tests := []struct {
		format string
		ext    string
	}{
		{"html", "html"},
		{"pdf", "pdf"},
		{"", "pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			r, err := renderer.ForFormat(tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.ext, r.Extension())
		})
	}
}

func TestForFormat_Unknown(t *testing.T) {
	_, err := renderer.ForFormat("docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "docx")
}

func TestHTML_Render(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "invoice-1.html")

	require.NoError(t, renderer.NewHTML().Render(context.Background(), "<h1>Invoice</h1>", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "<h1>Invoice</h1>", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestHTML_RenderCreatesDirectory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "out", "invoice-1.html")

	require.NoError(t, renderer.NewHTML().Render(context.Background(), "x", out))
	assert.FileExists(t, out)
}

func TestHTML_RenderOverwrites(t *testing.T) {
	out := filepath.Join(t.TempDir(), "invoice-1.html")
	require.NoError(t, os.WriteFile(out, []byte("old"), 0644))

	require.NoError(t, renderer.NewHTML().Render(context.Background(), "new", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestHTML_RenderCanceled(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := renderer.NewHTML().Render(ctx, "x", filepath.Join(dir, "invoice-1.html"))
	require.ErrorIs(t, err, context.Canceled)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWKHTMLToPDF_MissingBinary(t *testing.T) {
	dir := t.TempDir()
	r := renderer.NewWKHTMLToPDF("invoicegen-no-such-converter")

	err := r.Render(context.Background(), "<p>x</p>", filepath.Join(dir, "invoice-1.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invoicegen-no-such-converter")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWKHTMLToPDF_FailingBinaryLeavesNothing(t *testing.T) {
	if _, err := os.Stat("/bin/false"); err != nil {
		t.Skip("/bin/false not available")
	}
	dir := t.TempDir()
	out := filepath.Join(dir, "invoice-1.pdf")

	err := renderer.NewWKHTMLToPDF("/bin/false").Render(context.Background(), "<p>x</p>", out)
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWKHTMLToPDF_Extension(t *testing.T) {
	assert.Equal(t, "pdf", renderer.NewWKHTMLToPDF("").Extension())
}
