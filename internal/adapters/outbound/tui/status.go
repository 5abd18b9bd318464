package tui

import (
	"fmt"
	"strings"

	"github.com/abdidvp/invoicegen/internal/domain"
	"github.com/abdidvp/invoicegen/internal/domain/placeholder"
)

// RenderGenerating renders the progress line shown before the backend runs.
func RenderGenerating(name string) string {
	return progressStyle.Render(fmt.Sprintf("Generating %s...", name)) + "\n"
}

// RenderDone renders the confirmation for a written document.
func RenderDone(path string) string {
	return passStyle.Render("✓") + " " + path + "\n"
}

// RenderError renders a failure message for stderr.
func RenderError(err error) string {
	return failStyle.Render("error:") + " " + err.Error() + "\n"
}

// RenderSummary renders a boxed overview of an assembled invoice.
func RenderSummary(invoice domain.FieldSet) string {
	var b strings.Builder

	header := placeholder.ValueString(invoice[domain.KeyHeader])
	number := placeholder.ValueString(invoice[domain.KeyNumber])
	b.WriteString(titleStyle.Render(strings.TrimSpace(header + " " + number)))
	b.WriteString("\n")

	writeField(&b, "Client", firstLine(placeholder.ValueString(invoice[domain.KeyClient])))
	writeField(&b, "Date", placeholder.ValueString(invoice[domain.KeyDate]))
	writeField(&b, "Due", placeholder.ValueString(invoice[domain.KeyDueDate]))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(padRight("Balance", 8)))
	b.WriteString(amountStyle.Render(placeholder.ValueString(invoice[domain.KeyBalance])))

	return boxStyle.Render(b.String()) + "\n"
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(labelStyle.Render(padRight(label, 8)))
	b.WriteString(value)
	b.WriteString("\n")
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
