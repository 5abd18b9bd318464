package application

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/abdidvp/invoicegen/internal/domain"
	"github.com/abdidvp/invoicegen/internal/domain/items"
	"github.com/abdidvp/invoicegen/internal/domain/placeholder"
	"go.uber.org/zap"
)

// Request describes one invoice run.
type Request struct {
	// Fields holds only the values given explicitly on the command line.
	Fields domain.FieldSet
	// ConfigPath is the YAML file consulted for every field Fields leaves unset.
	ConfigPath string
	// Config, when non-nil, is read instead of ConfigPath.
	Config io.Reader
	// OnRender, when set, is called by Generate once the invoice is
	// assembled and just before the renderer runs.
	OnRender func(invoice domain.FieldSet, outPath string)
}

// InvoiceService orchestrates the invoice pipeline:
// load config -> merge -> defaults -> normalize dates -> derive -> table -> substitute -> render.
type InvoiceService struct {
	configLoader domain.ConfigLoader
	templates    domain.TemplateLoader
	formatter    domain.MoneyFormatter
	logger       *zap.Logger
	now          func() time.Time
}

func NewInvoiceService(
	configLoader domain.ConfigLoader,
	templates domain.TemplateLoader,
	formatter domain.MoneyFormatter,
	logger *zap.Logger,
) *InvoiceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceService{
		configLoader: configLoader,
		templates:    templates,
		formatter:    formatter,
		logger:       logger.With(zap.String("component", "invoice-service")),
		now:          time.Now,
	}
}

// WithClock replaces the source of "today". Intended for tests.
func (s *InvoiceService) WithClock(now func() time.Time) *InvoiceService {
	s.now = now
	return s
}

// LoadConfig reads the file half of the request.
func (s *InvoiceService) LoadConfig(req Request) (domain.FieldSet, error) {
	if req.Config != nil {
		s.logger.Debug("reading config from stream")
		return s.configLoader.LoadReader(req.Config)
	}
	s.logger.Debug("reading config file", zap.String("path", req.ConfigPath))
	return s.configLoader.LoadFile(req.ConfigPath)
}

// Assemble merges both field sources and computes every derived field. The
// returned set is the finished invoice: dates are normalized, items holds
// the table-row markup and balance the formatted total.
func (s *InvoiceService) Assemble(cli, file domain.FieldSet) (domain.FieldSet, error) {
	today := s.now()

	// 1. Merge, command line first
	fs, err := domain.Merge(cli, file)
	if err != nil {
		return nil, err
	}

	// 2. Defaults for absent fields
	fs = domain.ApplyDefaults(fs, today)

	// 3. Dates
	fs, err = domain.NormalizeDates(fs)
	if err != nil {
		return nil, err
	}

	// 4. Items and calendar placeholders
	lineItems, err := domain.ParseItems(fs[domain.KeyItems])
	if err != nil {
		return nil, err
	}
	fs[domain.KeyItems] = lineItems

	calendar := domain.CalendarFields(today)
	for k, v := range calendar {
		fs[k] = v
	}
	fs = placeholder.ExpandRefs(fs, calendar)

	// 5. Table and balance
	cur := placeholder.ValueString(fs[domain.KeyCurrency])
	rows, balance, err := items.Render(fs[domain.KeyItems], cur, s.formatter)
	if err != nil {
		return nil, err
	}
	fs[domain.KeyItems] = rows
	fs[domain.KeyBalance] = balance

	s.logger.Debug("invoice assembled",
		zap.Int("items", len(lineItems)),
		zap.String("currency", cur),
		zap.String("balance", balance),
	)
	return fs, nil
}

// Markup substitutes an assembled invoice into its template.
func (s *InvoiceService) Markup(invoice domain.FieldSet) (string, error) {
	path := placeholder.ValueString(invoice[domain.KeyTemplate])
	tmpl, err := s.templates.Load(path)
	if err != nil {
		return "", err
	}
	return placeholder.Substitute(tmpl, invoice), nil
}

// Build runs the pipeline up to the final markup.
func (s *InvoiceService) Build(req Request) (domain.FieldSet, string, error) {
	file, err := s.LoadConfig(req)
	if err != nil {
		return nil, "", err
	}

	invoice, err := s.Assemble(req.Fields, file)
	if err != nil {
		return nil, "", err
	}

	markup, err := s.Markup(invoice)
	if err != nil {
		return nil, "", err
	}
	return invoice, markup, nil
}

// Generate builds the invoice and hands it to r, writing into outDir.
// It returns the assembled invoice and the path of the rendered document.
func (s *InvoiceService) Generate(ctx context.Context, req Request, r domain.Renderer, outDir string) (domain.FieldSet, string, error) {
	invoice, markup, err := s.Build(req)
	if err != nil {
		return nil, "", err
	}

	outPath := OutputPath(invoice, r, outDir)
	if req.OnRender != nil {
		req.OnRender(invoice, outPath)
	}

	s.logger.Debug("rendering", zap.String("output", outPath), zap.Int("markup_bytes", len(markup)))
	if err := r.Render(ctx, markup, outPath); err != nil {
		return nil, "", fmt.Errorf("rendering %s: %w", filepath.Base(outPath), err)
	}
	return invoice, outPath, nil
}

// OutputPath returns where r writes invoice inside outDir.
func OutputPath(invoice domain.FieldSet, r domain.Renderer, outDir string) string {
	number := placeholder.ValueString(invoice[domain.KeyNumber])
	return filepath.Join(outDir, domain.OutputName(number, r.Extension()))
}
