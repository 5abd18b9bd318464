package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/abdidvp/invoicegen/internal/adapters/outbound/config"
	"github.com/abdidvp/invoicegen/internal/adapters/outbound/renderer"
	"github.com/abdidvp/invoicegen/internal/adapters/outbound/template"
	"github.com/abdidvp/invoicegen/internal/adapters/outbound/tui"
	"github.com/abdidvp/invoicegen/internal/application"
	"github.com/abdidvp/invoicegen/internal/domain"
	"github.com/abdidvp/invoicegen/internal/domain/money"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// fieldFlags are the flags that double as invoice fields.
var fieldFlags = []string{
	domain.KeyClient,
	domain.KeyCurrency,
	domain.KeyDate,
	domain.KeyDueDate,
	domain.KeyFrom,
	domain.KeyHeader,
	domain.KeyNotes,
	domain.KeyNumber,
	domain.KeyTemplate,
}

func newGenerateCmd() *cobra.Command {
	var (
		fields          = make(map[string]*string, len(fieldFlags))
		ymlPath         string
		fromStdin       bool
		showYMLExample  bool
		showTmplExample bool
		format          string
		outputDir       string
		verbose         bool
	)

	cmd := &cobra.Command{
		Use:   "invoicegen",
		Short: "Generate a one-page invoice from a YAML description",
		Long: "invoicegen merges command-line values with a YAML file (command line wins), " +
			"computes dates, line-item subtotals and the balance, fills an HTML template " +
			"and renders invoice-<number>.pdf.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			switch {
			case showYMLExample:
				io.WriteString(out, domain.ExampleConfig)
				return nil
			case showTmplExample:
				fmt.Fprint(out, template.Default())
				return nil
			}

			r, err := renderer.ForFormat(format)
			if err != nil {
				return err
			}

			req := application.Request{
				Fields:     changedFields(cmd, fields),
				ConfigPath: ymlPath,
				OnRender: func(_ domain.FieldSet, outPath string) {
					fmt.Fprint(out, tui.RenderGenerating(filepath.Base(outPath)))
				},
			}
			if fromStdin {
				req.Config = cmd.InOrStdin()
			}

			svc := application.NewInvoiceService(
				config.New(),
				template.New(),
				money.New(),
				newLogger(verbose, cmd.ErrOrStderr()),
			)

			invoice, outPath, err := svc.Generate(cmd.Context(), req, r, outputDir)
			if err != nil {
				return err
			}
			fmt.Fprint(out, tui.RenderSummary(invoice))
			fmt.Fprint(out, tui.RenderDone(outPath))
			return nil
		},
	}

	usage := map[string]string{
		domain.KeyClient:   "Contents of client field.",
		domain.KeyCurrency: "Currency used.",
		domain.KeyDate:     "Invoice date (default today).",
		domain.KeyDueDate:  fmt.Sprintf("Due date (default today + %d days).", domain.DefaultDueDays),
		domain.KeyFrom:     "Contents of from field.",
		domain.KeyHeader:   "Contents of the header.",
		domain.KeyNotes:    "Contents of notes field.",
		domain.KeyNumber:   "Invoice number.",
		domain.KeyTemplate: "HTML template to use (default built-in template).",
	}
	defaults := map[string]string{
		domain.KeyCurrency: domain.DefaultCurrency,
		domain.KeyHeader:   domain.DefaultHeader,
	}
	for _, name := range fieldFlags {
		fields[name] = cmd.Flags().String(name, defaults[name], usage[name])
	}

	cmd.Flags().StringVar(&ymlPath, "yml", config.DefaultFile, "YML file with values for parameters not given on the command line")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read YML file from STDIN")
	cmd.Flags().BoolVar(&showYMLExample, "show-yml-example", false, "Show an example of a YML file that can be used by this command")
	cmd.Flags().BoolVar(&showTmplExample, "show-template-example", false, "Show an example of an HTML template")
	cmd.Flags().StringVar(&format, "format", renderer.FormatPDF, "Output format (pdf, html)")
	cmd.Flags().StringVar(&outputDir, "output-dir", ".", "Directory the invoice is written to")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline steps to stderr")

	return cmd
}

// changedFields returns only the field flags the user actually set, so
// flag defaults never shadow values from the YAML file.
func changedFields(cmd *cobra.Command, fields map[string]*string) domain.FieldSet {
	fs := domain.FieldSet{}
	for name, v := range fields {
		if cmd.Flags().Changed(name) {
			fs[name] = *v
		}
	}
	return fs
}

func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zap.DebugLevel))
}
