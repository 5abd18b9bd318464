package cli

import (
	"fmt"

	"github.com/abdidvp/invoicegen/internal/adapters/outbound/tui"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := newGenerateCmd()
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the command line and reports any failure on stderr.
func Execute() error {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), tui.RenderError(err))
		return err
	}
	return nil
}
