package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vertti/pdfcheck/pkg/config"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, ErrCheckFailed) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(exitCode(err))
}

// exitCode maps the command outcome to the process exit status:
// 0 when the dependency is available, 1 for anything else.
func exitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}

var settings = config.New()

var rootCmd = &cobra.Command{
	Use:   "pdfcheck",
	Short: "Check that the PDF export dependencies are usable",
	Long: `pdfcheck verifies that the WeasyPrint renderer is installed and that the
Pango text shaping library it depends on can be loaded and initialized.

It prints a one-line verdict and exits 0 when PDF export is available,
1 otherwise. Everything else keeps working without these dependencies.

Examples:
  pdfcheck
  pdfcheck --json
  pdfcheck --log
  pdfcheck --library /opt/pango/lib/libpango-1.0.so.0`,
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPDFCheck,
}
