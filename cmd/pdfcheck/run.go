package main

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vertti/pdfcheck/pkg/check"
	"github.com/vertti/pdfcheck/pkg/config"
	"github.com/vertti/pdfcheck/pkg/output"
	"github.com/vertti/pdfcheck/pkg/report"
)

// ErrCheckFailed is returned when the dependency is unavailable.
// The returned error causes main to exit with code 1.
var ErrCheckFailed = errors.New("check failed")

var (
	jsonOutput bool
	logOutput  bool
)

// newChecker builds the check from resolved settings; replaced in tests.
var newChecker = func(cfg config.Config) check.Checker {
	return cfg.Check()
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVar(&jsonOutput, "json", false, "print the result as JSON")
	flags.BoolVar(&logOutput, "log", false, "report through the logger on stderr instead of printing")
	flags.StringSlice("library", nil, "shaping library file name to load (repeatable, tried in order)")
	flags.String("renderer", "", "renderer executable to look up (default \"weasyprint\")")
	flags.String("log-level", "", "log level for --log (default \"info\")")
	rootCmd.MarkFlagsMutuallyExclusive("json", "log")

	_ = settings.BindPFlag(config.KeyLibrary, flags.Lookup("library"))
	_ = settings.BindPFlag(config.KeyRenderer, flags.Lookup("renderer"))
	_ = settings.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
}

func runPDFCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(settings)
	if err != nil {
		return err
	}
	c := newChecker(cfg)

	var available bool
	switch {
	case logOutput:
		level, err := cfg.Level()
		if err != nil {
			return err
		}
		logger := logrus.New()
		logger.SetOutput(cmd.ErrOrStderr())
		logger.SetLevel(level)
		available = report.Status(report.NewLogrus(logger), c)
	case jsonOutput:
		result := c.Run()
		if err := output.PrintJSON(cmd.OutOrStdout(), result); err != nil {
			return err
		}
		available = result.Available()
	default:
		result := c.Run()
		output.PrintResult(cmd.OutOrStdout(), result)
		available = result.Available()
	}

	if !available {
		return ErrCheckFailed
	}
	return nil
}
