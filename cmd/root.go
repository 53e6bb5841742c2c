// Package cmd defines the seitenfmt command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seiten-tools/seiten-formatter/internal/config"
	"github.com/seiten-tools/seiten-formatter/internal/logging"
	"github.com/seiten-tools/seiten-formatter/internal/pipeline"
)

var cfgFile string

// newRootCmd creates and configures the root command. Running it executes
// the whole format pipeline; there are no positional arguments.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seitenfmt",
		Short: "Formats a scripture HTML page into plain text",
		Long: `seitenfmt retrieves one HTML page, strips ruby annotations and
superscripts, extracts the paragraph text, normalizes special characters
and footnote markers, and writes the result to a UTF-8 text file.

Everything it does is driven by the settings file (url, output_file).`,
		Args: cobra.NoArgs,
		RunE: runFormat,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "settings.yaml", "settings file")

	return cmd
}

// runFormat loads settings, builds the logger, and runs the pipeline.
// Stage failures are logged and swallowed so the process exits normally.
func runFormat(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stdout, "error loading settings file: %v\n", err)
		return nil
	}

	logger, err := logging.New(cfg.Logging.Development)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // best-effort flush

	if err := pipeline.New(cfg, logger).Run(cmd.Context()); err != nil {
		logger.Error("run aborted", zap.Error(err))
	}
	return nil
}

// Execute is the main entry point.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
