package cmd

import (
	"fmt"

	"codedigest/pkg/config"
	"codedigest/pkg/logging"
	"codedigest/pkg/report"
	"codedigest/pkg/selector"
	"codedigest/pkg/version"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// runReport resolves the options, sets up logging and generates the report.
func runReport(cmd *cobra.Command, v *viper.Viper, args []string) error {
	opts, err := config.Load(v, args)
	if err != nil {
		return fmt.Errorf("error reading flags: %w", err)
	}

	if err := logging.Setup(opts.Debug, version.AppName, version.Get().Version); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger := logging.Logger

	// Usage is only useful for argument errors, which cobra reports before RunE.
	cmd.SilenceUsage = true

	logger.Debug("Resolved options",
		zap.String("root", opts.Root),
		zap.String("output", opts.Output))

	summary, err := report.New(logger, selector.New(logger)).Generate(opts.Root, opts.Output)
	if err != nil {
		logger.Error("Failed to generate report", zap.Error(err))
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Done! Output written to %s\n", summary.Output)
	return nil
}
