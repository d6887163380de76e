package cmd

import (
	"codedigest/pkg/version"

	"github.com/spf13/cobra"
)

// setVersion enables the --version flag, which prints the full build information.
func setVersion(cmd *cobra.Command, info version.Info) {
	cmd.Version = info.Version
	cmd.SetVersionTemplate(info.String() + "\n")
}
