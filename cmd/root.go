package cmd

import (
	"fmt"

	"codedigest/pkg/config"
	"codedigest/pkg/version"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the codedigest command with its flags bound to a fresh viper instance.
func NewRootCmd() *cobra.Command {
	v := config.NewViper()

	rootCmd := &cobra.Command{
		Use:   "codedigest <root>",
		Short: "Codedigest writes the structure and content of a codebase's important files to one report",
		Long: `Codedigest scans a source tree, keeps the files that look like real code
(known extension, reasonable size, containing a function, class, def or import)
and writes a pruned directory tree followed by the content of every kept file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, v, args)
		},
	}

	flags := rootCmd.Flags()
	flags.StringP(config.KeyOutput, "o", config.DefaultOutput, "Output text file")
	flags.Bool(config.KeyDebug, false, "Enable debug logging, including the verdict for every file")
	if err := v.BindPFlags(flags); err != nil {
		panic(fmt.Sprintf("binding flags: %v", err))
	}

	setVersion(rootCmd, version.Get())
	return rootCmd
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
