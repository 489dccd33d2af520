package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose   bool
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "waypoint",
		Short:         "Waypoint builds responsive navigation route tables from declarative configs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd, flags)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "console", "Log format (console, json)")

	cmd.AddCommand(newValidateCmd(app))
	cmd.AddCommand(newRoutesCmd(app))
	cmd.AddCommand(newLinkingCmd(app))
	cmd.AddCommand(newLinkCmd(app))
	cmd.AddCommand(newMatchCmd(app))
	cmd.AddCommand(newLayoutCmd(app))
	cmd.AddCommand(newDiffCmd(app))
	cmd.AddCommand(newPreviewCmd(app))
	cmd.AddCommand(newServeCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
