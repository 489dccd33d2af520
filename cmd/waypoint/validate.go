package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newValidateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <config>...",
		Short: "Validate navigator configurations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, app, args)
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command, app *AppContext, paths []string) error {
	log := app.CommandLogger(cmd)
	useUnicode := supportsUnicode(cmd.OutOrStdout())

	for _, path := range paths {
		nav, err := app.load("validate", path)
		if err != nil {
			log.Error(err, "validation failed")
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d routes (%d tabs, %d modals)\n",
			okMark(useUnicode),
			path,
			nav.Registry.Len(),
			len(nav.Topology.Tabs),
			len(nav.Topology.Modals),
		)
	}

	return nil
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func okMark(useUnicode bool) string {
	if useUnicode {
		return "✓"
	}
	return "[OK]"
}
