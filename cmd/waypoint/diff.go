package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/waypoint/internal/app/navigator"
)

type diffOptions struct {
	exitCode bool
}

func newDiffCmd(app *AppContext) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <old-config> <new-config>",
		Short: "Compare the routes and linking tables of two configurations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, app, args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.exitCode, "exit-code", false, "Exit with status 1 when the configurations differ")

	return cmd
}

func runDiff(cmd *cobra.Command, app *AppContext, beforePath, afterPath string, opts *diffOptions) error {
	before, err := app.load("compare configurations", beforePath)
	if err != nil {
		return err
	}
	after, err := app.load("compare configurations", afterPath)
	if err != nil {
		return err
	}

	changes, err := navigator.Compare(before, after)
	if err != nil {
		return newCommandError("compare configurations", "encoding linking tables", err, "Report this as a bug.")
	}

	out := cmd.OutOrStdout()
	if changes.Empty() {
		fmt.Fprintln(out, "No differences.")
		return nil
	}

	for _, route := range changes.Added {
		fmt.Fprintf(out, "+ %s %s (%s)\n", route.Name, route.Pattern, route.Kind)
	}
	for _, route := range changes.Removed {
		fmt.Fprintf(out, "- %s %s (%s)\n", route.Name, route.Pattern, route.Kind)
	}
	for _, change := range changes.Changed {
		fmt.Fprintf(out, "~ %s %s -> %s\n", change.Name, change.Before.Pattern, change.After.Pattern)
	}
	if changes.Linking != "" {
		fmt.Fprintf(out, "\n%s", changes.Linking)
	}
	fmt.Fprintf(out, "\n%d routes added, %d removed, %d changed; linking +%d -%d lines\n",
		len(changes.Added), len(changes.Removed), len(changes.Changed), changes.Stats.Added, changes.Stats.Removed)

	if opts.exitCode {
		return &exitError{code: 1}
	}
	return nil
}
