package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newMatchCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <config> <url>",
		Short: "Match a deep link or path against the route table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd, app, args[0], args[1])
		},
	}

	return cmd
}

func runMatch(cmd *cobra.Command, app *AppContext, path, rawURL string) error {
	nav, err := app.load("match link", path)
	if err != nil {
		return err
	}

	inApp, ok := nav.Linking.Path(rawURL)
	if !ok {
		return newCommandError("match link", fmt.Sprintf("reading %q", rawURL), errors.New("url is not a link into this app"),
			"Accepted prefixes: "+strings.Join(nav.Linking.Prefixes, ", "))
	}

	match := nav.Registry.Match(inApp)
	out := cmd.OutOrStdout()
	if match.NotFound {
		fmt.Fprintf(out, "%s -> NotFound\n", match.Path)
		return nil
	}

	fmt.Fprintf(out, "%s -> %s (%s)\n", match.Path, match.Route.Name, match.Route.Kind)
	for _, key := range match.Route.Pattern.Params() {
		fmt.Fprintf(out, "  %s = %s\n", key, match.Params[key])
	}
	return nil
}
