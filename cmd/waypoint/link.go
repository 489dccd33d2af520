package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/waypoint/internal/routes"
)

func newLinkCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link <config> <route> [key=value]...",
		Short: "Resolve a route name and parameters to a path",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLink(cmd, app, args[0], args[1], args[2:])
		},
	}

	return cmd
}

func runLink(cmd *cobra.Command, app *AppContext, path, name string, pairs []string) error {
	params, err := parseParams(pairs)
	if err != nil {
		return newCommandError("resolve link", "reading parameters", err, "Pass parameters as key=value, e.g. deviceId=42.")
	}

	nav, err := app.load("resolve link", path)
	if err != nil {
		return err
	}

	resolved, err := nav.Resolver.Resolve(name, params)
	if err != nil {
		return newCommandError("resolve link", fmt.Sprintf("resolving %q", name), err, "Run 'waypoint routes "+path+"' to list route names and their parameters.")
	}

	fmt.Fprintln(cmd.OutOrStdout(), resolved)
	return nil
}

func parseParams(pairs []string) (routes.Params, error) {
	params := routes.Params{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid parameter %q", pair)
		}
		if _, dup := params[key]; dup {
			return nil, errors.New("parameter " + key + " given twice")
		}
		params[key] = value
	}
	return params, nil
}
