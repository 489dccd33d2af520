package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type linkingOptions struct {
	format string
}

func newLinkingCmd(app *AppContext) *cobra.Command {
	opts := &linkingOptions{}

	cmd := &cobra.Command{
		Use:   "linking <config>",
		Short: "Print the deep-link configuration handed to the navigation runtime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLinking(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "Output format (json or yaml)")

	return cmd
}

func runLinking(cmd *cobra.Command, app *AppContext, path string, opts *linkingOptions) error {
	nav, err := app.load("print linking", path)
	if err != nil {
		return err
	}

	switch opts.format {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(nav.Linking)
	case "yaml":
		encoder := yaml.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent(2)
		if err := encoder.Encode(nav.Linking); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return newCommandError("print linking", fmt.Sprintf("choosing format %q", opts.format), errors.New("unsupported format"), "Use --format json or --format yaml.")
	}
}
