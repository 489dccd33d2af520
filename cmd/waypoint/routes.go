package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/waypoint/internal/app/navigator"
)

type routesOptions struct {
	jsonOutput bool
}

func newRoutesCmd(app *AppContext) *cobra.Command {
	opts := &routesOptions{}

	cmd := &cobra.Command{
		Use:   "routes <config>",
		Short: "List every route a navigator registers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nav, err := app.load("list routes", args[0])
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return renderRoutesJSON(cmd, nav)
			}
			return renderRoutesTable(cmd, nav)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderRoutesTable(cmd *cobra.Command, nav *navigator.Navigator) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "NAME\tKIND\tCONTAINER\tPATTERN\tPARAMS")
	for _, route := range nav.Registry.Routes() {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			route.Name,
			route.Kind,
			valueOrFallback(route.Container, "-"),
			route.Pattern,
			valueOrFallback(strings.Join(route.Pattern.Params(), ","), "-"),
		)
	}

	return writer.Flush()
}

type routeJSON struct {
	Name      string   `json:"name"`
	Kind      string   `json:"kind"`
	Tab       string   `json:"tab,omitempty"`
	Container string   `json:"container,omitempty"`
	Pattern   string   `json:"pattern"`
	Params    []string `json:"params,omitempty"`
}

type routesJSONPayload struct {
	Config string      `json:"config"`
	Count  int         `json:"count"`
	Routes []routeJSON `json:"routes"`
}

func renderRoutesJSON(cmd *cobra.Command, nav *navigator.Navigator) error {
	all := nav.Registry.Routes()
	payload := routesJSONPayload{
		Config: nav.Path,
		Count:  len(all),
		Routes: make([]routeJSON, len(all)),
	}

	for i, route := range all {
		payload.Routes[i] = routeJSON{
			Name:      route.Name,
			Kind:      string(route.Kind),
			Tab:       route.Tab,
			Container: route.Container,
			Pattern:   route.Pattern.String(),
			Params:    route.Pattern.Params(),
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func valueOrFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
