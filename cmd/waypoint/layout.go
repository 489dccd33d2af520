package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/waypoint/internal/app/navigator"
	"github.com/alexisbeaulieu97/waypoint/internal/chrome"
	"github.com/alexisbeaulieu97/waypoint/internal/config"
	"github.com/alexisbeaulieu97/waypoint/internal/layout"
	"github.com/alexisbeaulieu97/waypoint/internal/navctx"
)

type layoutOptions struct {
	configPath string
	width      float64
	height     float64
	platform   string
	collapsed  string
	jsonOutput bool
}

func newLayoutCmd(app *AppContext) *cobra.Command {
	opts := &layoutOptions{}

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Show the layout mode and content insets for a viewport",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Navigator configuration supplying metrics and breakpoints")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "Viewport width in pixels")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "Viewport height in pixels")
	cmd.Flags().StringVar(&opts.platform, "platform", "web", "Platform (web, ios or android)")
	cmd.Flags().StringVar(&opts.collapsed, "collapsed", "", "Override the sidebar collapse state (true or false)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.MarkFlagRequired("width") //nolint:errcheck

	return cmd
}

type layoutJSONPayload struct {
	Mode                    layout.Mode     `json:"mode"`
	Collapsed               bool            `json:"collapsed"`
	Geometry                layout.Geometry `json:"geometry"`
	Margin                  string          `json:"margin"`
	Presentation            string          `json:"presentation"`
	GestureResponseDistance float64         `json:"gestureResponseDistance"`
	Chrome                  *chrome.Bar     `json:"chrome,omitempty"`
}

func runLayout(cmd *cobra.Command, app *AppContext, opts *layoutOptions) error {
	if opts.width < 0 {
		return newCommandError("compute layout", "reading --width", errors.New("width must not be negative"), "Pass the viewport width in pixels.")
	}

	platform, err := layout.ParsePlatform(opts.platform)
	if err != nil {
		return newCommandError("compute layout", "reading --platform", err, "Use web, ios or android.")
	}
	viewport := layout.Viewport{Width: opts.width, Height: opts.height, Platform: platform}

	log := app.CommandLogger(cmd)

	var (
		ctx *navctx.Context
		nav *navigator.Navigator
	)
	if opts.configPath != "" {
		if nav, err = app.load("compute layout", opts.configPath); err != nil {
			return err
		}
		if ctx, err = nav.Mount(viewport, navctx.WithLogger(log)); err != nil {
			return newCommandError("compute layout", "reading layout metrics", err, "Check the layout section of "+opts.configPath+".")
		}
	} else {
		var doc *config.Document
		env, err := doc.Environment(viewport)
		if err != nil {
			return err
		}
		ctx = navctx.New(nil, env, navctx.WithLogger(log))
	}
	defer ctx.Close()

	if opts.collapsed != "" {
		collapsed, err := strconv.ParseBool(opts.collapsed)
		if err != nil {
			return newCommandError("compute layout", "reading --collapsed", err, "Use --collapsed=true or --collapsed=false.")
		}
		ctx.SetCollapsed(collapsed)
	}

	snap := ctx.Snapshot()

	var bar *chrome.Bar
	if nav != nil {
		items := chrome.Items(nav.TabsFor(snap.Mode), "", platform, nav.ResolverFor(snap.Mode))
		built := chrome.Build(snap.Mode, snap.Collapsed, items)
		bar = &built
	}

	payload := layoutJSONPayload{
		Mode:                    snap.Mode,
		Collapsed:               snap.Collapsed,
		Geometry:                snap.Geometry,
		Margin:                  snap.Geometry.CSS(),
		Presentation:            layout.Presentation(snap.Mode),
		GestureResponseDistance: layout.GestureResponseDistance(snap.Mode, snap.Collapsed, ctx.Metrics()),
		Chrome:                  bar,
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Mode:         %s\n", payload.Mode)
	fmt.Fprintf(out, "Collapsed:    %t\n", payload.Collapsed)
	fmt.Fprintf(out, "Margin:       %s\n", payload.Margin)
	fmt.Fprintf(out, "Presentation: %s\n", payload.Presentation)
	fmt.Fprintf(out, "Back gesture: %gpx\n", payload.GestureResponseDistance)
	if bar != nil {
		fmt.Fprintln(out, "Chrome:")
		for _, item := range bar.Items {
			fmt.Fprintf(out, "  %s %s -> %s\n", valueOrFallback(item.Icon, "•"), item.Label, item.Href)
		}
	}
	return nil
}
