package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/waypoint/internal/server"
)

type serveOptions struct {
	addr string
}

func newServeCmd(app *AppContext) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve <config>",
		Short: "Serve link resolution and layout decisions over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "127.0.0.1:8080", "Address to listen on")

	return cmd
}

func runServe(cmd *cobra.Command, app *AppContext, path string, opts *serveOptions) error {
	nav, err := app.load("serve", path)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := app.CommandLogger(cmd).ForConfig(path)
	if err := server.New(nav, log).ListenAndServe(ctx, opts.addr); err != nil {
		return newCommandError("serve", "listening on "+opts.addr, err, "Choose a free address with --addr.")
	}
	return nil
}
