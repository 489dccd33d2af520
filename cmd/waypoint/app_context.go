package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/waypoint/internal/app/navigator"
	"github.com/alexisbeaulieu97/waypoint/internal/logger"
)

// AppContext bundles long-lived services created before a command runs.
type AppContext struct {
	Log       *logger.Logger
	Navigator *navigator.Service
}

func (a *AppContext) setup(cmd *cobra.Command, flags *rootFlags) error {
	level := flags.logLevel
	if flags.verbose {
		level = "debug"
	}

	format, err := logger.ParseFormat(flags.logFormat)
	if err != nil {
		return newCommandError("start", "configuring logging", err, "Use console or json for --log-format.")
	}
	log, err := logger.New(logger.Options{Level: level, Format: format, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return newCommandError("start", "configuring logging", err, "Use one of debug, info, warn or error for --log-level.")
	}

	a.Log = log
	a.Navigator = navigator.NewService(nil, log)
	return nil
}

// CommandLogger returns a logger tagged with the command name and a fresh
// correlation id.
func (a *AppContext) CommandLogger(cmd *cobra.Command) *logger.Logger {
	return a.Log.ForCommand(cmd.CommandPath(), uuid.NewString())
}

// load parses and builds the navigator at path, wrapping failures for display.
func (a *AppContext) load(operation, path string) (*navigator.Navigator, error) {
	service := a.Navigator
	if service == nil {
		service = navigator.NewService(nil, a.Log)
	}

	nav, err := service.Load(path)
	if err != nil {
		return nil, newCommandError(operation, "loading "+path, err, "Run 'waypoint validate "+path+"' for details.")
	}
	return nav, nil
}
