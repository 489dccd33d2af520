package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/waypoint/internal/layout"
	"github.com/alexisbeaulieu97/waypoint/internal/navctx"
	"github.com/alexisbeaulieu97/waypoint/internal/tui"
)

type previewOptions struct {
	platform string
}

func newPreviewCmd(app *AppContext) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview <config>",
		Short: "Browse a navigator interactively in the terminal",
		Long:  `Launch a terminal preview of the navigator. Resizing the terminal switches layout modes the way resizing a window would.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.platform, "platform", "web", "Platform to preview (web, ios or android)")

	return cmd
}

func runPreview(cmd *cobra.Command, app *AppContext, path string, opts *previewOptions) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return newCommandError("preview", "opening the terminal", errors.New("stdout is not a terminal"), "Run preview from an interactive terminal, or use 'waypoint layout' for scripted output.")
	}

	platform, err := layout.ParsePlatform(opts.platform)
	if err != nil {
		return newCommandError("preview", "reading --platform", err, "Use web, ios or android.")
	}

	nav, err := app.load("preview", path)
	if err != nil {
		return err
	}

	cols, rows, err := term.GetSize(fd)
	if err != nil {
		cols, rows = 80, 24
	}

	log := app.CommandLogger(cmd)
	model, err := tui.NewModel(nav, platform, cols, rows, navctx.WithLogger(log))
	if err != nil {
		return newCommandError("preview", "mounting the navigator", err, "Check the layout section of "+path+".")
	}

	log.Info("launching preview")
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error(err, "preview failed")
		return fmt.Errorf("failed to run preview: %w", err)
	}
	log.Info("preview closed")

	return nil
}
