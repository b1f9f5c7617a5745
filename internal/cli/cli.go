// Package cli wires the sheen gallery and snapshot tooling into a cobra
// command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/sheen-go/sheen/internal/gallery"
	"github.com/sheen-go/sheen/settings"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *settings.Config
	root   *cobra.Command
}

// NewApp creates the CLI application with the given config.
func NewApp(cfg *settings.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "sheen",
		Short: "A gallery for the sheen view helpers",
		Long: `Sheen is a convenience layer over lipgloss views: composition helpers,
framing, opacity and visual state effects, border overlays, and motion
presets.

Run without arguments to browse the interactive gallery.`,
		// Flags are parsed by the time PersistentPreRun fires, so the
		// accessibility preference is published after --reduced-motion lands.
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			settings.SetReducedMotion(a.config.Motion.ReducedMotion)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return gallery.Run(a.config)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.config.Motion.ReducedMotion,
		"reduced-motion", a.config.Motion.ReducedMotion, "Disable animations")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.snapshotCmd())

	return a
}

// Execute runs the root command.
func (a *App) Execute() error {
	return a.root.Execute()
}
