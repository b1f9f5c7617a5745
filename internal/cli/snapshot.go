package cli

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sheen-go/sheen/internal/gallery"
	"github.com/sheen-go/sheen/snapshot"
)

var (
	colorOK    = color.New(color.FgGreen)
	colorMuted = color.New(color.FgWhite, color.Faint)
)

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("sheen %s (commit: %s)\n", Version, Commit)
		},
	}
}

func (a *App) snapshotCmd() *cobra.Command {
	var (
		out      string
		copyANSI bool
		pageName string
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render a gallery page to a PNG bitmap",
		RunE: func(_ *cobra.Command, _ []string) error {
			page, err := pageByName(pageName)
			if err != nil {
				return err
			}

			view := gallery.Frame(a.config, page, termWidth())

			if copyANSI {
				if err := clipboard.WriteAll(view); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Println(colorMuted.Sprint("copied rendered page to clipboard"))
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			defer func() { _ = f.Close() }()

			opts := snapshot.OptionsFrom(a.config.Snapshot)
			if err := snapshot.PNG(f, view, opts); err != nil {
				return fmt.Errorf("encoding %s: %w", out, err)
			}

			fmt.Println(colorOK.Sprintf("wrote %s", out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "sheen.png", "Output PNG path")
	cmd.Flags().BoolVar(&copyANSI, "copy", false, "Also copy the rendered page to the clipboard")
	cmd.Flags().StringVarP(&pageName, "page", "p", "compose", "Gallery page to render")

	return cmd
}

func pageByName(name string) (gallery.Page, error) {
	for p := gallery.PageCompose; p.String() != "unknown"; p++ {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown page %q", name)
}

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
