package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravitrone/designkit/internal/config"
	"github.com/gravitrone/designkit/internal/layout"
	"github.com/gravitrone/designkit/internal/ui"
)

// RenderCmd returns the `designkit render` command.
func RenderCmd() *cobra.Command {
	var (
		file  string
		aria  bool
		width int
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a layout without starting the TUI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if width <= 0 {
				return fmt.Errorf("width must be positive, got %d", width)
			}
			cfg, err := config.LoadOrDefault()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			l, err := ResolveLayout(file, cfg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Snapshot(cfg, l, width, aria))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "layout file (defaults to the configured layout)")
	cmd.Flags().BoolVar(&aria, "aria", false, "print the accessibility attributes instead of the tabs")
	cmd.Flags().IntVarP(&width, "width", "w", 100, "render width in cells")
	return cmd
}

// ResolveLayout loads path, else the configured layout, else the built-in one.
func ResolveLayout(path string, cfg *config.Config) (*layout.Layout, error) {
	if path == "" && cfg != nil {
		path = cfg.Layout
	}
	if path == "" {
		return layout.Default(), nil
	}
	l, err := layout.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load layout: %w", err)
	}
	return l, nil
}
