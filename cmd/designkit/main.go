package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gravitrone/designkit/internal/cmd"
	"github.com/gravitrone/designkit/internal/config"
	"github.com/gravitrone/designkit/internal/logger"
	"github.com/gravitrone/designkit/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var layoutPath string
	root := &cobra.Command{
		Use:   "designkit",
		Short: "designkit - terminal component preview",
		Long:  "designkit previews accessible tab groups, badges, typography and stacks in the terminal.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(layoutPath)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().StringVarP(&layoutPath, "file", "f", "", "layout file (defaults to the configured layout)")

	root.AddCommand(cmd.RenderCmd())
	root.AddCommand(cmd.ConfigCmd())
	return root
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func runTUI(layoutPath string) error {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return err
	}

	log, err := logger.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Close()

	l, err := cmd.ResolveLayout(layoutPath, cfg)
	if err != nil {
		return err
	}
	if layoutPath == "" {
		layoutPath = cfg.Layout
	}
	log.Info("starting preview", "layout", layoutPath, "groups", len(l.Groups))

	app := ui.NewApp(cfg, l, log).WithLayoutPath(layoutPath)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
