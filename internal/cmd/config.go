package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gravitrone/designkit/internal/config"
	"github.com/gravitrone/designkit/internal/ui/components"
)

// ConfigCmd returns the `designkit config` command group.
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage preferences",
	}
	cmd.AddCommand(configInitCmd())
	cmd.AddCommand(configShowCmd())
	return cmd
}

func configInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := config.Path()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("stat config: %w", err)
			}
			if err := config.Default().Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config")
	return cmd
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadOrDefault()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			layoutPath := cfg.Layout
			if layoutPath == "" {
				layoutPath = "(built-in)"
			}
			logFile := cfg.LogFile
			if logFile == "" {
				logFile = "(disabled)"
			}
			rows := []components.TableRow{
				{Label: "path", Value: config.Path()},
				{Label: "theme", Value: cfg.Theme},
				{Label: "tab_variant", Value: string(cfg.TabVariant)},
				{Label: "vim_keys", Value: strconv.FormatBool(cfg.VimKeys)},
				{Label: "layout", Value: layoutPath},
				{Label: "log_level", Value: cfg.LogLevel},
				{Label: "log_file", Value: logFile},
			}
			fmt.Fprintln(cmd.OutOrStdout(), components.Table("Config", rows, 100))
			return nil
		},
	}
}
