package commands

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"tagfinder/internal/config"
	"tagfinder/internal/domain"
	"tagfinder/internal/i18n"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}
	cmd.AddCommand(configInitCmd())
	return cmd
}

func configInitCmd() *cobra.Command {
	var (
		output string
		force  bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the current settings to a config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultPath()
			if err != nil {
				return err
			}
			if output != "" {
				if path, err = config.ExpandPath(output); err != nil {
					return err
				}
			}
			if _, err := os.Stat(path); err == nil && !force {
				return &domain.ConfigError{Op: "write config", Path: path, Err: fs.ErrExist}
			}
			if err := config.WriteFile(settings, path); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("config.written", path))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "config file to write (default <user config dir>/tagfinder/tagfinder.yaml)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}
