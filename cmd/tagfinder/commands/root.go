package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tagfinder/internal/app"
	"tagfinder/internal/config"
	"tagfinder/internal/i18n"
	"tagfinder/internal/logging"
)

var (
	home       string
	configFile string
	gatewayURL string
	verbose    bool

	settings config.Config
)

// NewRootCmd builds the command tree. Each call resets flag state.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "tagfinder",
		Short:        "Locate a custom Find My tracker",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(cmd.Flags(), configFile)
			if err != nil {
				return err
			}
			settings = c
			logging.SetDebug(settings.Verbose)
			i18n.Init(settings.Language)
			logging.Debugf("home %s, gateway %s", settings.Home, settings.Gateway)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "state dir (default ~/.tagfinder)")
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default <user config dir>/tagfinder/tagfinder.yaml)")
	root.PersistentFlags().StringVar(&gatewayURL, "gateway", "", "gateway base URL (e.g. http://127.0.0.1:6969)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		fetchCmd(),
		loginCmd(),
		dashboardCmd(),
		keygenCmd(),
		advkeyCmd(),
		historyCmd(),
		configCmd(),
	)
	return root
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

func openWire(cmd *cobra.Command) (*app.Wire, error) {
	return app.NewWire(cmd.Context(), app.FromSettings(settings))
}
