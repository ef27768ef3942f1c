package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tagfinder/internal/crypto"
	"tagfinder/internal/i18n"
	"tagfinder/internal/logging"
	"tagfinder/internal/server"
)

func dashboardCmd() *cobra.Command {
	var noBrowser bool
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Serve a local map that fetches the location on demand",
		Long: `Starts a web server on localhost. Every load of /api/location makes one
fetch. A saved session is required; run 'tagfinder login' first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			title(out, i18n.T("dashboard.title"))

			key, err := crypto.LoadKeyMaterial(settings.KeyFile)
			if err != nil {
				return err
			}
			logging.Infof("loaded key %s", key.AdvKey.Base64())

			w, err := openWire(cmd)
			if err != nil {
				return err
			}
			defer w.Close()

			session, err := w.RequireSession()
			if err != nil {
				return err
			}
			logging.Infof("loaded account %s", session.AccountName)

			url := fmt.Sprintf("http://localhost:%d/", settings.Port)
			fmt.Fprintln(out, i18n.T("dashboard.serving", url))
			fmt.Fprintln(out, i18n.T("dashboard.stop_hint"))
			if !noBrowser {
				if err := openBrowser(url); err != nil {
					logging.Debugf("opening browser: %v", err)
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			deps := server.NewDeps(w.Fetcher, key, session)
			return server.Run(ctx, fmt.Sprintf("127.0.0.1:%d", settings.Port), deps)
		},
	}
	cmd.Flags().String("key-file", "", "private key PEM (default <home>/private_key.pem)")
	cmd.Flags().Int("port", 8080, "listen port")
	cmd.Flags().BoolVar(&noBrowser, "no-browser", false, "do not open a browser")
	return cmd
}
