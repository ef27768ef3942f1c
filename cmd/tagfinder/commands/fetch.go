package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tagfinder/internal/crypto"
	"tagfinder/internal/domain"
	"tagfinder/internal/i18n"
	"tagfinder/internal/logging"
	"tagfinder/internal/prompt"
	"tagfinder/internal/services/location"
)

func fetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the tracker's latest location once",
		Long: `Loads the tracker key, logs in if no session is saved, and asks the gateway
for the latest location report. A tracker with no reports yet is not an error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			title(out, i18n.T("fetch.title"))

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

			session, err := w.Sessions.LoadSession()
			switch {
			case errors.Is(err, domain.ErrNoSession):
				fmt.Fprintln(out, i18n.T("login.no_session"))
				session, err = w.NewLogin().Login(cmd.Context(), prompt.NewTerminal(cmd.InOrStdin(), out))
				if err != nil {
					return err
				}
				fmt.Fprintln(out, i18n.T("login.success"))
			case err != nil:
				return err
			}
			fmt.Fprintln(out, i18n.T("login.logged_in_as", session.AccountName))
			fmt.Fprintln(out)
			fmt.Fprintln(out, i18n.T("fetch.fetching"))

			outcome, _, err := w.Fetcher.Fetch(cmd.Context(), session, key)
			if err != nil {
				return fmt.Errorf("saving fetch state: %w", err)
			}

			fmt.Fprintln(out)
			rule(out)
			switch outcome.Kind {
			case domain.OutcomeFound:
				fmt.Fprintln(out, goodStyle.Render(i18n.T("fetch.found")))
				rule(out)
				printReport(out, outcome.Report)
				fmt.Fprintln(out)
				fmt.Fprintln(out, i18n.T("fetch.saved_to", w.Reports.Path()))
			case domain.OutcomeNotFound:
				fmt.Fprintln(out, badStyle.Render(i18n.T("fetch.not_found")))
				fmt.Fprintln(out)
				fmt.Fprintln(out, i18n.T("fetch.not_found_hints"))
			}
			return location.Err(outcome)
		},
	}
	cmd.Flags().String("key-file", "", "private key PEM (default <home>/private_key.pem)")
	return cmd
}
