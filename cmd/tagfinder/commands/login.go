package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tagfinder/internal/i18n"
	"tagfinder/internal/prompt"
)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in to the gateway and save the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWire(cmd)
			if err != nil {
				return err
			}
			defer w.Close()

			out := cmd.OutOrStdout()
			session, err := w.NewLogin().Login(cmd.Context(), prompt.NewTerminal(cmd.InOrStdin(), out))
			if err != nil {
				return err
			}
			fmt.Fprintln(out, i18n.T("login.success"))
			fmt.Fprintln(out, i18n.T("login.logged_in_as", session.AccountName))
			return nil
		},
	}
}
