package commands

import (
	"github.com/spf13/cobra"

	"tagfinder/internal/crypto"
)

func advkeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "advkey",
		Short: "Print the advertisement key of an existing key file",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := crypto.LoadKeyMaterial(settings.KeyFile)
			if err != nil {
				return err
			}
			printKey(cmd.OutOrStdout(), key)
			return nil
		},
	}
	cmd.Flags().String("key-file", "", "private key PEM (default <home>/private_key.pem)")
	return cmd
}
