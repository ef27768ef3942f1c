package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"tagfinder/internal/config"
	"tagfinder/internal/crypto"
	"tagfinder/internal/i18n"
	"tagfinder/internal/logging"
)

func keygenCmd() *cobra.Command {
	var (
		output string
		force  bool
		copyIt bool
	)
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a P-224 key pair for a tracker",
		Long: `Writes an unencrypted PKCS8 PEM private key and prints the advertisement
key as base64 and as a C array for the tracker firmware.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			title(out, i18n.T("keygen.title"))

			path := settings.KeyFile
			if output != "" {
				p, err := config.ExpandPath(output)
				if err != nil {
					return err
				}
				path = p
			}

			priv, err := crypto.GenerateKey()
			if err != nil {
				return err
			}
			key, err := crypto.KeyMaterialFromPrivate(priv)
			if err != nil {
				return err
			}
			if err := crypto.WriteKeyFile(path, priv, force); err != nil {
				return err
			}

			fmt.Fprintln(out, i18n.T("keygen.generated"))
			fmt.Fprintln(out)
			printKey(out, key)
			section(out, i18n.T("keygen.private_saved", path))
			fmt.Fprintln(out, i18n.T("keygen.keep_safe"))

			if copyIt {
				if err := clipboard.WriteAll(key.AdvKey.Base64()); err != nil {
					logging.Warnf("clipboard: %v", err)
				} else {
					fmt.Fprintln(out, i18n.T("keygen.copied"))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "where to write the private key (default <home>/private_key.pem)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing key file")
	cmd.Flags().BoolVar(&copyIt, "copy", false, "copy the advertisement key to the clipboard")
	return cmd
}
