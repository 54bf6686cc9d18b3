package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/otptick/pkg/qrcode"
	"github.com/dmitrymomot/otptick/pkg/totp"
)

// NewSecretCommand mints a fresh base32 secret and, when an account is
// named, the matching enrollment URI and QR code.
func NewSecretCommand() *cobra.Command {
	var (
		length  int
		issuer  string
		account string
		showQR  bool
	)

	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Generate a new base32 secret",
		Long: `Secret generates a random base32 secret suitable for authenticator
enrollment.

With --account (and optionally --issuer, which falls back to
OTPTICK_ISSUER) it also prints the otpauth:// URI, and with --qr a
scannable QR code. Nothing is persisted; record the secret yourself.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSessionConfig()
			if err != nil {
				return err
			}

			encoded, err := totp.GenerateSecret(length)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, encoded)

			if account == "" {
				if showQR {
					return errors.New("--qr requires --account")
				}
				return nil
			}

			if issuer == "" {
				issuer = cfg.Issuer
			}

			uri, err := totp.GetTOTPURI(totp.TOTPParams{
				Secret:      encoded,
				AccountName: account,
				Issuer:      issuer,
				Period:      cfg.Period,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(out, uri)

			if showQR {
				art, err := qrcode.Terminal(uri)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, art)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", totp.DefaultSecretLength, "secret length in base32 characters")
	cmd.Flags().StringVar(&issuer, "issuer", "", "issuer for the enrollment URI (defaults to OTPTICK_ISSUER)")
	cmd.Flags().StringVar(&account, "account", "", "account name for the enrollment URI")
	cmd.Flags().BoolVar(&showQR, "qr", false, "render the enrollment URI as a terminal QR code")

	return cmd
}
