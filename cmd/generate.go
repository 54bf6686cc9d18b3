package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/otptick/pkg/totp"
)

var errNoSecret = errors.New("no secret configured: set TOTP_SECRET, pass --secret, or run otptick interactively")

// NewGenerateCommand prints a single current code and exits, a shape that
// suits scripts and clipboard pipelines.
func NewGenerateCommand() *cobra.Command {
	var secretFlag string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print the current code and exit",
		Long: `Generate prints the one-time code for the current time interval and exits.

The secret is taken from --secret when given, otherwise from the
TOTP_SECRET environment variable. The interval length follows
OTPTICK_PERIOD.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSessionConfig()
			if err != nil {
				return err
			}

			encoded := secretFlag
			if encoded == "" {
				encoded = cfg.Secret
			}
			if encoded == "" {
				return errNoSecret
			}

			secret, err := totp.ParseSecret(encoded)
			if err != nil {
				return fmt.Errorf("invalid secret: %w", err)
			}

			code := totp.GenerateTOTPWithPeriod(secret, time.Now(), cfg.Period)
			fmt.Fprintln(cmd.OutOrStdout(), code.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&secretFlag, "secret", "s", "", "base32 secret to generate the code from")

	return cmd
}
