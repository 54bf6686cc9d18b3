package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/otptick/pkg/display"
	"github.com/dmitrymomot/otptick/pkg/logger"
	"github.com/dmitrymomot/otptick/pkg/totp"
)

var verbose bool

// log is the process-wide logger. PersistentPreRun swaps in a debug logger
// when --verbose is set; the default stays quiet below warning level.
var log = logger.New(logger.WithLevel(slog.LevelWarn))

// newRootCommand creates the root cobra command with the given RunE function.
// All flag registration and PersistentPreRun setup is centralized here.
func newRootCommand(runFn func(*cobra.Command, []string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "otptick",
		Short: "Live TOTP codes in your terminal",
		Long: `otptick renders RFC 6238 time-based one-time passwords on a single
terminal line: the current six-digit code next to a bar counting down the
seconds until it rotates.

Running otptick with no subcommand starts a live session. The secret comes
from the TOTP_SECRET environment variable (a .env file works too); without
it, an interactive setup walks through enrolling a new account or entering
an existing secret. Nothing is ever written to disk.

Examples:
  # Live session from the environment
  TOTP_SECRET=GEZDGNBVGY3TQOJQ otptick

  # One code for scripting
  otptick generate --secret GEZDGNBVGY3TQOJQ

  # Mint a fresh secret with an enrollment QR code
  otptick secret --issuer Acme --account alice@example.com --qr`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log = logger.New(logger.WithLevel(slog.LevelDebug))
				logger.SetAsDefault(log)
			}
		},
		RunE: runFn,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging on stderr")

	return cmd
}

var rootCmd = newRootCommand(runSession)

// runSession resolves a secret and drives the live display until the user
// interrupts it.
func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadSessionConfig()
	if err != nil {
		return err
	}

	encoded := cfg.Secret
	if encoded == "" {
		encoded, err = promptSecret(cmd, cfg)
		if err != nil {
			return err
		}
	}

	secret, err := totp.ParseSecret(encoded)
	if err != nil {
		return fmt.Errorf("invalid secret: %w", err)
	}

	loop, err := display.New(secret,
		display.WithOutput(cmd.OutOrStdout()),
		display.WithPeriod(cfg.Period),
		display.WithLogger(log),
	)
	if err != nil {
		return err
	}

	// The loop never stops on its own; Ctrl+C or SIGTERM ends the session.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Debug("session ended")
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if !verbose {
			fmt.Fprintln(os.Stderr, "Hint: re-run with --verbose for more details")
		}
		os.Exit(1)
	}
}
