package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/otptick/pkg/qrcode"
	"github.com/dmitrymomot/otptick/pkg/totp"
)

// promptSecret resolves a secret interactively when the environment does not
// provide one. The happy paths mirror a first-run enrollment: either walk
// through setting up a new account, or type an existing secret with echo
// disabled.
func promptSecret(cmd *cobra.Command, cfg SessionConfig) (string, error) {
	if !isInteractive() {
		return "", errNotInteractive
	}

	out := cmd.OutOrStdout()
	reader := bufio.NewReader(cmd.InOrStdin())

	newAccount, err := promptYesNo(reader, out, "Set up a new account? [y/N]: ", false)
	if err != nil {
		return "", err
	}
	if newAccount {
		return setupAccount(reader, out, cfg)
	}

	// Hidden entry keeps the secret out of the terminal scrollback; the
	// screen is wiped afterwards for the same reason.
	fmt.Fprint(out, "Secret (base32): ")
	raw, err := readPasswordFunc(int(os.Stdin.Fd()))
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("reading secret: %w", err)
	}
	clearScreen(out)

	return string(raw), nil
}

// setupAccount walks through enrolling a brand-new account: label and
// account name, a minted or typed secret, the enrollment URI, and an
// optional QR code.
func setupAccount(reader *bufio.Reader, out io.Writer, cfg SessionConfig) (string, error) {
	label, err := promptLine(reader, out, "Label (e.g. GitHub): ")
	if err != nil {
		return "", err
	}
	account, err := promptLine(reader, out, "Account (e.g. mail@example.com): ")
	if err != nil {
		return "", err
	}

	autoGenerate, err := promptYesNo(reader, out, "Auto-generate secret? [Y/n]: ", true)
	if err != nil {
		return "", err
	}

	var encoded string
	if autoGenerate {
		encoded, err = totp.GenerateSecret(totp.DefaultSecretLength)
		if err != nil {
			return "", err
		}
	} else {
		encoded, err = promptLine(reader, out, "Secret (base32): ")
		if err != nil {
			return "", err
		}
	}

	// Normalize before building the URI so a hand-typed secret in any
	// accepted form enrolls cleanly.
	secret, err := totp.ParseSecret(encoded)
	if err != nil {
		return "", fmt.Errorf("invalid secret: %w", err)
	}
	canonical := secret.Encode()

	if autoGenerate {
		fmt.Fprintf(out, "\nSecret: %s\n", canonical)
		fmt.Fprintln(out, "Store it somewhere safe; nothing is persisted.")
	}

	// The label doubles as the issuer, the convention authenticator apps
	// show enrollments under.
	uri, err := totp.GetTOTPURI(totp.TOTPParams{
		Secret:      canonical,
		AccountName: account,
		Issuer:      label,
		Period:      cfg.Period,
	})
	if err != nil {
		return "", err
	}
	fmt.Fprintf(out, "\n%s\n", uri)

	showQR, err := promptYesNo(reader, out, "Show QR code? [y/N]: ", false)
	if err != nil {
		return "", err
	}
	if showQR {
		art, err := qrcode.Terminal(uri)
		if err != nil {
			return "", err
		}
		clearScreen(out)
		fmt.Fprintln(out, art)
	}

	return canonical, nil
}

// promptLine prints a prompt and reads one trimmed line. EOF yields
// whatever was typed before it; required-field validation happens
// downstream.
func promptLine(reader *bufio.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptYesNo asks a yes/no question; an empty answer takes the default,
// anything unrecognized does too.
func promptYesNo(reader *bufio.Reader, out io.Writer, prompt string, defaultYes bool) (bool, error) {
	answer, err := promptLine(reader, out, prompt)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}
	return defaultYes, nil
}

// clearScreen wipes the terminal before or after sensitive output.
func clearScreen(out io.Writer) {
	fmt.Fprint(out, "\x1b[2J\x1b[H")
}
