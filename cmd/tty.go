package cmd

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// isTerminalFunc checks whether the given file descriptor is a terminal.
// It is a variable so tests can override it.
var isTerminalFunc = func(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// readPasswordFunc reads a line from the file descriptor without echoing it.
// It is a variable so tests can override it.
var readPasswordFunc = func(fd int) ([]byte, error) {
	return term.ReadPassword(fd)
}

// isInteractive reports whether stdin is connected to a terminal.
func isInteractive() bool {
	return isTerminalFunc(os.Stdin.Fd())
}

// errNotInteractive is returned when the secret must be asked for but no
// terminal is attached to stdin.
var errNotInteractive = errors.New("no secret configured: set TOTP_SECRET or run in an interactive terminal")
