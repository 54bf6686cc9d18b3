package cmd

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/dmitrymomot/otptick/pkg/totp"
)

const testSecret = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

// codeAround computes the expected code for now with some tolerance: the
// wall clock may cross an interval boundary between the expectation and the
// command run, so both neighbours are acceptable.
func codeAround(t *testing.T, encoded string, period int, run func() string) {
	t.Helper()

	secret, err := totp.ParseSecret(encoded)
	if err != nil {
		t.Fatalf("parse secret: %v", err)
	}

	before := totp.GenerateTOTPWithPeriod(secret, time.Now(), period).String()
	got := run()
	after := totp.GenerateTOTPWithPeriod(secret, time.Now(), period).String()

	if got != before && got != after {
		t.Errorf("code = %q, want %q or %q", got, before, after)
	}
}

func TestGenerateCommand_SecretFromEnv(t *testing.T) {
	t.Setenv("TOTP_SECRET", testSecret)
	t.Setenv("OTPTICK_PERIOD", "30")

	codeAround(t, testSecret, 30, func() string {
		output, err := executeCommand(NewGenerateCommand())
		if err != nil {
			t.Fatalf("command failed: %v", err)
		}
		if !regexp.MustCompile(`^\d{6}\n$`).MatchString(output) {
			t.Fatalf("output %q is not a six-digit code line", output)
		}
		return strings.TrimSuffix(output, "\n")
	})
}

func TestGenerateCommand_SecretFlag(t *testing.T) {
	t.Setenv("TOTP_SECRET", "")
	t.Setenv("OTPTICK_PERIOD", "30")

	codeAround(t, testSecret, 30, func() string {
		output, err := executeCommand(NewGenerateCommand(), "--secret", testSecret)
		if err != nil {
			t.Fatalf("command failed: %v", err)
		}
		return strings.TrimSuffix(output, "\n")
	})
}

func TestGenerateCommand_FlagOverridesEnv(t *testing.T) {
	// A bogus environment secret must lose to the flag.
	t.Setenv("TOTP_SECRET", "not-base32!")

	output, err := executeCommand(NewGenerateCommand(), "--secret", testSecret)
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !regexp.MustCompile(`^\d{6}\n$`).MatchString(output) {
		t.Errorf("output %q is not a six-digit code line", output)
	}
}

func TestGenerateCommand_PeriodFromEnv(t *testing.T) {
	t.Setenv("TOTP_SECRET", testSecret)
	t.Setenv("OTPTICK_PERIOD", "60")

	codeAround(t, testSecret, 60, func() string {
		output, err := executeCommand(NewGenerateCommand())
		if err != nil {
			t.Fatalf("command failed: %v", err)
		}
		return strings.TrimSuffix(output, "\n")
	})
}

func TestGenerateCommand_NoSecret(t *testing.T) {
	t.Setenv("TOTP_SECRET", "")

	_, err := executeCommand(NewGenerateCommand())
	if !errors.Is(err, errNoSecret) {
		t.Errorf("err = %v, want errNoSecret", err)
	}
}

func TestGenerateCommand_InvalidSecret(t *testing.T) {
	t.Setenv("TOTP_SECRET", "")

	_, err := executeCommand(NewGenerateCommand(), "--secret", "not-base32!")
	if err == nil || !strings.Contains(err.Error(), "invalid secret") {
		t.Errorf("err = %v, want invalid secret error", err)
	}
	if !errors.Is(err, totp.ErrInvalidSecret) {
		t.Errorf("err = %v, want totp.ErrInvalidSecret in chain", err)
	}
}

func TestGenerateCommand_InvalidPeriod(t *testing.T) {
	t.Setenv("TOTP_SECRET", testSecret)
	t.Setenv("OTPTICK_PERIOD", "0")

	_, err := executeCommand(NewGenerateCommand())
	if err == nil || !strings.Contains(err.Error(), "OTPTICK_PERIOD") {
		t.Errorf("err = %v, want period validation error", err)
	}
}
