package display

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/otptick/pkg/totp"
)

type config struct {
	output   io.Writer
	clock    func() time.Time
	period   int
	interval time.Duration
	logger   *slog.Logger
}

func defaultConfig() *config {
	return &config{
		output:   os.Stdout,
		clock:    time.Now,
		period:   totp.DefaultPeriod,
		interval: time.Second,
	}
}

// Loop renders a live one-time password on a single terminal line: the
// current code beside a progress bar counting down the active interval.
// A Loop never terminates on its own; cancel the context passed to Run.
type Loop struct {
	cfg     *config
	secret  totp.Secret
	running atomic.Bool
}

// New returns a configured Loop for the given secret.
func New(secret totp.Secret, opts ...Option) (*Loop, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSecret
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = newNoopLogger()
	}
	return &Loop{cfg: cfg, secret: secret}, nil
}

// Run blocks and keeps the rendered line current until ctx is done, then
// writes a trailing newline and returns ctx.Err(). A second Run while one is
// in flight returns ErrAlreadyRunning. A clock source producing the zero
// Time returns ErrClockUnavailable; write failures return ErrRenderFailed.
// None of these are retried.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer l.running.Store(false)

	cfg := l.cfg

	now := cfg.clock()
	if now.IsZero() {
		return ErrClockUnavailable
	}

	cfg.logger.Debug("display loop started",
		slog.Int("period", cfg.period),
		slog.Duration("interval", cfg.interval))

	// The entry frame shows the token alone; the bar joins on the first
	// aligned tick.
	code := totp.GenerateTOTPWithPeriod(l.secret, now, cfg.period)
	if err := l.render(code.Formatted()); err != nil {
		return err
	}

	// Land subsequent frames on whole-second boundaries so the countdown
	// moves in lockstep with the wall clock.
	align := time.NewTimer(time.Second - time.Duration(now.Nanosecond()))
	defer align.Stop()
	select {
	case <-ctx.Done():
		return l.finish(ctx)
	case <-align.C:
	}

	ticker := time.NewTicker(cfg.interval)
	defer ticker.Stop()

	for {
		// One clock sample drives both the token and the countdown, so a
		// frame can never pair a token with the bar of a different interval.
		now := cfg.clock()
		if now.IsZero() {
			return ErrClockUnavailable
		}
		code := totp.GenerateTOTPWithPeriod(l.secret, now, cfg.period)
		remaining := totp.Remaining(now, cfg.period)
		if err := l.render(code.Formatted() + "\t" + l.bar(remaining)); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return l.finish(ctx)
		case <-ticker.C:
		}
	}
}

// render overwrites the current terminal line in place.
func (l *Loop) render(frame string) error {
	if _, err := fmt.Fprint(l.cfg.output, "\r"+frame); err != nil {
		return errors.Join(ErrRenderFailed, err)
	}
	return nil
}

// bar draws the interval as one cell per second, elapsed cells filled.
func (l *Loop) bar(remaining int) string {
	filled := l.cfg.period - remaining
	return "|" + strings.Repeat("█", filled) + strings.Repeat("-", remaining) + "|"
}

// finish leaves the shell prompt on a fresh line.
func (l *Loop) finish(ctx context.Context) error {
	_, _ = fmt.Fprintln(l.cfg.output)
	l.cfg.logger.Debug("display loop stopped")
	return ctx.Err()
}
