// Package display renders a live one-time password session on a single
// terminal line: the current six-digit code, grouped for readability, next
// to a progress bar that counts down the seconds left in the active
// interval.
//
// The core type is Loop which owns the render cycle and augments it with:
//
//   - Caller-driven termination – Run blocks until the supplied context is
//     cancelled, writes a final newline so the shell prompt lands on a clean
//     line, and returns ctx.Err(). The loop never decides to stop on its
//     own; signal handling belongs to the caller.
//
//   - Functional Options – Construction is done through New together with
//     Option helpers such as WithOutput, WithClock, WithPeriod and
//     WithInterval. Programmer errors (non-positive period or interval)
//     panic at construction; nil values are ignored.
//
//   - Injectable clock – WithClock replaces the time source, which makes
//     frame-by-frame behavior fully deterministic under test and defines
//     the failure mode for an unusable clock (the zero Time).
//
// # Architecture
//
// Run renders an entry frame holding the token alone, sleeps the fraction
// of a second needed to align with the wall clock, then ticks at the
// configured interval. Every tick samples the clock exactly once and
// derives both the token and the remaining-seconds count from that sample,
// so the two can never disagree about the active interval. Frames overwrite
// each other in place with a leading carriage return; the only newline is
// written on the way out.
//
// # Usage
//
//	import (
//		"context"
//		"os/signal"
//		"syscall"
//
//		"github.com/dmitrymomot/otptick/pkg/display"
//		"github.com/dmitrymomot/otptick/pkg/totp"
//	)
//
//	func main() {
//		secret, _ := totp.ParseSecret("GEZDGNBVGY3TQOJQ")
//
//		loop, err := display.New(secret)
//		if err != nil {
//			// handle error
//		}
//
//		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//		defer stop()
//
//		_ = loop.Run(ctx) // blocks until Ctrl+C
//	}
//
// # Errors
//
// New reports ErrMissingSecret for an empty secret. Run reports
// ErrAlreadyRunning for overlapping calls, ErrClockUnavailable when the
// clock source returns the zero Time, and wraps write failures with
// ErrRenderFailed. All are sentinels suitable for errors.Is; none are
// retried internally.
package display
