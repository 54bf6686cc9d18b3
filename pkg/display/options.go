package display

import (
	"io"
	"log/slog"
	"time"
)

// Option configures the display loop.
type Option func(*config)

// WithOutput sets the writer frames are rendered to. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithClock supplies the time source the loop samples once per frame.
// Nil clocks are ignored.
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithPeriod sets the code rotation period in seconds. The period is also
// the progress bar width, one cell per second.
func WithPeriod(period int) Option {
	if period <= 0 {
		panic("WithPeriod: period must be > 0")
	}
	return func(c *config) { c.period = period }
}

// WithInterval sets the refresh cadence between frames.
func WithInterval(d time.Duration) Option {
	if d <= 0 {
		panic("WithInterval: duration must be > 0")
	}
	return func(c *config) { c.interval = d }
}

// WithLogger supplies an external slog.Logger instance. If nil, a noop logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}
