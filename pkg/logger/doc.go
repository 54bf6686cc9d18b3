// Package logger provides a thin factory around Go's slog package with
// functional options for configuration.
//
// The package standardises structured logging across the tool by exposing a
// single factory – New – that creates a *slog.Logger configured by a set of
// Option functions. These options allow you to:
//
//   - Select an output format (text or json)
//   - Set the minimum log level
//   - Supply default slog.Attr values applied to every record
//   - Redirect output to any io.Writer
//
// Defaults suit an interactive terminal tool: human-readable text at INFO
// level written to stderr, keeping stdout free for the rendered code line.
//
// # Usage
//
//	import "github.com/dmitrymomot/otptick/pkg/logger"
//
//	func main() {
//	    log := logger.New(
//	        logger.WithLevel(slog.LevelDebug),
//	        logger.WithAttr(slog.String("component", "display")),
//	    )
//	    logger.SetAsDefault(log)
//
//	    log.Debug("session started")
//	}
//
// # Configuration
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter – override output format.
//   - WithLevel – set a custom slog.Level.
//   - WithOutput – redirect output; nil writers are ignored.
//   - WithAttr – attach static attributes.
//   - WithHandlerOptions – full control over the underlying slog handler.
//
// WithFormat panics on unknown formats so misconfiguration surfaces at
// startup instead of producing silent fallback behavior.
package logger
