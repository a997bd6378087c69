// Package log wraps [log/slog] with a small, concurrency-safe logger.
//
// A [Logger] is configured once, when it is made, using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithFormat(log.FormatJSON),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// Every logging method takes typed attributes:
//
//	logger.Info("evaluated", slog.String("value", "3"))
//
// [Logger.With] returns a logger that adds attributes to every message, and
// [Logger.Wrap] returns one with different options.
//
// # Levels
//
// Levels are those of [log/slog] plus [LevelTrace], which sits below
// [LevelDebug] and is used for per-step interpreter output.
//
// # Formats
//
// [FormatText] writes key=value pairs, colorized with lipgloss unless
// [WithPretty] disables it. [FormatJSON] writes one JSON object per line.
//
// # Default logger
//
// The package-level functions such as [Info] and [TraceContext] write to a
// default logger on standard error, reconfigured with [Config].
package log
