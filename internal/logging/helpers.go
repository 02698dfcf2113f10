package logging

import "log/slog"

// Nil-safe logging helpers. Components accept an optional *slog.Logger and
// call these instead of guarding every call site.

// Info logs at info level when a logger is present.
func Info(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn logs at warn level when a logger is present.
func Warn(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// Error logs at error level when a logger is present, appending the error
// as a structured attribute when non-nil.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, "error", err)
	}
	logger.Error(msg, args...)
}
