package testutil

import (
	"bytes"
	"log/slog"
)

// NewBufferLogger returns a slog logger writing to an in-memory buffer plus
// the buffer for assertions. Debug is enabled so provider-level trace lines
// are capturable too.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, &buf
}
