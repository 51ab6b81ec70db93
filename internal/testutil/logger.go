// Package testutil holds small helpers shared by tests.
package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards everything, keeping test output
// free of service log lines.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
