// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// parseLogLevel converts a --log-level value to a slog level.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s (must be error, warn, info, or debug)", level)
	}
}

// newLogger returns a text logger writing to w.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	l, err := parseLogLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}
