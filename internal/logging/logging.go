// Package logging builds the slog loggers shared by the CLI and the desktop app.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/goerr/v2"
)

// ErrUnknownLevel is returned for a level name ParseLevel does not accept.
var ErrUnknownLevel = goerr.New("unknown log level")

// ParseLevel maps debug, info, warn or error to a slog level. Empty means info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, goerr.Wrap(ErrUnknownLevel, "cannot parse log level", goerr.V("level", name))
	}
}

// New returns a logger writing to w through a clog handler.
func New(w io.Writer, level string, color bool) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	handler := clog.New(
		clog.WithWriter(w),
		clog.WithLevel(lvl),
		clog.WithColor(color),
	)
	return slog.New(handler), nil
}

