// Package logging builds the slog logger used across the application.
package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for file logs.
const (
	MaxSizeMB  = 16
	MaxBackups = 7
	MaxAgeDays = 30
)

// Options configures New.
type Options struct {
	File    string    // rotate into this file; empty writes to Stderr
	Format  string    // "json" selects the JSON handler, anything else text
	Verbose bool      // debug level instead of info
	Quiet   bool      // warn level; ignored when Verbose
	Stderr  io.Writer // defaults to os.Stderr
}

// New returns a logger and a close func that releases the log file, if any.
func New(opts Options) (*slog.Logger, func() error) {
	level := slog.LevelInfo
	switch {
	case opts.Verbose:
		level = slog.LevelDebug
	case opts.Quiet:
		level = slog.LevelWarn
	}

	var w io.Writer = opts.Stderr
	if w == nil {
		w = os.Stderr
	}
	closer := func() error { return nil }

	if opts.File != "" {
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    MaxSizeMB,
			MaxBackups: MaxBackups,
			MaxAge:     MaxAgeDays,
		}
		w = lj
		closer = lj.Close
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if opts.Format == "json" {
		h = slog.NewJSONHandler(w, handlerOpts)
	} else {
		h = slog.NewTextHandler(w, handlerOpts)
	}
	return slog.New(h), closer
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
