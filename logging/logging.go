// Package logging builds the structured session logger.
//
// Output goes nowhere unless enabled: a full-screen session owns stdout and
// stderr, so diagnostics are written to a rotated file instead.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lixenwraith/easyterm/config"
)

// Discard returns a logger that drops every record
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// New builds a logger from cfg. The returned close func releases the file
// sink and is never nil.
func New(cfg config.Log) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }
	if !cfg.Enabled {
		return Discard(), noop, nil
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, noop, err
	}

	if cfg.File == "" {
		return nil, noop, fmt.Errorf("logging enabled without a file")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return nil, noop, fmt.Errorf("create log dir: %w", err)
	}

	sink := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}
	handler := slog.NewTextHandler(sink, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("pid", os.Getpid()), sink.Close, nil
}

// ParseLevel maps a config level name to a slog level
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelDebug, fmt.Errorf("unknown log level %q", name)
	}
}
