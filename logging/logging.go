// Package logging provides the process-wide structured logger
// Records go to a size-rotated file; with no log directory they are discarded,
// since the terminal itself is owned by the UI
package logging

import (
	"io"
	"log/slog"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Component constants for structured logging
const (
	CompApp      = "app"
	CompTerminal = "terminal"
	CompBell     = "bell"
	CompConfig   = "config"
)

// FileName is the log file created inside Config.Dir
const FileName = "tuikit.log"

// Config holds logging configuration
type Config struct {
	// Dir is the directory for the log file; empty disables logging unless Debug
	Dir string `toml:"dir"`

	// Level is the minimum level: "debug", "info", "warn", "error"
	Level string `toml:"level"`

	// Format is "json" (default) or "text"
	Format string `toml:"format"`

	// MaxSizeMB is the size before rotation (default: 10)
	MaxSizeMB int `toml:"max_size_mb"`

	// MaxBackups is rotated files to keep (default: 3)
	MaxBackups int `toml:"max_backups"`

	// MaxAgeDays is days to keep rotated files (default: 7)
	MaxAgeDays int `toml:"max_age_days"`

	// Compress rotated files
	Compress bool `toml:"compress"`

	// Debug forces logging to the current directory when Dir is empty
	Debug bool `toml:"-"`
}

var (
	globalLogger *slog.Logger
	globalMu     sync.RWMutex
	lumberjackW  *lumberjack.Logger
)

// ParseLevel maps a level name to slog, defaulting to info
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Init initializes the global logger, replacing any previous one
func Init(cfg Config) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if lumberjackW != nil {
		lumberjackW.Close()
		lumberjackW = nil
	}

	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = 3
	}
	if cfg.MaxAgeDays <= 0 {
		cfg.MaxAgeDays = 7
	}

	level := ParseLevel(cfg.Level)
	if cfg.Debug {
		level = slog.LevelDebug
	}

	if !cfg.Debug && cfg.Dir == "" {
		globalLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return
	}

	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	lumberjackW = &lumberjack.Logger{
		Filename:   filepath.Join(dir, FileName),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(lumberjackW, opts)
	} else {
		handler = slog.NewJSONHandler(lumberjackW, opts)
	}
	globalLogger = slog.New(handler)
}

// Logger returns the global logger. Safe to call before Init (discards)
func Logger() *slog.Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if globalLogger == nil {
		return slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return globalLogger
}

// ForComponent returns a sub-logger with the component field set
func ForComponent(name string) *slog.Logger {
	return Logger().With(slog.String("component", name))
}

// Shutdown closes the log file
func Shutdown() {
	globalMu.Lock()
	defer globalMu.Unlock()

	if lumberjackW != nil {
		lumberjackW.Close()
		lumberjackW = nil
	}
	globalLogger = nil
}
