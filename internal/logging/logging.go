// Package logging fans runtime events out to charmbracelet/log sinks.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	charmLog "github.com/charmbracelet/log"
)

// Options configures a Logger.
type Options struct {
	Console io.Writer // styled text sink, usually stderr
	Prefix  string
	Level   string
	File    string // optional logfmt sink; empty disables it
}

// Logger writes every event to a console sink and an optional file sink.
// A nil *Logger is valid and drops everything.
type Logger struct {
	sinks          []*charmLog.Logger
	consoleSink    *charmLog.Logger
	consoleEnabled bool
	closeFile      func() error
	filePath       string
}

// New builds a Logger from opts.
func New(opts Options) (*Logger, error) {
	level := strings.TrimSpace(opts.Level)
	if level == "" {
		level = "info"
	}
	lvl, err := charmLog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse logging level %q: %w", opts.Level, err)
	}
	console := opts.Console
	if console == nil {
		console = io.Discard
	}

	consoleLogger := charmLog.NewWithOptions(console, charmLog.Options{
		Level:           lvl,
		Prefix:          opts.Prefix,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Formatter:       charmLog.TextFormatter,
	})
	l := &Logger{
		sinks:          []*charmLog.Logger{consoleLogger},
		consoleSink:    consoleLogger,
		consoleEnabled: true,
	}

	path := strings.TrimSpace(opts.File)
	if path == "" {
		return l, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	// File output stays unstyled and parseable.
	fileLogger := charmLog.NewWithOptions(f, charmLog.Options{
		Level:           lvl,
		Prefix:          opts.Prefix,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       charmLog.LogfmtFormatter,
	})
	l.sinks = append(l.sinks, fileLogger)
	l.closeFile = f.Close
	l.filePath = path
	return l, nil
}

// Discard returns a Logger that writes nowhere.
func Discard() *Logger {
	l, _ := New(Options{Console: io.Discard, Level: "fatal"})
	return l
}

// FilePath returns the active file sink path, if any.
func (l *Logger) FilePath() string {
	if l == nil {
		return ""
	}
	return l.filePath
}

// Close closes the file sink.
func (l *Logger) Close() error {
	if l == nil || l.closeFile == nil {
		return nil
	}
	return l.closeFile()
}

// SetConsoleEnabled mutes or unmutes the console sink. The board mutes it
// while the alternate screen is active.
func (l *Logger) SetConsoleEnabled(enabled bool) {
	if l == nil {
		return
	}
	l.consoleEnabled = enabled
}

// With returns a Logger whose sinks all carry keyvals.
func (l *Logger) With(keyvals ...any) *Logger {
	if l == nil {
		return nil
	}
	out := &Logger{
		consoleEnabled: l.consoleEnabled,
		closeFile:      l.closeFile,
		filePath:       l.filePath,
	}
	for _, sink := range l.sinks {
		child := sink.With(keyvals...)
		if sink == l.consoleSink {
			out.consoleSink = child
		}
		out.sinks = append(out.sinks, child)
	}
	return out
}

func (l *Logger) shouldLogToSink(sink *charmLog.Logger) bool {
	if sink == nil {
		return false
	}
	return sink != l.consoleSink || l.consoleEnabled
}

// Debug logs a debug event to all enabled sinks.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if l == nil {
		return
	}
	for _, sink := range l.sinks {
		if l.shouldLogToSink(sink) {
			sink.Debug(msg, keyvals...)
		}
	}
}

// Info logs an informational event to all enabled sinks.
func (l *Logger) Info(msg string, keyvals ...any) {
	if l == nil {
		return
	}
	for _, sink := range l.sinks {
		if l.shouldLogToSink(sink) {
			sink.Info(msg, keyvals...)
		}
	}
}

// Warn logs a warning to all enabled sinks.
func (l *Logger) Warn(msg string, keyvals ...any) {
	if l == nil {
		return
	}
	for _, sink := range l.sinks {
		if l.shouldLogToSink(sink) {
			sink.Warn(msg, keyvals...)
		}
	}
}

// Error logs an error to all enabled sinks.
func (l *Logger) Error(msg string, keyvals ...any) {
	if l == nil {
		return
	}
	for _, sink := range l.sinks {
		if l.shouldLogToSink(sink) {
			sink.Error(msg, keyvals...)
		}
	}
}
