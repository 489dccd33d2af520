// Package logger is the structured logger shared by the CLI, the navigator
// service, mounted navigation contexts and the HTTP server.
package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Field keys written by the helpers below.
const (
	FieldCommand       = "command"
	FieldCorrelationID = "correlation_id"
	FieldConfigPath    = "config_path"
	FieldRoute         = "route"
	FieldAddr          = "addr"
)

// Format selects how entries are rendered.
type Format string

const (
	// FormatConsole renders colourless, human-readable lines.
	FormatConsole Format = "console"
	// FormatJSON renders one JSON object per line.
	FormatJSON Format = "json"
)

// ParseFormat accepts "console" or "json", case-insensitively. The empty
// string selects console output.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatConsole:
		return FormatConsole, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown log format %q (want console or json)", s)
	}
}

// Options configures New. Level defaults to warn, Writer to stderr.
type Options struct {
	Level  string
	Format Format
	Writer io.Writer
}

// Logger is a zerolog logger carrying navigation context fields.
// A nil *Logger is valid and discards everything.
type Logger struct {
	base zerolog.Logger
}

// New builds a logger from opts.
func New(opts Options) (*Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}

	switch opts.Format {
	case "", FormatConsole:
		out = zerolog.ConsoleWriter{Out: out, NoColor: true, TimeFormat: time.RFC3339}
	case FormatJSON:
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	return &Logger{base: zerolog.New(out).Level(level).With().Timestamp().Logger()}, nil
}

func parseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.WarnLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.NoLevel, fmt.Errorf("parse log level %q: want debug, info, warn or error", s)
	}
	return level, nil
}

// Nop returns a logger that writes nothing.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// ForCommand tags entries with the CLI command path and the correlation id
// of one invocation.
func (l *Logger) ForCommand(path, correlationID string) *Logger {
	return l.with(func(c zerolog.Context) zerolog.Context {
		return c.Str(FieldCommand, path).Str(FieldCorrelationID, correlationID)
	})
}

// ForConfig tags entries with the navigator config they concern.
func (l *Logger) ForConfig(path string) *Logger {
	return l.with(func(c zerolog.Context) zerolog.Context {
		return c.Str(FieldConfigPath, path)
	})
}

// ForRoute tags entries with a route name.
func (l *Logger) ForRoute(name string) *Logger {
	return l.with(func(c zerolog.Context) zerolog.Context {
		return c.Str(FieldRoute, name)
	})
}

// WithFields returns a derived logger writing fields in key order.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return l.with(func(c zerolog.Context) zerolog.Context {
		for _, key := range keys {
			c = c.Interface(key, fields[key])
		}
		return c
	})
}

// WithField returns a derived logger carrying one extra field.
func (l *Logger) WithField(key string, value any) *Logger {
	return l.with(func(c zerolog.Context) zerolog.Context {
		return c.Interface(key, value)
	})
}

func (l *Logger) with(fn func(zerolog.Context) zerolog.Context) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: fn(l.base.With()).Logger()}
}

// Debug writes msg at debug level.
func (l *Logger) Debug(msg string) { l.emit(zerolog.DebugLevel, nil, msg) }

// Info writes msg at info level.
func (l *Logger) Info(msg string) { l.emit(zerolog.InfoLevel, nil, msg) }

// Warn writes msg at warn level.
func (l *Logger) Warn(msg string) { l.emit(zerolog.WarnLevel, nil, msg) }

// Error writes msg at error level with err attached when non-nil.
func (l *Logger) Error(err error, msg string) { l.emit(zerolog.ErrorLevel, err, msg) }

func (l *Logger) emit(level zerolog.Level, err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.WithLevel(level)
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}

// DebugEnabled reports whether debug entries are written, so callers can
// skip assembling expensive fields.
func (l *Logger) DebugEnabled() bool {
	return l != nil && l.base.GetLevel() <= zerolog.DebugLevel
}

// Zerolog exposes the underlying logger for HTTP middleware.
func (l *Logger) Zerolog() zerolog.Logger {
	if l == nil {
		return zerolog.Nop()
	}
	return l.base
}
