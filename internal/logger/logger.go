// Package logger is the structured logger used by the compiler and the CLI.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures a Logger.
type Options struct {
	Level   string
	Console bool
	Writer  io.Writer
}

// Logger wraps zerolog with the small surface slate needs. A nil *Logger is
// valid and discards everything.
type Logger struct {
	base zerolog.Logger
}

// New builds a Logger. Logs go to stderr unless Options.Writer is set, so
// that compiled output on stdout stays clean.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.WarnLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	output := writer
	if opts.Console {
		output = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.Kitchen}
	}

	return &Logger{base: zerolog.New(output).Level(level).With().Timestamp().Logger()}, nil
}

// Nop returns a logger that writes nothing.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// With returns a derived logger carrying the given key/value pairs.
func (l *Logger) With(keyvals ...any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Fields(keyvals).Logger()}
}

// Enabled reports whether entries at level would be written.
func (l *Logger) Enabled(level zerolog.Level) bool {
	if l == nil {
		return false
	}
	return l.base.GetLevel() <= level
}

func (l *Logger) Debug(msg string, keyvals ...any) {
	if l == nil {
		return
	}
	l.base.Debug().Fields(keyvals).Msg(msg)
}

func (l *Logger) Info(msg string, keyvals ...any) {
	if l == nil {
		return
	}
	l.base.Info().Fields(keyvals).Msg(msg)
}

func (l *Logger) Warn(msg string, keyvals ...any) {
	if l == nil {
		return
	}
	l.base.Warn().Fields(keyvals).Msg(msg)
}

// Error writes err under the "error" key.
func (l *Logger) Error(err error, msg string, keyvals ...any) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Fields(keyvals).Msg(msg)
}
