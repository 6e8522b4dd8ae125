// Package logging adapts zerolog to the doofinder.Logger interface.
package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// FormatConsole selects human readable output instead of JSON lines.
const FormatConsole = "console"

// Logger wraps zerolog.Logger and implements doofinder.Logger.
type Logger struct {
	logger zerolog.Logger
}

// New creates a JSON logger writing to w. Unknown levels fall back to info.
func New(w io.Writer, level string) *Logger {
	return &Logger{
		logger: zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger(),
	}
}

// NewWithFormat creates a logger writing to w in the given format
// ("json" or "console").
func NewWithFormat(w io.Writer, level, format string) *Logger {
	if strings.ToLower(format) != FormatConsole {
		return New(w, level)
	}

	output := zerolog.ConsoleWriter{Out: w, NoColor: true}

	return &Logger{
		logger: zerolog.New(output).Level(parseLevel(level)).With().Timestamp().Logger(),
	}
}

func parseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}

	return parsed
}

// WithComponent returns a logger tagged with a component name.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{logger: l.logger.With().Str("component", name).Logger()}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug().Fields(fields).Msg(msg)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info().Fields(fields).Msg(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn().Fields(fields).Msg(msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error().Fields(fields).Msg(msg)
}
