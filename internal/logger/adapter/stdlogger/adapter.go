// Package stdlogger adapts the global zerolog logger to printf style logger interfaces,
// such as the one gorm expects.
package stdlogger

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger forwards printf style calls to the global zerolog logger.
type Logger struct {
	component string
}

// New returns a Logger tagging every entry with the optional component name.
func New(component ...string) *Logger {
	l := &Logger{}
	if len(component) > 0 {
		l.component = component[0]
	}

	return l
}

func (l *Logger) event(level zerolog.Level) *zerolog.Event {
	e := log.WithLevel(level)
	if l.component != "" {
		e = e.Str("component", l.component)
	}

	return e
}

// Printf logs at info level. Multi line messages are folded into one line.
func (l *Logger) Printf(format string, args ...any) {
	l.event(zerolog.InfoLevel).Msgf(strings.ReplaceAll(format, "\n", " "), args...)
}

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, args ...any) {
	l.event(zerolog.DebugLevel).Msgf(format, args...)
}

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...any) {
	l.event(zerolog.InfoLevel).Msgf(format, args...)
}

// Warningf logs at warn level.
func (l *Logger) Warningf(format string, args ...any) {
	l.event(zerolog.WarnLevel).Msgf(format, args...)
}

// Errorf logs at error level.
func (l *Logger) Errorf(format string, args ...any) {
	l.event(zerolog.ErrorLevel).Msgf(format, args...)
}
