// Package zerologadapter provides a logger that writes to a github.com/rs/zerolog.
package zerologadapter

import (
	"github.com/rs/zerolog"

	"github.com/jackc/pgtypemap"
)

type Logger struct {
	logger zerolog.Logger
}

// NewLogger accepts a zerolog.Logger as input and returns a new custom
// pgtypemap logging fascade as output.
func NewLogger(logger zerolog.Logger) *Logger {
	return &Logger{
		logger: logger.With().Str("module", "pgtypemap").Logger(),
	}
}

func (l *Logger) Log(level pgtypemap.LogLevel, msg string, data map[string]any) {
	var zlevel zerolog.Level
	switch level {
	case pgtypemap.LogLevelNone:
		zlevel = zerolog.NoLevel
	case pgtypemap.LogLevelError:
		zlevel = zerolog.ErrorLevel
	case pgtypemap.LogLevelWarn:
		zlevel = zerolog.WarnLevel
	case pgtypemap.LogLevelInfo:
		zlevel = zerolog.InfoLevel
	case pgtypemap.LogLevelDebug:
		zlevel = zerolog.DebugLevel
	default:
		zlevel = zerolog.DebugLevel
	}

	logger := l.logger.With().Fields(data).Logger()
	logger.WithLevel(zlevel).Msg(msg)
}
