// Package kitlogadapter provides a logger that writes to a github.com/go-kit/log.Logger.
package kitlogadapter

import (
	"github.com/go-kit/log"
	kitlevel "github.com/go-kit/log/level"

	"github.com/jackc/pgtypemap"
)

type Logger struct {
	l log.Logger
}

func NewLogger(l log.Logger) *Logger {
	return &Logger{l: l}
}

func (l *Logger) Log(level pgtypemap.LogLevel, msg string, data map[string]any) {
	logger := l.l
	for k, v := range data {
		logger = log.With(logger, k, v)
	}

	switch level {
	case pgtypemap.LogLevelTrace:
		logger.Log("PGTYPEMAP_LOG_LEVEL", level, "msg", msg)
	case pgtypemap.LogLevelDebug:
		kitlevel.Debug(logger).Log("msg", msg)
	case pgtypemap.LogLevelInfo:
		kitlevel.Info(logger).Log("msg", msg)
	case pgtypemap.LogLevelWarn:
		kitlevel.Warn(logger).Log("msg", msg)
	case pgtypemap.LogLevelError:
		kitlevel.Error(logger).Log("msg", msg)
	default:
		logger.Log("INVALID_PGTYPEMAP_LOG_LEVEL", level, "error", msg)
	}
}
