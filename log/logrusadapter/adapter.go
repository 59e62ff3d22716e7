// Package logrusadapter provides a logger that writes to a github.com/sirupsen/logrus.Logger
// log.
package logrusadapter

import (
	"github.com/sirupsen/logrus"

	"github.com/jackc/pgtypemap"
)

type Logger struct {
	l logrus.FieldLogger
}

func NewLogger(l logrus.FieldLogger) *Logger {
	return &Logger{l: l}
}

func (l *Logger) Log(level pgtypemap.LogLevel, msg string, data map[string]any) {
	var logger logrus.FieldLogger
	if data != nil {
		logger = l.l.WithFields(data)
	} else {
		logger = l.l
	}

	switch level {
	case pgtypemap.LogLevelTrace:
		logger.WithField("PGTYPEMAP_LOG_LEVEL", level).Debug(msg)
	case pgtypemap.LogLevelDebug:
		logger.Debug(msg)
	case pgtypemap.LogLevelInfo:
		logger.Info(msg)
	case pgtypemap.LogLevelWarn:
		logger.Warn(msg)
	case pgtypemap.LogLevelError:
		logger.Error(msg)
	default:
		logger.WithField("INVALID_PGTYPEMAP_LOG_LEVEL", level).Error(msg)
	}
}
