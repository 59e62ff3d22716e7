// Package zapadapter provides a logger that writes to a go.uber.org/zap.Logger.
package zapadapter

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jackc/pgtypemap"
)

type Logger struct {
	logger *zap.Logger
}

func NewLogger(logger *zap.Logger) *Logger {
	return &Logger{logger: logger.WithOptions(zap.AddCallerSkip(1))}
}

func (pl *Logger) Log(level pgtypemap.LogLevel, msg string, data map[string]any) {
	fields := make([]zapcore.Field, len(data))
	i := 0
	for k, v := range data {
		fields[i] = zap.Any(k, v)
		i++
	}

	switch level {
	case pgtypemap.LogLevelTrace:
		pl.logger.Debug(msg, append(fields, zap.Stringer("PGTYPEMAP_LOG_LEVEL", level))...)
	case pgtypemap.LogLevelDebug:
		pl.logger.Debug(msg, fields...)
	case pgtypemap.LogLevelInfo:
		pl.logger.Info(msg, fields...)
	case pgtypemap.LogLevelWarn:
		pl.logger.Warn(msg, fields...)
	case pgtypemap.LogLevelError:
		pl.logger.Error(msg, fields...)
	default:
		pl.logger.Error(msg, append(fields, zap.Stringer("INVALID_PGTYPEMAP_LOG_LEVEL", level))...)
	}
}
