package pgtypemap

import (
	"strconv"

	"github.com/pkg/errors"
)

// LogLevel represents the log level.
type LogLevel int

// The values for log levels are chosen such that the zero value means that no
// log level was specified.
const (
	LogLevelTrace LogLevel = 6
	LogLevelDebug LogLevel = 5
	LogLevelInfo  LogLevel = 4
	LogLevelWarn  LogLevel = 3
	LogLevelError LogLevel = 2
	LogLevelNone  LogLevel = 1
)

func (ll LogLevel) String() string {
	switch ll {
	case LogLevelTrace:
		return "trace"
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	case LogLevelNone:
		return "none"
	default:
		return "invalid level " + strconv.Itoa(int(ll))
	}
}

// Logger is the interface used to get dispatch diagnostics from pgtypemap
// internals. Adapters for common logging packages are provided under log/.
type Logger interface {
	Log(level LogLevel, msg string, data map[string]any)
}

// LogLevelFromString converts log level string to constant
//
// Valid levels:
//
//	trace
//	debug
//	info
//	warn
//	error
//	none
func LogLevelFromString(s string) (LogLevel, error) {
	switch s {
	case "trace":
		return LogLevelTrace, nil
	case "debug":
		return LogLevelDebug, nil
	case "info":
		return LogLevelInfo, nil
	case "warn":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	case "none":
		return LogLevelNone, nil
	default:
		return 0, errors.New("invalid log level")
	}
}

// logInfo is embedded by the type maps to carry an optional diagnostic
// logger. The zero value logs nothing.
type logInfo struct {
	// Logger receives dispatch diagnostics such as fallback hits and resolver
	// failures. Optional.
	Logger Logger

	// LogLevel is the minimum level passed to Logger. Defaults to
	// LogLevelDebug when a Logger is set.
	LogLevel LogLevel
}

func (li *logInfo) shouldLog(lvl LogLevel) bool {
	if li.Logger == nil {
		return false
	}
	level := li.LogLevel
	if level == 0 {
		level = LogLevelDebug
	}
	return level >= lvl
}

func (li *logInfo) log(lvl LogLevel, msg string, data map[string]any) {
	if li.shouldLog(lvl) {
		li.Logger.Log(lvl, msg, data)
	}
}
