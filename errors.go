package pgtypemap

import (
	"fmt"
)

// ConfigurationError is returned when a type map's configuration surface is
// given an unknown dispatch key or an unsupported coder specification. The
// failed call leaves the type map unchanged.
type ConfigurationError struct {
	msg string
}

func (e *ConfigurationError) Error() string {
	return e.msg
}

func newConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{msg: fmt.Sprintf(format, args...)}
}

// TypeMismatchError is returned when a ResolverFunc returns something other
// than nil or a Coder. Position is the 1-based parameter or column position
// being resolved and Value is the resolver's return value.
type TypeMismatchError struct {
	Position int
	Value    any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("argument %d has invalid type %T (resolver must return nil or a Coder)", e.Position, e.Value)
}

// ArityError is returned by FitToQuery or FitToResult when the parameter or
// column count does not match a fixed-width type map. It is returned before
// any value is touched; no partial encoding of a request occurs.
type ArityError struct {
	Expected int
	Actual   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("mapped coder count %d does not match number of fields %d", e.Expected, e.Actual)
}

// FallbackExhaustedError is returned at resolution time when no coder matched
// and the type map is strict (no default fallback configured). Position is
// 1-based when the miss is positional. OID and Format identify the missed
// wire type for oid-keyed dispatch. GoType names the missed Go type for
// type-keyed dispatch.
type FallbackExhaustedError struct {
	Position int
	OID      uint32
	Format   int16
	GoType   string
}

func (e *FallbackExhaustedError) Error() string {
	switch {
	case e.OID != 0:
		return fmt.Sprintf("no coder registered for oid %d format %d (column %d)", e.OID, e.Format, e.Position)
	case e.GoType != "":
		return fmt.Sprintf("no coder registered for type %s (argument %d)", e.GoType, e.Position)
	default:
		return fmt.Sprintf("no coder assigned for position %d", e.Position)
	}
}
