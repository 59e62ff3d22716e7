package pgtypemap

import (
	"reflect"

	"github.com/pkg/errors"
)

// ByType selects query parameter encoders by the declared Go type of the
// value being sent. Resolution first looks for an exact reflect.Type match,
// then walks registered interface types in registration order and uses the
// first one the value's type implements. Registration order is the tie break
// when a type implements several registered interfaces. A miss falls back to
// the SetDefault assignment, or to default string conversion, or fails under
// Strict.
//
// Like ByKind, dispatch is per value: FitToQuery binds to the map itself, and
// ByType can only encode.
type ByType struct {
	logInfo
	exact       map[reflect.Type]slot
	ifaces      []ifaceEntry
	defaultSlot slot

	// Strict makes a miss without a default a *FallbackExhaustedError.
	Strict bool
}

type ifaceEntry struct {
	typ reflect.Type
	s   slot
}

// NewByType returns an empty ByType.
func NewByType() *ByType {
	return &ByType{exact: make(map[reflect.Type]slot)}
}

// Register assigns spec to the given Go type. t may be a concrete type for
// exact dispatch or an interface type matched by implementation. spec follows
// the same rules as ByKind.Set; nil removes the registration. Re-registering
// a type replaces its assignment in place, preserving the original
// registration order for interface tie breaking.
func (m *ByType) Register(t reflect.Type, spec any) error {
	if t == nil {
		return newConfigurationError("cannot register a nil type")
	}
	s, err := newSlot(spec)
	if err != nil {
		return err
	}

	if t.Kind() != reflect.Interface {
		if !s.assigned() {
			delete(m.exact, t)
		} else {
			m.exact[t] = s
		}
		return nil
	}

	for i := range m.ifaces {
		if m.ifaces[i].typ == t {
			if !s.assigned() {
				m.ifaces = append(m.ifaces[:i], m.ifaces[i+1:]...)
			} else {
				m.ifaces[i].s = s
			}
			return nil
		}
	}
	if s.assigned() {
		m.ifaces = append(m.ifaces, ifaceEntry{typ: t, s: s})
	}
	return nil
}

// RegisterValue is Register keyed by the dynamic type of sample.
func (m *ByType) RegisterValue(sample any, spec any) error {
	if sample == nil {
		return newConfigurationError("cannot register a nil type")
	}
	return m.Register(reflect.TypeOf(sample), spec)
}

// SetDefault assigns the fallback used when no registered type matches. spec
// follows the same rules as Register; nil clears the default.
func (m *ByType) SetDefault(spec any) error {
	s, err := newSlot(spec)
	if err != nil {
		return err
	}
	m.defaultSlot = s
	return nil
}

// Get returns the current assignment for t: the static Coder, the
// ResolverFunc, or nil when t is not registered.
func (m *ByType) Get(t reflect.Type) any {
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Interface {
		for _, e := range m.ifaces {
			if e.typ == t {
				return e.s.value()
			}
		}
		return nil
	}
	return m.exact[t].value()
}

// FitToQuery binds m to one parameter list. Dispatch is per value so the
// fitted encoder is the map itself.
func (m *ByType) FitToQuery(params []any) (FittedEncoder, error) {
	return m, nil
}

// FitToResult always fails: ByType selects encoders only.
func (m *ByType) FitToResult(desc []FieldDescription) (FittedDecoder, error) {
	return nil, errors.New("ByType is not suitable to cast result values")
}

// FitToCopyGet always fails: ByType selects encoders only.
func (m *ByType) FitToCopyGet() (FittedRowDecoder, error) {
	return nil, errors.New("ByType is not suitable to cast copy results")
}

// EncoderForValue resolves the Coder for value at the zero-based parameter
// position.
func (m *ByType) EncoderForValue(value any, position int) (Coder, error) {
	if value == nil {
		return nil, nil
	}
	t := reflect.TypeOf(value)

	if s, ok := m.exact[t]; ok {
		return s.resolve(value, position)
	}

	for _, e := range m.ifaces {
		if t.Implements(e.typ) {
			return e.s.resolve(value, position)
		}
	}

	if m.defaultSlot.assigned() {
		return m.defaultSlot.resolve(value, position)
	}

	if m.Strict {
		return nil, &FallbackExhaustedError{Position: position + 1, GoType: t.String()}
	}
	if m.shouldLog(LogLevelTrace) {
		m.log(LogLevelTrace, "no coder registered for type, using default string conversion", map[string]any{
			"type": t.String(), "position": position,
		})
	}
	return nil, nil
}
