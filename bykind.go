package pgtypemap

import (
	"github.com/pkg/errors"
)

// ByKind selects query parameter encoders based on the representation kind of
// the value being sent. Because one parameter list may mix values of
// arbitrary kinds, dispatch is inherently per value: FitToQuery binds to the
// map itself with no per-query precomputation. ByKind can only encode;
// FitToResult and FitToCopyGet fail.
//
// Configure a ByKind once, then share it read-only. Set called concurrently
// with EncoderForValue is undefined.
type ByKind struct {
	logInfo
	slots [kindCount]slot
}

// NewByKind returns an empty ByKind. Every kind starts unassigned: values
// resolve to no coder and are converted by the caller's default string
// conversion.
func NewByKind() *ByKind {
	return &ByKind{}
}

// Set assigns spec to the slot for kind. spec may be:
//
//	nil          - the slot is cleared; values of this kind use default string conversion
//	a Coder      - values of this kind are encoded by the given coder
//	ResolverFunc - invoked per value; must return nil or a Coder
//
// An unknown kind or any other spec is a *ConfigurationError and leaves the
// map unchanged.
func (m *ByKind) Set(kind Kind, spec any) error {
	if !kind.valid() {
		return newConfigurationError("unknown representation kind %q", kind.String())
	}
	s, err := newSlot(spec)
	if err != nil {
		return err
	}
	m.slots[kind] = s
	return nil
}

// SetByName is Set with the kind given by name, as returned by Kind.String.
func (m *ByKind) SetByName(name string, spec any) error {
	kind, err := ParseKind(name)
	if err != nil {
		return err
	}
	return m.Set(kind, spec)
}

// Get returns the current assignment for kind: the static Coder, the
// ResolverFunc, or nil when unassigned.
func (m *ByKind) Get(kind Kind) (any, error) {
	if !kind.valid() {
		return nil, newConfigurationError("unknown representation kind %q", kind.String())
	}
	return m.slots[kind].value(), nil
}

// Coders returns a snapshot of every kind in the closed set and its current
// assignment, including unassigned kinds as nil entries. Mutating the
// returned map does not affect the ByKind.
func (m *ByKind) Coders() map[Kind]any {
	coders := make(map[Kind]any, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		coders[k] = m.slots[k].value()
	}
	return coders
}

// FitToQuery binds m to one parameter list. ByKind has no per-query shape so
// the fitted encoder is the map itself.
func (m *ByKind) FitToQuery(params []any) (FittedEncoder, error) {
	return m, nil
}

// FitToResult always fails: ByKind selects encoders only.
func (m *ByKind) FitToResult(desc []FieldDescription) (FittedDecoder, error) {
	return nil, errors.New("ByKind is not suitable to cast result values")
}

// FitToCopyGet always fails: ByKind selects encoders only.
func (m *ByKind) FitToCopyGet() (FittedRowDecoder, error) {
	return nil, errors.New("ByKind is not suitable to cast copy results")
}

// EncoderForValue resolves the Coder for value at the zero-based parameter
// position. A nil value, an unclassifiable value, or an unassigned kind
// resolves to (nil, nil). A statically assigned kind returns the identical
// Coder reference on every call. A resolver assigned to the kind is invoked
// with the value; returning anything other than nil or a Coder is a
// *TypeMismatchError carrying the 1-based position.
func (m *ByKind) EncoderForValue(value any, position int) (Coder, error) {
	if value == nil {
		return nil, nil
	}
	kind, ok := KindOf(value)
	if !ok {
		if m.shouldLog(LogLevelTrace) {
			m.log(LogLevelTrace, "value does not classify into any kind", map[string]any{"position": position})
		}
		return nil, nil
	}

	c, err := m.slots[kind].resolve(value, position)
	if err != nil && m.shouldLog(LogLevelError) {
		m.log(LogLevelError, "resolver failed", map[string]any{"kind": kind.String(), "position": position, "err": err})
	}
	return c, err
}
