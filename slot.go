package pgtypemap

// slot is one dispatch table entry: unassigned, a static Coder, or a dynamic
// resolver. A slot is replaced as a whole value on assignment so a stale
// resolver can never coexist with a newly assigned static coder.
type slot struct {
	coder    Coder
	resolver ResolverFunc
}

// newSlot classifies a coder specification as accepted by the Set and
// Register configuration surfaces. spec may be nil to clear the slot, a Coder
// for static dispatch, or a ResolverFunc (or bare func(any) any) for dynamic
// dispatch.
func newSlot(spec any) (slot, error) {
	switch spec := spec.(type) {
	case nil:
		return slot{}, nil
	case Coder:
		return slot{coder: spec}, nil
	case ResolverFunc:
		return slot{resolver: spec}, nil
	case func(any) any:
		return slot{resolver: spec}, nil
	default:
		return slot{}, newConfigurationError("unsupported coder specification %T", spec)
	}
}

func (s slot) assigned() bool {
	return s.coder != nil || s.resolver != nil
}

// value returns the slot's assignment for the Get and Coders introspection
// surfaces: the static Coder, the resolver, or nil.
func (s slot) value() any {
	if s.coder != nil {
		return s.coder
	}
	if s.resolver != nil {
		return s.resolver
	}
	return nil
}

// resolve returns the slot's Coder for value. position is the zero-based
// parameter or column position and is only used for error reporting, where it
// is reported 1-based. An unassigned slot resolves to (nil, nil): default
// string conversion.
func (s slot) resolve(value any, position int) (Coder, error) {
	if s.coder != nil {
		return s.coder, nil
	}
	if s.resolver == nil {
		return nil, nil
	}

	out := s.resolver(value)
	if out == nil {
		return nil, nil
	}
	if c, ok := out.(Coder); ok {
		return c, nil
	}
	return nil, &TypeMismatchError{Position: position + 1, Value: out}
}
