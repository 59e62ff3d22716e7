package pgtypemap

// ByColumn selects coders by column position. The width is fixed at
// construction; fitting to a parameter list or result of any other width is
// an *ArityError. Once fitted, resolution is a slot index.
//
// ByColumn serves all three directions: query parameters, result columns, and
// COPY row decoding.
type ByColumn struct {
	slots []slot

	// Strict makes an unassigned slot a *FallbackExhaustedError at resolution
	// instead of falling back to default string conversion.
	Strict bool
}

// NewByColumn returns a ByColumn of width len(coders). Entries may be nil to
// leave a column unassigned.
func NewByColumn(coders []Coder) *ByColumn {
	m := &ByColumn{slots: make([]slot, len(coders))}
	for i, c := range coders {
		if c != nil {
			m.slots[i] = slot{coder: c}
		}
	}
	return m
}

// NewByColumnOfWidth returns a ByColumn of the given width with every column
// unassigned.
func NewByColumnOfWidth(width int) *ByColumn {
	return &ByColumn{slots: make([]slot, width)}
}

// Width returns the fixed column count.
func (m *ByColumn) Width() int {
	return len(m.slots)
}

// Set assigns spec to the zero-based column position. spec follows the same
// rules as ByKind.Set: nil clears, a Coder is static, a ResolverFunc is
// dynamic.
func (m *ByColumn) Set(position int, spec any) error {
	if position < 0 || position >= len(m.slots) {
		return newConfigurationError("column position %d out of range for width %d", position, len(m.slots))
	}
	s, err := newSlot(spec)
	if err != nil {
		return err
	}
	m.slots[position] = s
	return nil
}

// Get returns the current assignment for the zero-based column position.
func (m *ByColumn) Get(position int) (any, error) {
	if position < 0 || position >= len(m.slots) {
		return nil, newConfigurationError("column position %d out of range for width %d", position, len(m.slots))
	}
	return m.slots[position].value(), nil
}

// Coders returns a snapshot of every column's assignment, including
// unassigned columns as nil entries.
func (m *ByColumn) Coders() []any {
	coders := make([]any, len(m.slots))
	for i, s := range m.slots {
		coders[i] = s.value()
	}
	return coders
}

func (m *ByColumn) fit() *fittedColumns {
	// Copy the slot table so later Set calls cannot leak into an in-flight
	// query.
	snap := make([]slot, len(m.slots))
	copy(snap, m.slots)
	return &fittedColumns{slots: snap, strict: m.Strict}
}

// FitToQuery binds m to one parameter list. The parameter count must equal
// the configured width; a mismatch is an *ArityError returned before any
// parameter value is touched.
func (m *ByColumn) FitToQuery(params []any) (FittedEncoder, error) {
	if len(params) != len(m.slots) {
		return nil, &ArityError{Expected: len(m.slots), Actual: len(params)}
	}
	return m.fit(), nil
}

// FitToResult binds m to one result shape. The column count must equal the
// configured width.
func (m *ByColumn) FitToResult(desc []FieldDescription) (FittedDecoder, error) {
	if len(desc) != len(m.slots) {
		return nil, &ArityError{Expected: len(m.slots), Actual: len(desc)}
	}
	return m.fit(), nil
}

// FitToCopyGet binds m for COPY row decoding. The row shape is the configured
// width; rows of any other width fail in the caller's framing layer.
func (m *ByColumn) FitToCopyGet() (FittedRowDecoder, error) {
	return m.fit(), nil
}

// fittedColumns is a ByColumn bound to one query, result, or copy stream. It
// reads a frozen snapshot of the slot table.
type fittedColumns struct {
	slots  []slot
	strict bool
}

func (f *fittedColumns) resolve(value any, position int) (Coder, error) {
	if position < 0 || position >= len(f.slots) {
		return nil, &ArityError{Expected: len(f.slots), Actual: position + 1}
	}
	s := f.slots[position]
	if !s.assigned() {
		if f.strict {
			return nil, &FallbackExhaustedError{Position: position + 1}
		}
		return nil, nil
	}
	return s.resolve(value, position)
}

func (f *fittedColumns) EncoderForValue(value any, position int) (Coder, error) {
	return f.resolve(value, position)
}

func (f *fittedColumns) DecoderForColumn(position int) (Coder, error) {
	return f.resolve(nil, position)
}

func (f *fittedColumns) DecoderForField(position int, format int16) (Coder, error) {
	return f.resolve(nil, position)
}
