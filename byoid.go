package pgtypemap

import (
	"github.com/pkg/errors"
)

type oidFormatKey struct {
	oid    uint32
	format int16
}

// ByOID selects result column decoders by the column's data type oid and wire
// format. Coders are registered explicitly; FitToResult walks the result
// descriptor once and precomputes a per-column coder table so that per-row
// resolution is a slice index. ByOID can only decode; FitToQuery and
// FitToCopyGet fail.
type ByOID struct {
	logInfo
	coders map[oidFormatKey]Coder

	// Default is returned for columns whose (oid, format) has no
	// registration. When nil, unknown columns fall back to default string
	// conversion, or fail under Strict.
	Default Coder

	// Strict makes an unregistered (oid, format) without a Default a
	// *FallbackExhaustedError at resolution.
	Strict bool
}

// NewByOID returns an empty ByOID.
func NewByOID() *ByOID {
	return &ByOID{coders: make(map[oidFormatKey]Coder)}
}

// Register adds c keyed by its oid and format. Registering a second coder
// under the same (oid, format) replaces the first; the last registration
// wins.
func (m *ByOID) Register(c Coder) {
	m.coders[oidFormatKey{oid: c.OID(), format: c.Format()}] = c
}

// CoderForOID returns the registered coder for (oid, format). The Default is
// not consulted.
func (m *ByOID) CoderForOID(oid uint32, format int16) (Coder, bool) {
	c, ok := m.coders[oidFormatKey{oid: oid, format: format}]
	return c, ok
}

// FitToQuery always fails: ByOID selects decoders only.
func (m *ByOID) FitToQuery(params []any) (FittedEncoder, error) {
	return nil, errors.New("ByOID is not suitable to cast query params")
}

// FitToResult binds m to one result shape. The descriptor is walked once;
// the fitted decoder holds a frozen per-column coder table and is unaffected
// by later Register calls.
func (m *ByOID) FitToResult(desc []FieldDescription) (FittedDecoder, error) {
	f := &fittedOIDColumns{
		coders: make([]Coder, len(desc)),
		strict: m.Strict,
	}
	for i, fd := range desc {
		c, ok := m.coders[oidFormatKey{oid: fd.DataTypeOID, format: fd.Format}]
		if !ok {
			c = m.Default
			if m.shouldLog(LogLevelTrace) {
				m.log(LogLevelTrace, "no coder registered for column, using default", map[string]any{
					"column": fd.Name, "oid": fd.DataTypeOID, "format": fd.Format,
				})
			}
			if c == nil && m.strictMiss(f, i, fd) {
				continue
			}
		}
		f.coders[i] = c
	}
	return f, nil
}

// strictMiss records an unresolvable column so the error surfaces at
// resolution time with the column's identity, not at fit time.
func (m *ByOID) strictMiss(f *fittedOIDColumns, i int, fd FieldDescription) bool {
	if !m.Strict {
		return false
	}
	if f.misses == nil {
		f.misses = make(map[int]FieldDescription)
	}
	f.misses[i] = fd
	return true
}

// FitToCopyGet always fails: COPY row decoding carries no oid information
// per field beyond the descriptor, which ByOID does not hold.
func (m *ByOID) FitToCopyGet() (FittedRowDecoder, error) {
	return nil, errors.New("ByOID is not suitable to cast copy results")
}

// fittedOIDColumns is a ByOID bound to one result shape.
type fittedOIDColumns struct {
	coders []Coder
	misses map[int]FieldDescription
	strict bool
}

func (f *fittedOIDColumns) DecoderForColumn(position int) (Coder, error) {
	if position < 0 || position >= len(f.coders) {
		return nil, &ArityError{Expected: len(f.coders), Actual: position + 1}
	}
	if f.strict {
		if fd, ok := f.misses[position]; ok {
			return nil, &FallbackExhaustedError{Position: position + 1, OID: fd.DataTypeOID, Format: fd.Format}
		}
	}
	return f.coders[position], nil
}
