package pgtypemap

// PostgreSQL oids for common types
const (
	BoolOID        = 16
	ByteaOID       = 17
	QCharOID       = 18
	NameOID        = 19
	Int8OID        = 20
	Int2OID        = 21
	Int4OID        = 23
	TextOID        = 25
	OIDOID         = 26
	JSONOID        = 114
	Float4OID      = 700
	Float8OID      = 701
	UnknownOID     = 705
	VarcharOID     = 1043
	DateOID        = 1082
	TimestampOID   = 1114
	TimestamptzOID = 1184
	NumericOID     = 1700
	RecordOID      = 2249
	UUIDOID        = 2950
	JSONBOID       = 3802
)

// PostgreSQL format codes
const (
	TextFormatCode   int16 = 0
	BinaryFormatCode int16 = 1
)

// Coder converts between a Go value and the wire representation of a single
// PostgreSQL type. A Coder must be immutable after construction. Coders are
// shared by reference across type maps and fitted dispatchers, possibly on
// multiple goroutines at once.
type Coder interface {
	// Name returns the PostgreSQL type name this Coder converts, e.g. "int8".
	Name() string

	// OID returns the oid of the PostgreSQL type this Coder converts.
	OID() uint32

	// Format returns the wire format this Coder produces and consumes,
	// TextFormatCode or BinaryFormatCode.
	Format() int16

	// Encode appends the wire representation of v to buf and returns the new
	// buffer. If v represents the SQL value NULL then Encode returns
	// (nil, nil). The caller is responsible for framing (e.g. writing the
	// length header).
	Encode(v any, buf []byte) (newBuf []byte, err error)

	// Decode converts a wire representation into a Go value. If src is nil
	// then the original SQL value was NULL and Decode returns (nil, nil).
	// Decode must not retain src.
	Decode(src []byte) (any, error)
}

// ResolverFunc is a dynamic coder resolver. Instead of assigning a static
// Coder to a dispatch slot, a ResolverFunc may be assigned. It is invoked once
// per resolution with the value being converted and must return nil (no coder,
// the value is converted via its default string conversion) or a Coder. Any
// other return value is a type mismatch error at resolution time.
//
// A ResolverFunc assigned to a type map that is shared across concurrently
// executing queries must itself be safe for concurrent calls.
type ResolverFunc func(value any) any

// FieldDescription describes a single column of a result or copy stream. It
// carries the subset of the wire protocol's RowDescription used for coder
// dispatch.
type FieldDescription struct {
	Name        string
	DataTypeOID uint32
	Format      int16
}

// TypeMap selects Coders for values flowing to and from the server. A TypeMap
// is configured once and then fitted to each concrete query, result, or copy
// stream shape. Fitting never mutates the TypeMap so a single TypeMap is
// reusable across any number of queries.
//
// A TypeMap performs no internal locking. Configuring a TypeMap concurrently
// with fitting or resolving against it is undefined; configure first, then
// share.
type TypeMap interface {
	// FitToQuery binds the TypeMap to one query's parameter list. Variants
	// with a fixed width return an *ArityError if len(params) does not match.
	// The error is returned before any parameter value is touched.
	FitToQuery(params []any) (FittedEncoder, error)

	// FitToResult binds the TypeMap to one result shape. Variants that can
	// only encode return an error.
	FitToResult(desc []FieldDescription) (FittedDecoder, error)

	// FitToCopyGet binds the TypeMap for decoding rows received via COPY.
	// Variants that cannot determine the row shape up front return an error.
	FitToCopyGet() (FittedRowDecoder, error)
}

// FittedEncoder is a TypeMap bound to one query's parameter shape. It is
// ephemeral; create one per query execution and discard it.
type FittedEncoder interface {
	// EncoderForValue returns the Coder for the parameter at the zero-based
	// position. A nil Coder with a nil error means no coder is assigned and
	// the caller should fall back to its default string conversion.
	EncoderForValue(value any, position int) (Coder, error)
}

// FittedDecoder is a TypeMap bound to one result shape.
type FittedDecoder interface {
	// DecoderForColumn returns the Coder for the zero-based column position.
	// A nil Coder with a nil error means default string conversion.
	DecoderForColumn(position int) (Coder, error)
}

// FittedRowDecoder is a TypeMap bound to a COPY row shape.
type FittedRowDecoder interface {
	// DecoderForField returns the Coder for the zero-based field position in
	// the given wire format. A nil Coder with a nil error means default
	// string conversion.
	DecoderForField(position int, format int16) (Coder, error)
}

// Name is a distinguished string type for values that identify something by
// name rather than carry arbitrary text, such as column or type names. It
// classifies as KindName for ByKind dispatch while plain strings classify as
// KindString.
type Name string
