package pgtypemap

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// ByteaCoder converts byte slices to and from the bytea wire formats. The
// text format is the PostgreSQL hex encoding.
type ByteaCoder struct {
	coderInfo
}

func NewByteaCoder(format int16) *ByteaCoder {
	return &ByteaCoder{coderInfo{name: "bytea", oid: ByteaOID, format: format}}
}

func (c *ByteaCoder) Encode(v any, buf []byte) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	b, ok := v.([]byte)
	if !ok {
		return nil, errors.Errorf("cannot convert %v to bytea", v)
	}

	if c.format == BinaryFormatCode {
		return append(buf, b...), nil
	}

	buf = append(buf, `\x`...)
	return append(buf, hex.EncodeToString(b)...), nil
}

func (c *ByteaCoder) Decode(src []byte) (any, error) {
	if src == nil {
		return nil, nil
	}

	if c.format == BinaryFormatCode {
		out := make([]byte, len(src))
		copy(out, src)
		return out, nil
	}

	if len(src) < 2 || src[0] != '\\' || src[1] != 'x' {
		return nil, errors.Errorf("invalid hex format for bytea: %q", src)
	}
	return hex.DecodeString(string(src[2:]))
}
