package pgtypemap

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/jackc/pgio"
	"github.com/pkg/errors"
)

// Float8Coder converts floating point values to and from the float8 wire
// formats.
type Float8Coder struct {
	coderInfo
}

func NewFloat8Coder(format int16) *Float8Coder {
	return &Float8Coder{coderInfo{name: "float8", oid: Float8OID, format: format}}
}

func (c *Float8Coder) Encode(v any, buf []byte) ([]byte, error) {
	if v == nil {
		return nil, nil
	}

	var f float64
	switch v := v.(type) {
	case float32:
		f = float64(v)
	case float64:
		f = v
	default:
		return nil, errors.Errorf("cannot convert %v to float8", v)
	}

	if c.format == BinaryFormatCode {
		return pgio.AppendUint64(buf, math.Float64bits(f)), nil
	}
	return strconv.AppendFloat(buf, f, 'f', -1, 64), nil
}

func (c *Float8Coder) Decode(src []byte) (any, error) {
	if src == nil {
		return nil, nil
	}

	if c.format == BinaryFormatCode {
		if len(src) != 8 {
			return nil, errors.Errorf("invalid length for float8: %v", len(src))
		}
		return math.Float64frombits(binary.BigEndian.Uint64(src)), nil
	}

	return strconv.ParseFloat(string(src), 64)
}
