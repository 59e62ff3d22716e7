package pgtypemap

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/jackc/pgio"
	"github.com/pkg/errors"
)

// convertInt64 normalizes any Go integer value to int64, failing when the
// value does not fit.
func convertInt64(v any) (int64, error) {
	switch v := v.(type) {
	case int8:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, errors.Errorf("%d is greater than maximum value for int8", v)
		}
		return int64(v), nil
	case int:
		return int64(v), nil
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, errors.Errorf("%d is greater than maximum value for int8", v)
		}
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, errors.Errorf("cannot convert %v to integer", v)
	}
}

// Int8Coder converts integer values to and from the int8 wire formats.
type Int8Coder struct {
	coderInfo
}

func NewInt8Coder(format int16) *Int8Coder {
	return &Int8Coder{coderInfo{name: "int8", oid: Int8OID, format: format}}
}

func (c *Int8Coder) Encode(v any, buf []byte) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	n, err := convertInt64(v)
	if err != nil {
		return nil, err
	}

	if c.format == BinaryFormatCode {
		return pgio.AppendInt64(buf, n), nil
	}
	return strconv.AppendInt(buf, n, 10), nil
}

func (c *Int8Coder) Decode(src []byte) (any, error) {
	if src == nil {
		return nil, nil
	}

	if c.format == BinaryFormatCode {
		if len(src) != 8 {
			return nil, errors.Errorf("invalid length for int8: %v", len(src))
		}
		return int64(binary.BigEndian.Uint64(src)), nil
	}

	n, err := strconv.ParseInt(string(src), 10, 64)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// Int4Coder converts integer values to and from the int4 wire formats.
type Int4Coder struct {
	coderInfo
}

func NewInt4Coder(format int16) *Int4Coder {
	return &Int4Coder{coderInfo{name: "int4", oid: Int4OID, format: format}}
}

func (c *Int4Coder) Encode(v any, buf []byte) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	n, err := convertInt64(v)
	if err != nil {
		return nil, err
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return nil, errors.Errorf("%d is out of range for int4", n)
	}

	if c.format == BinaryFormatCode {
		return pgio.AppendInt32(buf, int32(n)), nil
	}
	return strconv.AppendInt(buf, n, 10), nil
}

func (c *Int4Coder) Decode(src []byte) (any, error) {
	if src == nil {
		return nil, nil
	}

	if c.format == BinaryFormatCode {
		if len(src) != 4 {
			return nil, errors.Errorf("invalid length for int4: %v", len(src))
		}
		return int32(binary.BigEndian.Uint32(src)), nil
	}

	n, err := strconv.ParseInt(string(src), 10, 32)
	if err != nil {
		return nil, err
	}
	return int32(n), nil
}

// Int2Coder converts integer values to and from the int2 wire formats.
type Int2Coder struct {
	coderInfo
}

func NewInt2Coder(format int16) *Int2Coder {
	return &Int2Coder{coderInfo{name: "int2", oid: Int2OID, format: format}}
}

func (c *Int2Coder) Encode(v any, buf []byte) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	n, err := convertInt64(v)
	if err != nil {
		return nil, err
	}
	if n < math.MinInt16 || n > math.MaxInt16 {
		return nil, errors.Errorf("%d is out of range for int2", n)
	}

	if c.format == BinaryFormatCode {
		return pgio.AppendInt16(buf, int16(n)), nil
	}
	return strconv.AppendInt(buf, n, 10), nil
}

func (c *Int2Coder) Decode(src []byte) (any, error) {
	if src == nil {
		return nil, nil
	}

	if c.format == BinaryFormatCode {
		if len(src) != 2 {
			return nil, errors.Errorf("invalid length for int2: %v", len(src))
		}
		return int16(binary.BigEndian.Uint16(src)), nil
	}

	n, err := strconv.ParseInt(string(src), 10, 16)
	if err != nil {
		return nil, err
	}
	return int16(n), nil
}
