package pgtypemap

import (
	"github.com/pkg/errors"
)

// BoolCoder converts bool values to and from the bool wire formats.
type BoolCoder struct {
	coderInfo
}

func NewBoolCoder(format int16) *BoolCoder {
	return &BoolCoder{coderInfo{name: "bool", oid: BoolOID, format: format}}
}

func (c *BoolCoder) Encode(v any, buf []byte) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil, errors.Errorf("cannot convert %v to bool", v)
	}

	if c.format == BinaryFormatCode {
		if b {
			return append(buf, 1), nil
		}
		return append(buf, 0), nil
	}

	if b {
		return append(buf, 't'), nil
	}
	return append(buf, 'f'), nil
}

func (c *BoolCoder) Decode(src []byte) (any, error) {
	if src == nil {
		return nil, nil
	}

	if c.format == BinaryFormatCode {
		if len(src) != 1 {
			return nil, errors.Errorf("invalid length for bool: %v", len(src))
		}
		return src[0] != 0, nil
	}

	if len(src) != 1 {
		return nil, errors.Errorf("invalid length for bool: %v", len(src))
	}
	switch src[0] {
	case 't':
		return true, nil
	case 'f':
		return false, nil
	default:
		return nil, errors.Errorf("invalid bool value %q", src)
	}
}
