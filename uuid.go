package pgtypemap

import (
	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
)

// UUIDCoder converts github.com/gofrs/uuid values to and from the uuid wire
// formats.
type UUIDCoder struct {
	coderInfo
}

func NewUUIDCoder(format int16) *UUIDCoder {
	return &UUIDCoder{coderInfo{name: "uuid", oid: UUIDOID, format: format}}
}

func (c *UUIDCoder) Encode(v any, buf []byte) ([]byte, error) {
	if v == nil {
		return nil, nil
	}

	var u uuid.UUID
	switch v := v.(type) {
	case uuid.UUID:
		u = v
	case [16]byte:
		u = uuid.UUID(v)
	case []byte:
		if len(v) != 16 {
			return nil, errors.Errorf("[]byte must be 16 bytes to convert to uuid: %d", len(v))
		}
		copy(u[:], v)
	case string:
		var err error
		u, err = uuid.FromString(v)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf("cannot convert %v to uuid", v)
	}

	if c.format == BinaryFormatCode {
		return append(buf, u.Bytes()...), nil
	}
	return append(buf, u.String()...), nil
}

func (c *UUIDCoder) Decode(src []byte) (any, error) {
	if src == nil {
		return nil, nil
	}

	if c.format == BinaryFormatCode {
		u, err := uuid.FromBytes(src)
		if err != nil {
			return nil, err
		}
		return u, nil
	}

	u, err := uuid.FromString(string(src))
	if err != nil {
		return nil, err
	}
	return u, nil
}
