// Package apdnumeric provides a numeric Coder backed by
// github.com/cockroachdb/apd.
package apdnumeric

import (
	"github.com/cockroachdb/apd"
	"github.com/pkg/errors"

	"github.com/jackc/pgtypemap"
)

// Coder converts apd.Decimal values to and from the numeric text wire format.
type Coder struct{}

func (Coder) Name() string {
	return "numeric"
}

func (Coder) OID() uint32 {
	return pgtypemap.NumericOID
}

func (Coder) Format() int16 {
	return pgtypemap.TextFormatCode
}

func (Coder) Encode(v any, buf []byte) ([]byte, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case apd.Decimal:
		return append(buf, v.Text('f')...), nil
	case *apd.Decimal:
		if v == nil {
			return nil, nil
		}
		return append(buf, v.Text('f')...), nil
	case string:
		d, _, err := apd.NewFromString(v)
		if err != nil {
			return nil, err
		}
		return append(buf, d.Text('f')...), nil
	default:
		return nil, errors.Errorf("cannot convert %v to numeric", v)
	}
}

func (Coder) Decode(src []byte) (any, error) {
	if src == nil {
		return nil, nil
	}
	d, _, err := apd.NewFromString(string(src))
	if err != nil {
		return nil, err
	}
	return d, nil
}
