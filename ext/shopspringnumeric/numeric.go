// Package shopspringnumeric provides a numeric Coder backed by
// github.com/shopspring/decimal.
package shopspringnumeric

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/jackc/pgtypemap"
)

// Coder converts decimal.Decimal values to and from the numeric text wire
// format.
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
	case decimal.Decimal:
		return append(buf, v.String()...), nil
	case *decimal.Decimal:
		if v == nil {
			return nil, nil
		}
		return append(buf, v.String()...), nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, err
		}
		return append(buf, d.String()...), nil
	default:
		return nil, errors.Errorf("cannot convert %v to numeric", v)
	}
}

func (Coder) Decode(src []byte) (any, error) {
	if src == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(string(src))
	if err != nil {
		return nil, err
	}
	return d, nil
}
