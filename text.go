package pgtypemap

import (
	"fmt"

	"github.com/pkg/errors"
)

// TextCoder converts string-like values to and from the text wire format.
type TextCoder struct {
	coderInfo
}

func NewTextCoder() *TextCoder {
	return &TextCoder{coderInfo{name: "text", oid: TextOID, format: TextFormatCode}}
}

// NewVarcharCoder returns a TextCoder identifying as varchar. The wire
// representation is identical to text.
func NewVarcharCoder() *TextCoder {
	return &TextCoder{coderInfo{name: "varchar", oid: VarcharOID, format: TextFormatCode}}
}

func (c *TextCoder) Encode(v any, buf []byte) ([]byte, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case string:
		return append(buf, v...), nil
	case Name:
		return append(buf, v...), nil
	case []byte:
		return append(buf, v...), nil
	case fmt.Stringer:
		return append(buf, v.String()...), nil
	default:
		return nil, errors.Errorf("cannot convert %v to text", v)
	}
}

func (c *TextCoder) Decode(src []byte) (any, error) {
	if src == nil {
		return nil, nil
	}
	return string(src), nil
}
