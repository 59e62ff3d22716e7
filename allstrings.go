package pgtypemap

// AllStrings resolves every value, column, and copy field to no coder: the
// caller's default string conversion applies everywhere. It is the zero
// configuration TypeMap and a suitable starting default for the query layer.
type AllStrings struct{}

func (AllStrings) FitToQuery(params []any) (FittedEncoder, error) {
	return AllStrings{}, nil
}

func (AllStrings) FitToResult(desc []FieldDescription) (FittedDecoder, error) {
	return AllStrings{}, nil
}

func (AllStrings) FitToCopyGet() (FittedRowDecoder, error) {
	return AllStrings{}, nil
}

func (AllStrings) EncoderForValue(value any, position int) (Coder, error) {
	return nil, nil
}

func (AllStrings) DecoderForColumn(position int) (Coder, error) {
	return nil, nil
}

func (AllStrings) DecoderForField(position int, format int16) (Coder, error) {
	return nil, nil
}
