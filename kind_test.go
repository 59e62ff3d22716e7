package pgtypemap_test

import (
	"math/big"
	"os"
	"reflect"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackc/pgtypemap"
)

type _int32 int32
type _string string
type _byteSlice []byte

func TestKindOf(t *testing.T) {
	tests := []struct {
		value any
		kind  pgtypemap.Kind
	}{
		{value: 42, kind: pgtypemap.KindInt},
		{value: int8(1), kind: pgtypemap.KindInt},
		{value: uint64(1), kind: pgtypemap.KindInt},
		{value: _int32(7), kind: pgtypemap.KindInt},
		{value: true, kind: pgtypemap.KindTrue},
		{value: false, kind: pgtypemap.KindFalse},
		{value: 1.5, kind: pgtypemap.KindFloat},
		{value: float32(1.5), kind: pgtypemap.KindFloat},
		{value: big.NewInt(1), kind: pgtypemap.KindBigInt},
		{value: big.NewRat(1, 3), kind: pgtypemap.KindBigRat},
		{value: complex(1, 2), kind: pgtypemap.KindComplex},
		{value: []int{1, 2}, kind: pgtypemap.KindSlice},
		{value: [2]string{"a", "b"}, kind: pgtypemap.KindSlice},
		{value: "hello", kind: pgtypemap.KindString},
		{value: _string("hello"), kind: pgtypemap.KindString},
		{value: pgtypemap.Name("relname"), kind: pgtypemap.KindName},
		{value: &struct{}{}, kind: pgtypemap.KindPointer},
		{value: reflect.TypeOf(0), kind: pgtypemap.KindType},
		{value: regexp.MustCompile(`a+`), kind: pgtypemap.KindRegexp},
		{value: map[string]int{}, kind: pgtypemap.KindMap},
		{value: struct{ A int }{1}, kind: pgtypemap.KindStruct},
		{value: os.Stdin, kind: pgtypemap.KindFile},
		{value: []byte{1, 2}, kind: pgtypemap.KindBytes},
		{value: _byteSlice{1, 2}, kind: pgtypemap.KindBytes},
		{value: time.Now(), kind: pgtypemap.KindTime},
	}

	for i, tt := range tests {
		kind, ok := pgtypemap.KindOf(tt.value)
		require.Truef(t, ok, "%d: %v did not classify", i, tt.value)
		assert.Equalf(t, tt.kind, kind, "%d: %v", i, tt.value)
	}
}

func TestKindOfUnclassifiable(t *testing.T) {
	for i, v := range []any{nil, make(chan int), func() {}} {
		_, ok := pgtypemap.KindOf(v)
		assert.Falsef(t, ok, "%d: expected no classification", i)
	}
}

func TestParseKind(t *testing.T) {
	for _, kind := range pgtypemap.Kinds() {
		parsed, err := pgtypemap.ParseKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}
}

func TestParseKindUnknown(t *testing.T) {
	_, err := pgtypemap.ParseKind("T_FIXNUM")
	require.Error(t, err)

	var configErr *pgtypemap.ConfigurationError
	require.ErrorAs(t, err, &configErr)
	assert.Contains(t, err.Error(), "unknown")
	assert.Contains(t, err.Error(), "T_FIXNUM")
}
