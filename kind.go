package pgtypemap

import (
	"fmt"
	"math/big"
	"os"
	"reflect"
	"regexp"
	"time"
)

// Kind classifies a Go value's runtime representation for ByKind dispatch.
// The set of kinds is closed; every value classifies into at most one kind
// and each kind owns exactly one assignment slot in a ByKind map.
type Kind int8

const (
	KindInt Kind = iota // all integer types, signed and unsigned
	KindTrue
	KindFalse
	KindFloat
	KindBigInt  // *math/big.Int
	KindComplex // complex64 and complex128
	KindBigRat  // *math/big.Rat
	KindSlice   // slices and arrays other than byte slices
	KindString
	KindName    // the Name string type
	KindPointer // pointers not otherwise classified
	KindType    // reflect.Type values
	KindRegexp  // *regexp.Regexp
	KindMap
	KindStruct
	KindFile  // *os.File
	KindBytes // []byte
	KindTime  // time.Time

	kindCount
)

var kindNames = [kindCount]string{
	KindInt:     "int",
	KindTrue:    "true",
	KindFalse:   "false",
	KindFloat:   "float",
	KindBigInt:  "bigint",
	KindComplex: "complex",
	KindBigRat:  "rational",
	KindSlice:   "slice",
	KindString:  "string",
	KindName:    "name",
	KindPointer: "pointer",
	KindType:    "type",
	KindRegexp:  "regexp",
	KindMap:     "map",
	KindStruct:  "struct",
	KindFile:    "file",
	KindBytes:   "bytes",
	KindTime:    "time",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("kind(%d)", int8(k))
	}
	return kindNames[k]
}

func (k Kind) valid() bool {
	return k >= 0 && k < kindCount
}

// ParseKind returns the Kind with the given name. Unknown names are a
// configuration error naming the rejected literal.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, newConfigurationError("unknown representation kind %q", name)
}

// Kinds returns every Kind in the closed set.
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// KindOf classifies value. The second return value is false when the value
// does not classify into any kind (e.g. nil, channels, funcs). Classification
// is a constant-time tag inspection: an exact type switch over the common
// concrete types, then a reflect.Kind inspection for named or uncommon types.
func KindOf(value any) (Kind, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case bool:
		if v {
			return KindTrue, true
		}
		return KindFalse, true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInt, true
	case float32, float64:
		return KindFloat, true
	case complex64, complex128:
		return KindComplex, true
	case *big.Int:
		return KindBigInt, true
	case *big.Rat:
		return KindBigRat, true
	case []byte:
		return KindBytes, true
	case string:
		return KindString, true
	case Name:
		return KindName, true
	case time.Time:
		return KindTime, true
	case *regexp.Regexp:
		return KindRegexp, true
	case *os.File:
		return KindFile, true
	case reflect.Type:
		return KindType, true
	}

	return kindOfReflect(reflect.ValueOf(value))
}

// kindOfReflect classifies named and uncommon types that the exact type
// switch in KindOf cannot match.
func kindOfReflect(rv reflect.Value) (Kind, bool) {
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return KindTrue, true
		}
		return KindFalse, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInt, true
	case reflect.Float32, reflect.Float64:
		return KindFloat, true
	case reflect.Complex64, reflect.Complex128:
		return KindComplex, true
	case reflect.String:
		return KindString, true
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return KindBytes, true
		}
		return KindSlice, true
	case reflect.Map:
		return KindMap, true
	case reflect.Struct:
		return KindStruct, true
	case reflect.Ptr:
		return KindPointer, true
	default:
		return 0, false
	}
}
