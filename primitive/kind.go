package primitive

import (
	"reflect"
	"strconv"
)

// KindEnum classifies the scalar kinds a field value can be converted between.
type KindEnum int

const (
	_ KindEnum = iota // zero value is "not a primitive"

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
	KindString

	// KindTotal is the number of kinds defined, the zero kind included
	KindTotal = int(iota)
)

var kindNames = [...]string{
	KindInt:     "KindInt",
	KindInt8:    "KindInt8",
	KindInt16:   "KindInt16",
	KindInt32:   "KindInt32",
	KindInt64:   "KindInt64",
	KindUint:    "KindUint",
	KindUint8:   "KindUint8",
	KindUint16:  "KindUint16",
	KindUint32:  "KindUint32",
	KindUint64:  "KindUint64",
	KindFloat32: "KindFloat32",
	KindFloat64: "KindFloat64",
	KindBool:    "KindBool",
	KindString:  "KindString",
}

func (k KindEnum) String() string {
	if k > 0 && int(k) < KindTotal {
		return kindNames[k]
	}

	return "KindEnum(" + strconv.Itoa(int(k)) + ")"
}

func (k KindEnum) IsNumber() bool {
	return k.IsInteger() || k.IsFloat()
}

func (k KindEnum) IsInteger() bool {
	return k.IsSigned() || k.IsUnsigned()
}

func (k KindEnum) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

// FromReflectType returns the kind backing rtype. Named types report the kind of
// their underlying type, so `type Age int` is KindInt.
// Returns the zero kind for nil and non-scalar types.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.Bool:
		return KindBool
	case reflect.String:
		return KindString
	}
}
