package primitive

import "reflect"

type ConversionPair struct {
	From, To KindEnum
}

// safePairs lists conversions that never lose information.
var safePairs = map[ConversionPair]struct{}{
	{KindInt, KindInt64}: {}, // int is at most 64 bits wide

	{KindInt8, KindInt}:     {},
	{KindInt8, KindInt16}:   {},
	{KindInt8, KindInt32}:   {},
	{KindInt8, KindInt64}:   {},
	{KindInt8, KindFloat32}: {},
	{KindInt8, KindFloat64}: {},

	{KindInt16, KindInt}:     {},
	{KindInt16, KindInt32}:   {},
	{KindInt16, KindInt64}:   {},
	{KindInt16, KindFloat32}: {},
	{KindInt16, KindFloat64}: {},

	{KindInt32, KindInt}:     {},
	{KindInt32, KindInt64}:   {},
	{KindInt32, KindFloat64}: {}, // float32 mantissa is too narrow

	{KindUint, KindUint64}: {},

	{KindUint8, KindUint}:    {},
	{KindUint8, KindUint16}:  {},
	{KindUint8, KindUint32}:  {},
	{KindUint8, KindUint64}:  {},
	{KindUint8, KindInt}:     {},
	{KindUint8, KindInt16}:   {},
	{KindUint8, KindInt32}:   {},
	{KindUint8, KindInt64}:   {},
	{KindUint8, KindFloat32}: {},
	{KindUint8, KindFloat64}: {},

	{KindUint16, KindUint}:    {},
	{KindUint16, KindUint32}:  {},
	{KindUint16, KindUint64}:  {},
	{KindUint16, KindInt}:     {},
	{KindUint16, KindInt32}:   {},
	{KindUint16, KindInt64}:   {},
	{KindUint16, KindFloat32}: {},
	{KindUint16, KindFloat64}: {},

	{KindUint32, KindUint64}:  {},
	{KindUint32, KindInt64}:   {},
	{KindUint32, KindFloat64}: {},

	{KindFloat32, KindFloat64}: {},
}

// IsSafe reports whether a value of kind from can be converted to kind to
// without loss. Identical scalar kinds are always safe.
func IsSafe(from, to KindEnum) bool {
	if from == 0 || to == 0 {
		return false
	}

	if from == to {
		return true
	}

	// only numbers widen
	if !from.IsNumber() || !to.IsNumber() {
		return false
	}

	_, ok := safePairs[ConversionPair{from, to}]

	return ok
}

// SafelyConvertible reports whether values of type from can be converted to type to
// with reflect.Value.Convert without losing information.
func SafelyConvertible(from, to reflect.Type) bool {
	if from == nil || to == nil {
		return false
	}

	return IsSafe(FromReflectType(from), FromReflectType(to)) && from.ConvertibleTo(to)
}
