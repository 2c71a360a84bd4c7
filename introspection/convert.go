package introspection

import (
	"reflect"

	"assertkit/primitive"
)

// convertTo converts a non-null v to type to. Conversions follow these rules:
// assignable values are kept, pointers are created or dereferenced as needed and
// numeric values are converted when no information is lost.
func convertTo(v reflect.Value, to reflect.Type) (reflect.Value, bool) {
	from := v.Type()

	switch {
	case from.AssignableTo(to):
		return v, true
	case from.Kind() == reflect.Interface:
		if v.IsNil() {
			return reflect.Zero(to), true
		}

		return convertTo(v.Elem(), to)
	case to.Kind() == reflect.Pointer:
		elem, ok := convertTo(v, to.Elem())
		if !ok {
			return reflect.Value{}, false
		}

		p := reflect.New(to.Elem())
		p.Elem().Set(elem)

		return p, true
	case from.Kind() == reflect.Pointer:
		if v.IsNil() {
			return reflect.Zero(to), true
		}

		return convertTo(v.Elem(), to)
	case primitive.SafelyConvertible(from, to):
		return v.Convert(to), true
	default:
		return reflect.Value{}, false
	}
}

// cast converts the resolved value v to T. Null values yield the zero T.
func cast[T any](v reflect.Value) (T, bool) {
	var zero T

	if isNull(v) {
		return zero, true
	}

	converted, ok := convertTo(v, reflect.TypeFor[T]())
	if !ok {
		return zero, false
	}

	if isNull(converted) {
		return zero, true
	}

	return converted.Interface().(T), true
}
