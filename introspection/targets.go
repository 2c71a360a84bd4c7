package introspection

import (
	"iter"
	"reflect"

	"assertkit/presentation"
)

// targetsSeq normalizes the supported target containers into one iterator, so
// that slices, arrays and iterators are extracted from identically.
func targetsSeq(targets any) (iter.Seq[any], error) {
	if targets == nil {
		return nil, nil
	}

	switch t := targets.(type) {
	case []any:
		return func(yield func(any) bool) {
			for _, v := range t {
				if !yield(v) {
					return
				}
			}
		}, nil
	case iter.Seq[any]:
		return t, nil
	}

	v := reflect.ValueOf(targets)
	if v.Kind() == reflect.Pointer && v.Type().Elem().Kind() == reflect.Array {
		if v.IsNil() {
			return nil, nil
		}

		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return func(yield func(any) bool) {
			for i := range v.Len() {
				if !yield(v.Index(i).Interface()) {
					return
				}
			}
		}, nil
	case reflect.Func:
		if !v.Type().CanSeq() {
			break
		}

		if v.IsNil() {
			return nil, nil
		}

		return func(yield func(any) bool) {
			for e := range v.Seq() {
				if !yield(e.Interface()) {
					return
				}
			}
		}, nil
	}

	return nil, invalidTargets(presentation.TypeName(v.Type()))
}
