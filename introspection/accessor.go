package introspection

import (
	"reflect"
	"slices"
	"unsafe"

	"assertkit/internal/match"
	"assertkit/presentation"
)

// readField reads the single field name from target, which must not be null.
// An invalid returned value stands for null.
func (fs *FieldSupport) readField(target reflect.Value, name string) (reflect.Value, error) {
	v := target

	for {
		indirect := v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface

		// registered getters never see a nil receiver
		if indirect && v.IsNil() {
			return reflect.Value{}, nil
		}

		if f, ok := fs.registry.lookup(v.Type(), name); ok {
			return fs.readRegistered(v, name, f)
		}

		if !indirect {
			break
		}

		v = v.Elem()
	}

	switch {
	case v.Kind() == reflect.Struct:
		return fs.readStructField(v, name)
	case v.Kind() == reflect.Map && v.Type().Key().Kind() == reflect.String:
		return fs.readMapEntry(v, name)
	default:
		return reflect.Value{}, fieldNotFound(name, fs.render(target), fs.suggest(name, fs.registry.Names(v.Type())))
	}
}

func (fs *FieldSupport) readRegistered(v reflect.Value, name string, f registeredField) (reflect.Value, error) {
	if f.private && !fs.AllowExtractingPrivateFields() {
		return reflect.Value{}, fieldNotAccessible(name, fs.render(v))
	}

	return reflect.ValueOf(f.get(exported(v))), nil
}

func (fs *FieldSupport) readStructField(v reflect.Value, name string) (reflect.Value, error) {
	l := fs.lookupStructField(v.Type(), name)
	if !l.found {
		candidates := slices.Concat(l.candidates, fs.registry.Names(v.Type()))
		return reflect.Value{}, fieldNotFound(name, fs.render(v), fs.suggest(name, candidates))
	}

	v = addressable(v)

	f, err := v.FieldByIndexErr(l.index)
	if err != nil {
		// nil embedded pointer on the way to a promoted field
		return reflect.Value{}, nil
	}

	if f.CanInterface() {
		return f, nil
	}

	if !fs.AllowExtractingPrivateFields() {
		return reflect.Value{}, fieldNotAccessible(name, fs.render(v))
	}

	fs.logger.Debug("reading non-exported field",
		"field", name,
		"type", presentation.TypeName(v.Type()))

	return exported(f), nil
}

func (fs *FieldSupport) readMapEntry(v reflect.Value, name string) (reflect.Value, error) {
	key := reflect.ValueOf(name).Convert(v.Type().Key())

	entry := v.MapIndex(key)
	if !entry.IsValid() {
		keys := make([]string, 0, v.Len())
		for _, k := range v.MapKeys() {
			keys = append(keys, k.String())
		}

		slices.Sort(keys)

		return reflect.Value{}, fieldNotFound(name, fs.render(v), fs.suggest(name, keys))
	}

	return entry, nil
}

func (fs *FieldSupport) suggest(name string, candidates []string) string {
	s, _ := match.Suggest(name, candidates, match.DefaultThreshold)
	return s
}

// render produces the representation of v used in error messages.
func (fs *FieldSupport) render(v reflect.Value) string {
	if !v.IsValid() {
		return presentation.Null
	}

	v = exported(v)
	if !v.CanInterface() {
		return presentation.TypeName(v.Type())
	}

	return fs.representation.ToStringOf(v.Interface())
}

// addressable returns v itself when it is addressable, or an addressable copy.
// Fields of addressable structs can be read past the visibility check.
func addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() || !v.CanInterface() {
		return v
	}

	c := reflect.New(v.Type()).Elem()
	c.Set(v)

	return c
}

// exported lifts the read-only flag set on values reached through
// non-exported fields. v must be addressable for the flag to be lifted.
func exported(v reflect.Value) reflect.Value {
	if v.CanInterface() || !v.CanAddr() {
		return v
	}

	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}

// isNull reports whether v stands for a null value.
func isNull(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
