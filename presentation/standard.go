package presentation

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unsafe"
)

// Null is how a nil value is rendered.
const Null = "null"

const maxDepth = 8

var (
	stringerType = reflect.TypeFor[fmt.Stringer]()
	errorType    = reflect.TypeFor[error]()
)

type standard struct{}

// Standard returns the default Representation.
func Standard() Representation {
	return standard{}
}

func (standard) ToStringOf(v any) string {
	if v == nil {
		return Null
	}

	rv := reflect.ValueOf(v)

	// an addressable root keeps every nested value addressable, which lets
	// non-exported Stringer fields be rendered through their own String method
	if rv.Kind() == reflect.Struct || rv.Kind() == reflect.Array {
		tmp := reflect.New(rv.Type()).Elem()
		tmp.Set(rv)
		rv = tmp
	}

	var b strings.Builder

	writeValue(&b, rv, 0)

	return b.String()
}

func writeValue(b *strings.Builder, v reflect.Value, depth int) {
	if !v.IsValid() {
		b.WriteString(Null)
		return
	}

	if depth > maxDepth {
		b.WriteString("...")
		return
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if v.IsNil() {
			b.WriteString(Null)
			return
		}
	}

	if text, ok := selfDescribed(v); ok {
		b.WriteString(text)
		return
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		writeValue(b, v.Elem(), depth+1)
	case reflect.String:
		b.WriteString("'" + v.String() + "'")
	case reflect.Bool:
		b.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		b.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		b.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32:
		b.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 32))
	case reflect.Float64:
		b.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 64))
	case reflect.Complex64, reflect.Complex128:
		b.WriteString(strconv.FormatComplex(v.Complex(), 'g', -1, v.Type().Bits()))
	case reflect.Struct:
		writeStruct(b, v, depth)
	case reflect.Slice, reflect.Array:
		b.WriteByte('[')
		for i := range v.Len() {
			if i > 0 {
				b.WriteString(", ")
			}
			writeValue(b, v.Index(i), depth+1)
		}
		b.WriteByte(']')
	case reflect.Map:
		writeMap(b, v, depth)
	default:
		b.WriteString(TypeName(v.Type()))
	}
}

func writeStruct(b *strings.Builder, v reflect.Value, depth int) {
	t := v.Type()

	name := t.Name()
	if name == "" {
		name = "struct"
	}

	b.WriteString(name)
	b.WriteByte('[')

	for i := range t.NumField() {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(t.Field(i).Name)
		b.WriteByte('=')
		writeValue(b, v.Field(i), depth+1)
	}

	b.WriteByte(']')
}

func writeMap(b *strings.Builder, v reflect.Value, depth int) {
	type entry struct{ key, value string }

	entries := make([]entry, 0, v.Len())

	iter := v.MapRange()
	for iter.Next() {
		var kb, vb strings.Builder

		writeValue(&kb, iter.Key(), depth+1)
		writeValue(&vb, iter.Value(), depth+1)
		entries = append(entries, entry{kb.String(), vb.String()})
	}

	slices.SortFunc(entries, func(a, b entry) int {
		return strings.Compare(a.key, b.key)
	})

	b.WriteByte('{')

	for i, e := range entries {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(e.key + "=" + e.value)
	}

	b.WriteByte('}')
}

// selfDescribed renders v with its error or String method when it has one.
func selfDescribed(v reflect.Value) (string, bool) {
	t := v.Type()
	v = interfaceable(v)

	if !t.Implements(errorType) && !t.Implements(stringerType) {
		pt := reflect.PointerTo(t)
		if !v.CanAddr() || (!pt.Implements(errorType) && !pt.Implements(stringerType)) {
			return "", false
		}

		v = v.Addr()
	}

	if !v.CanInterface() {
		return "", false
	}

	switch x := v.Interface().(type) {
	case error:
		return x.Error(), true
	case fmt.Stringer:
		return x.String(), true
	}

	return "", false
}

// interfaceable lifts the read-only flag of values reached through non-exported
// fields when they are addressable.
func interfaceable(v reflect.Value) reflect.Value {
	if v.CanInterface() || !v.CanAddr() {
		return v
	}

	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}

// TypeName returns a short readable name for t, e.g. "*Employee" or "[]string".
func TypeName(t reflect.Type) string {
	if t == nil {
		return Null
	}

	switch t.Kind() {
	case reflect.Pointer:
		return "*" + TypeName(t.Elem())
	case reflect.Slice:
		return "[]" + TypeName(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + TypeName(t.Elem())
	case reflect.Map:
		return "map[" + TypeName(t.Key()) + "]" + TypeName(t.Elem())
	default:
		if t.Name() != "" {
			return t.Name()
		}

		return t.String()
	}
}
