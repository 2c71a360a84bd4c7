package introspection

import (
	"reflect"
	"slices"
	"sync"
)

type registryKey struct {
	typ  reflect.Type
	name string
}

type registeredField struct {
	get     func(target reflect.Value) any
	private bool
}

// Registry holds explicit per-type field getters. Registered getters take
// precedence over reflection, which makes it possible to expose computed
// fields or to hide struct internals behind a stable name.
//
// A Registry is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	fields map[registryKey]registeredField
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{fields: make(map[registryKey]registeredField)}
}

// FieldOption customizes a registered field.
type FieldOption func(*registeredField)

// Private marks a registered field as non-public: reading it requires the
// FieldSupport to allow extracting private fields.
func Private() FieldOption {
	return func(f *registeredField) {
		f.private = true
	}
}

// RegisterField registers get as the accessor of the field name on values of type S.
// Registering the same type and name twice replaces the previous getter.
func RegisterField[S, V any](r *Registry, name string, get func(S) V, opts ...FieldOption) {
	f := registeredField{
		get: func(target reflect.Value) any {
			return get(target.Interface().(S))
		},
	}

	for _, opt := range opts {
		opt(&f)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.fields[registryKey{typ: reflect.TypeFor[S](), name: name}] = f
}

// Names returns the names registered for type t.
func (r *Registry) Names(t reflect.Type) []string {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string

	for k := range r.fields {
		if k.typ == t {
			names = append(names, k.name)
		}
	}

	slices.Sort(names)

	return names
}

func (r *Registry) lookup(t reflect.Type, name string) (registeredField, bool) {
	if r == nil {
		return registeredField{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.fields[registryKey{typ: t, name: name}]

	return f, ok
}
