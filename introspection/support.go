package introspection

import (
	"iter"
	"log/slog"
	"reflect"
	"sync/atomic"

	"assertkit/internal/cache"
	"assertkit/presentation"
)

// DefaultCacheSize is the default number of struct field lookups kept per FieldSupport.
const DefaultCacheSize = 256

// privateDisallowedByDefault holds the inverse of the default access mode so that
// its zero value means "private fields allowed".
var privateDisallowedByDefault atomic.Bool

// SetAllowExtractingPrivateFields sets the access mode given to FieldSupport
// values created afterwards and returns the previous default. Existing
// FieldSupport values are not affected.
func SetAllowExtractingPrivateFields(allow bool) (previous bool) {
	return !privateDisallowedByDefault.Swap(!allow)
}

// AllowExtractingPrivateFieldsByDefault reports the access mode new FieldSupport values start with.
func AllowExtractingPrivateFieldsByDefault() bool {
	return !privateDisallowedByDefault.Load()
}

// FieldSupport extracts field values by path. It is safe for concurrent use,
// though changing its access mode while extractions run leaves it unspecified
// which mode those extractions observe.
type FieldSupport struct {
	allowPrivate   atomic.Bool
	matching       FieldMatching
	representation presentation.Representation
	registry       *Registry
	logger         *slog.Logger
	lookups        *cache.LRU[lookupKey, fieldLookup]
}

type settings struct {
	allowPrivate   bool
	matching       FieldMatching
	representation presentation.Representation
	registry       *Registry
	logger         *slog.Logger
	cacheSize      int
}

// Option configures a FieldSupport.
type Option func(*settings)

// WithAllowExtractingPrivateFields sets whether non-exported fields may be read.
func WithAllowExtractingPrivateFields(allow bool) Option {
	return func(s *settings) {
		s.allowPrivate = allow
	}
}

// WithFieldMatching sets how segments are matched against struct fields.
func WithFieldMatching(m FieldMatching) Option {
	return func(s *settings) {
		s.matching = m
	}
}

// WithRepresentation sets how targets are rendered in error messages.
func WithRepresentation(r presentation.Representation) Option {
	return func(s *settings) {
		s.representation = r
	}
}

// WithRegistry sets the registry of explicit field getters.
func WithRegistry(r *Registry) Option {
	return func(s *settings) {
		s.registry = r
	}
}

// WithLogger sets the logger receiving debug records.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}

// WithCacheSize sets how many struct field lookups are cached; 0 disables the cache.
func WithCacheSize(n int) Option {
	return func(s *settings) {
		s.cacheSize = n
	}
}

// New creates a FieldSupport. Without options it allows extracting private
// fields (unless the package default was changed), matches fields with
// MatchAll and renders targets with presentation.Standard.
func New(opts ...Option) *FieldSupport {
	s := settings{
		allowPrivate:   AllowExtractingPrivateFieldsByDefault(),
		matching:       MatchAll,
		representation: presentation.Standard(),
		logger:         slog.Default(),
		cacheSize:      DefaultCacheSize,
	}

	for _, opt := range opts {
		opt(&s)
	}

	if s.representation == nil {
		s.representation = presentation.Standard()
	}

	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}

	// NewLRU only fails on non-positive sizes, which it maps to a disabled cache
	lookups, _ := cache.NewLRU[lookupKey, fieldLookup](s.cacheSize)

	fs := &FieldSupport{
		matching:       s.matching,
		representation: s.representation,
		registry:       s.registry,
		logger:         s.logger,
		lookups:        lookups,
	}
	fs.allowPrivate.Store(s.allowPrivate)

	return fs
}

// Instance returns a FieldSupport with the default configuration.
func Instance() *FieldSupport {
	return New()
}

// SetAllowExtractingPrivateFields changes the access mode of fs and returns the previous one.
func (fs *FieldSupport) SetAllowExtractingPrivateFields(allow bool) (previous bool) {
	return fs.allowPrivate.Swap(allow)
}

// AllowExtractingPrivateFields reports whether fs reads non-exported fields.
func (fs *FieldSupport) AllowExtractingPrivateFields() bool {
	return fs.allowPrivate.Load()
}

// FieldValue resolves path on target and returns the value as T. A nil target,
// or a nil value on the way, yields the zero T.
func FieldValue[T any](fs *FieldSupport, path string, target any) (T, error) {
	var zero T

	v, err := fs.resolve(path, target)
	if err != nil {
		return zero, err
	}

	out, ok := cast[T](v)
	if !ok {
		return zero, incompatibleType(path, fs.render(reflect.ValueOf(target)),
			presentation.TypeName(v.Type()), presentation.TypeName(reflect.TypeFor[T]()))
	}

	return out, nil
}

// FieldValues resolves path on every element of targets, a slice, an array, a
// pointer to an array or an iterator (iter.Seq). The result keeps the order and
// length of targets; null targets yield zero values. Nil or empty targets yield
// an empty slice. The first failure aborts the extraction.
func FieldValues[T any](fs *FieldSupport, path string, targets any) ([]T, error) {
	seq, err := targetsSeq(targets)
	if err != nil {
		return nil, err
	}

	return FieldValuesSeq[T](fs, path, seq)
}

// FieldValuesSeq is FieldValues for a typed iterator.
func FieldValuesSeq[T, E any](fs *FieldSupport, path string, targets iter.Seq[E]) ([]T, error) {
	out := []T{}

	if targets == nil {
		return out, nil
	}

	for target := range targets {
		v, err := FieldValue[T](fs, path, target)
		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	return out, nil
}
