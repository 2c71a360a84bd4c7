package introspection

import (
	"fmt"
	"strings"
)

// Separator splits a field path into segments.
const Separator = "."

// FieldPath is a parsed dotted path such as "name.first".
type FieldPath struct {
	raw      string
	segments []string
}

// ParsePath parses a dotted field path. Every segment must be non-empty, so
// "", ".id", "id." and "name..first" are all rejected with ErrInvalidPath.
func ParsePath(path string) (FieldPath, error) {
	if path == "" {
		return FieldPath{}, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	segments := strings.Split(path, Separator)
	for _, s := range segments {
		if s == "" {
			return FieldPath{}, fmt.Errorf("%w %q: empty segment", ErrInvalidPath, path)
		}
	}

	return FieldPath{raw: path, segments: segments}, nil
}

// String returns the path as it was parsed.
func (p FieldPath) String() string {
	return p.raw
}

// Segments returns a copy of the path segments.
func (p FieldPath) Segments() []string {
	return append([]string(nil), p.segments...)
}

// IsNested reports whether the path has more than one segment.
func (p FieldPath) IsNested() bool {
	return len(p.segments) > 1
}
