package introspection

import (
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/text/cases"
)

// FieldMatching selects how a path segment is matched against struct fields.
// Strategies are tried in the order exact, json tag, case-insensitive.
type FieldMatching int

const (
	MatchExact   FieldMatching = 1 << iota // Go field name, e.g. "ID"
	MatchJSONTag                           // json tag name, e.g. `json:"id"`, if unique
	MatchFold                              // Unicode case-insensitive field name, if unique

	MatchAll  = MatchExact | MatchJSONTag | MatchFold
	MatchNone = FieldMatching(0)
)

var matchingNames = []struct {
	m    FieldMatching
	name string
}{
	{MatchExact, "exact"},
	{MatchJSONTag, "json"},
	{MatchFold, "fold"},
}

// String returns the strategies joined by "+", e.g. "exact+fold".
func (m FieldMatching) String() string {
	var parts []string

	for _, n := range matchingNames {
		if m&n.m != 0 {
			parts = append(parts, n.name)
		}
	}

	if len(parts) == 0 {
		return "none"
	}

	return strings.Join(parts, "+")
}

// ParseFieldMatching combines strategies given by name: "exact", "json", "fold" or "all".
func ParseFieldMatching(names []string) (FieldMatching, error) {
	var m FieldMatching

	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "exact":
			m |= MatchExact
		case "json":
			m |= MatchJSONTag
		case "fold":
			m |= MatchFold
		case "all":
			m |= MatchAll
		default:
			return MatchNone, fmt.Errorf("unknown field matching %q", name)
		}
	}

	return m, nil
}

type lookupKey struct {
	typ      reflect.Type
	name     string
	matching FieldMatching
}

// fieldLookup is the outcome of looking a segment up on a struct type.
type fieldLookup struct {
	found bool
	index []int
	// names of all visible fields, kept for suggestions when not found
	candidates []string
}

func (fs *FieldSupport) lookupStructField(t reflect.Type, name string) fieldLookup {
	key := lookupKey{typ: t, name: name, matching: fs.matching}
	if l, ok := fs.lookups.Get(key); ok {
		return l
	}

	l := findStructField(t, name, fs.matching)
	fs.lookups.Put(key, l)

	return l
}

func findStructField(t reflect.Type, name string, matching FieldMatching) fieldLookup {
	if matching&MatchExact != 0 {
		if f, ok := t.FieldByName(name); ok {
			return fieldLookup{found: true, index: f.Index}
		}
	}

	visible := visibleFields(t)

	if matching&MatchJSONTag != 0 {
		if index, ok := uniqueField(visible, func(f reflect.StructField) bool {
			return jsonTagName(f) == name
		}); ok {
			return fieldLookup{found: true, index: index}
		}
	}

	if matching&MatchFold != 0 {
		folder := cases.Fold()
		want := folder.String(name)

		if index, ok := uniqueField(visible, func(f reflect.StructField) bool {
			return folder.String(f.Name) == want
		}); ok {
			return fieldLookup{found: true, index: index}
		}
	}

	candidates := make([]string, 0, len(visible))
	for _, f := range visible {
		candidates = append(candidates, f.Name)
	}

	return fieldLookup{candidates: candidates}
}

// uniqueField returns the index of the only field matching, ambiguous matches
// count as none.
func uniqueField(fields []reflect.StructField, matches func(reflect.StructField) bool) ([]int, bool) {
	var index []int

	count := 0

	for _, f := range fields {
		if matches(f) {
			index = f.Index
			count++
		}
	}

	return index, count == 1
}

// visibleFields lists the fields reachable by name, promoted ones included,
// skipping the embedded struct fields themselves.
func visibleFields(t reflect.Type) []reflect.StructField {
	all := reflect.VisibleFields(t)
	out := make([]reflect.StructField, 0, len(all))

	for _, f := range all {
		if f.Anonymous && isStructLike(f.Type) {
			continue
		}

		out = append(out, f)
	}

	return out
}

func isStructLike(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t.Kind() == reflect.Struct
}

func jsonTagName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}

	name, _, _ := strings.Cut(tag, ",")

	return name
}
