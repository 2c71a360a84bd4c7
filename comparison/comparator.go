// Package comparison provides the comparison strategies assertions use to decide
// whether values are equal or strings contain one another.
package comparison

import (
	"reflect"
	"strings"

	"golang.org/x/text/cases"
)

// Comparator orders two values: negative, zero or positive like strings.Compare.
type Comparator interface {
	Compare(a, b any) int
}

// Named is implemented by comparators that provide their own name for messages.
type Named interface {
	Name() string
}

type namedFunc struct {
	name string
	fn   func(a, b any) int
}

func (f namedFunc) Compare(a, b any) int { return f.fn(a, b) }
func (f namedFunc) Name() string         { return f.name }

// ComparatorFunc turns fn into a Comparator reported as name in failure messages.
func ComparatorFunc(name string, fn func(a, b any) int) Comparator {
	return namedFunc{name: name, fn: fn}
}

// ComparatorName returns the name of c used in failure messages: its own name
// when it implements Named, its type name otherwise.
func ComparatorName(c Comparator) string {
	if n, ok := c.(Named); ok {
		return n.Name()
	}

	t := reflect.TypeOf(c)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == nil || t.Name() == "" {
		return "anonymous"
	}

	return t.Name()
}

// CaseInsensitiveStringComparator compares strings after Unicode case folding.
type CaseInsensitiveStringComparator struct{}

func (CaseInsensitiveStringComparator) Compare(a, b any) int {
	as, aok := a.(string)
	bs, bok := b.(string)

	switch {
	case aok && bok:
		folder := cases.Fold()
		return strings.Compare(folder.String(as), folder.String(bs))
	case aok:
		return 1
	case bok:
		return -1
	default:
		return 0
	}
}
