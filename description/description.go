// Package description provides the descriptions prefixed to failure messages.
package description

import "fmt"

// Description describes the value under assertion, e.g. "[Test] ...".
type Description interface {
	Value() string
}

type text struct {
	format string
	args   []any
}

// Text returns a Description formatted with fmt.Sprintf semantics when args are given.
func Text(format string, args ...any) Description {
	return text{format: format, args: args}
}

func (t text) Value() string {
	if len(t.args) == 0 {
		return t.format
	}

	return fmt.Sprintf(t.format, t.args...)
}

func (t text) String() string {
	return t.Value()
}

// Empty returns a Description with no text.
func Empty() Description {
	return text{}
}

// IsEmpty reports whether d is nil or renders no text.
func IsEmpty(d Description) bool {
	return d == nil || d.Value() == ""
}
