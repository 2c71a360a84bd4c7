// Package errmsg builds the failure messages of assertions.
//
// A Factory captures the values of a failed assertion and renders them into a
// message prefixed by the assertion description:
//
//	[Test] expecting:
//	<'motif'>
//	 to appear only once in:
//	<'aaamotifmotifaabbbmotifaaa'>
//	 but it appeared 3 times.
package errmsg

import (
	"fmt"

	"assertkit/description"
	"assertkit/presentation"
)

// Factory renders a failure message.
type Factory interface {
	// Create renders the message with the standard representation.
	Create(d description.Description) string
	// CreateWith renders the message, formatting values with r.
	CreateWith(d description.Description, r presentation.Representation) string
}

// unquoted is a message argument written as is, bypassing the representation.
type unquoted string

type basicFactory struct {
	format string
	args   []any
}

func newBasicFactory(format string, args ...any) *basicFactory {
	return &basicFactory{format: format, args: args}
}

func (f *basicFactory) Create(d description.Description) string {
	return f.CreateWith(d, presentation.Standard())
}

func (f *basicFactory) CreateWith(d description.Description, r presentation.Representation) string {
	if r == nil {
		r = presentation.Standard()
	}

	rendered := make([]any, len(f.args))
	for i, arg := range f.args {
		if s, ok := arg.(unquoted); ok {
			rendered[i] = string(s)
			continue
		}

		rendered[i] = r.ToStringOf(arg)
	}

	return formatDescription(d) + fmt.Sprintf(f.format, rendered...)
}

func formatDescription(d description.Description) string {
	if description.IsEmpty(d) {
		return ""
	}

	return "[" + d.Value() + "] "
}
