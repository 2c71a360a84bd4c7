package presentation

import (
	"github.com/davecgh/go-spew/spew"
)

// Representation renders a value as text.
type Representation interface {
	ToStringOf(v any) string
}

// Func adapts a function to the Representation interface.
type Func func(v any) string

func (f Func) ToStringOf(v any) string {
	return f(v)
}

// Spew returns a Representation backed by go-spew, without pointer addresses and
// with sorted map keys so that output is stable.
func Spew() Representation {
	cfg := &spew.ConfigState{
		Indent:                  " ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}

	return Func(func(v any) string {
		if v == nil {
			return Null
		}

		return cfg.Sprintf("%+v", v)
	})
}

// ByName returns the representation registered under name: "standard" or "spew".
// The empty name selects the standard one.
func ByName(name string) (Representation, bool) {
	switch name {
	case "", "standard":
		return Standard(), true
	case "spew":
		return Spew(), true
	default:
		return nil, false
	}
}
