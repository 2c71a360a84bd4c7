package introspection

import (
	"errors"
	"fmt"
)

// Kinds of introspection failures, matched with errors.Is.
var (
	ErrFieldNotFound      = errors.New("field not found")
	ErrFieldNotAccessible = errors.New("field not accessible")
	ErrInvalidPath        = errors.New("invalid field path")
	ErrIncompatibleType   = errors.New("incompatible field type")
	ErrInvalidTargets     = errors.New("invalid targets")
)

// IntrospectionError reports that a field value could not be obtained.
type IntrospectionError struct {
	Kind   error  // one of the Err* kinds above
	Field  string // field name or path the failure is about
	Target string // rendered object the field was looked up on

	message string
	cause   error
}

func (e *IntrospectionError) Error() string {
	return e.message
}

// Is reports whether target is the kind of this error.
func (e *IntrospectionError) Is(target error) bool {
	return target == e.Kind
}

func (e *IntrospectionError) Unwrap() error {
	return e.cause
}

func unableToObtain(kind error, field, target, suffix string) *IntrospectionError {
	return &IntrospectionError{
		Kind:    kind,
		Field:   field,
		Target:  target,
		message: fmt.Sprintf("Unable to obtain the value of the field <'%s'> from <%s>%s", field, target, suffix),
	}
}

func fieldNotFound(field, target, suggestion string) *IntrospectionError {
	suffix := ""
	if suggestion != "" {
		suffix = fmt.Sprintf(", did you mean <'%s'>?", suggestion)
	}

	return unableToObtain(ErrFieldNotFound, field, target, suffix)
}

func fieldNotAccessible(field, target string) *IntrospectionError {
	return unableToObtain(ErrFieldNotAccessible, field, target,
		", check that field is public or allow extracting private fields.")
}

func invalidPath(path, target string, cause error) *IntrospectionError {
	e := unableToObtain(ErrInvalidPath, path, target, "")
	e.cause = cause

	return e
}

func incompatibleType(path, target, from, to string) *IntrospectionError {
	return &IntrospectionError{
		Kind:   ErrIncompatibleType,
		Field:  path,
		Target: target,
		message: fmt.Sprintf("Unable to cast the value of the field <'%s'> from <%s>: %s is not convertible to %s",
			path, target, from, to),
	}
}

func invalidTargets(typeName string) *IntrospectionError {
	return &IntrospectionError{
		Kind:    ErrInvalidTargets,
		Target:  typeName,
		message: fmt.Sprintf("Unable to iterate over targets of type <%s>, expecting a slice, an array or an iterator", typeName),
	}
}
