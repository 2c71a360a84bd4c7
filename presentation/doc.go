// Package presentation renders values for failure and error messages.
//
// The Standard representation follows the conventions of assertion messages:
//   - nil values render as null
//   - strings are single quoted: 'Yoda'
//   - fmt.Stringer and error values render with their own text
//   - structs render as TypeName[Field=value, ...], non-exported fields included
//   - slices and arrays render as [a, b], maps as {k=v} with keys sorted
//
// Representations are pluggable: introspection errors and message factories take any
// Representation, and Spew renders through go-spew for debugging deep graphs.
package presentation
