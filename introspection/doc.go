// Package introspection extracts field values from objects by dotted field path.
//
// A FieldSupport resolves paths such as "name.first" against single objects
// (FieldValue) or against every element of a slice, array or iterator
// (FieldValues, FieldValuesSeq), returning typed results in input order.
//
// # Resolution rules
//
//   - A nil target, or a nil value met halfway through a path, resolves to
//     the zero value of the requested type. This is never an error.
//   - A segment naming no field fails with ErrFieldNotFound.
//   - A non-exported field fails with ErrFieldNotAccessible unless the
//     FieldSupport allows extracting private fields (the default).
//   - A malformed path, e.g. "id." or "a..b", fails with ErrInvalidPath.
//   - A value that cannot be losslessly converted to the requested type
//     fails with ErrIncompatibleType.
//
// All failures are *IntrospectionError values whose message embeds the
// offending field and the rendered target.
//
// # Field lookup
//
// Segments are looked up, in order, in getters registered through a Registry,
// in string-keyed maps, then in struct fields by exact name, json tag name and
// case-insensitive name (see FieldMatching). Promoted fields of embedded
// structs are found like the struct's own fields.
package introspection
