// Package conv provides converters that coerce loosely typed values, such as form fields
// or map based records, into a single target type family.
//
// Base converters return nil for absent input (nil, nil pointer or empty string).
// Primitive wraps a converter so that absence becomes the zero value, Nullable wraps it
// so that the result is a pointer and absence a typed nil pointer.
//
// A sequence (slice, array or collection other than []byte) is accepted by scalar converters
// only when it holds exactly one element, which is then converted in its place.
package conv
