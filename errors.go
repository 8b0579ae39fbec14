package jsonsubschema

import "errors"

// === Unsupported construct errors ===
var (
	// ErrUnsupportedNegation is returned when canonicalizing a "not" whose
	// operand is not a single-primitive-type schema, or whose primitive type
	// has no defined complement (integer, number, boolean, null, array,
	// object).
	ErrUnsupportedNegation = errors.New("unsupported negation: no defined complement for this schema shape")

	// ErrUnsupportedOneOf is returned when canonicalizing any schema that
	// uses "oneOf". Rejected unconditionally rather than only on the left
	// of a subtype query: see DESIGN.md for why.
	ErrUnsupportedOneOf = errors.New("unsupported construct: oneOf is not supported")
)

// === Input errors ===
var (
	// ErrInvalidSchema is returned by Canonicalize for a malformed schema
	// shape: a value that is neither a bool nor a JSON object, a non-array
	// allOf/anyOf/required, a non-string required entry or type, an
	// unrecognized type, or a non-object properties/patternProperties.
	ErrInvalidSchema = errors.New("invalid schema document")

	// ErrDecode is returned when a keyword value cannot be decoded: a
	// minimum/maximum/multipleOf that is not a number, or a string pattern
	// that does not compile.
	ErrDecode = errors.New("value is not a valid schema shape")
)

// === Internal consistency errors ===
var (
	// ErrInternalInconsistency names an invariant violation reached only by
	// a bug in the algebra itself (e.g. a meet producing minimum > maximum
	// after emptiness was already special-cased). No function in this
	// package returns it.
	ErrInternalInconsistency = errors.New("internal inconsistency in schema algebra")
)
