package metaschema

import (
	"errors"
	"fmt"
)

// Schema compilation and reference resolution errors.
var (
	// ErrSchemaCompilation names a failed schema compilation. No function in
	// this package returns it: Compile returns the decoder's or the regex
	// check's error directly.
	ErrSchemaCompilation = errors.New("schema compilation failed")

	// ErrReferenceResolution is returned when a $ref cannot be resolved against the local schema cache.
	ErrReferenceResolution = errors.New("reference resolution failed")

	// ErrGlobalReferenceResolution is returned when a $ref's base URI has no registered schema.
	ErrGlobalReferenceResolution = errors.New("global reference resolution failed")

	// ErrJSONPointerSegmentDecode is returned when a JSON pointer segment cannot be unescaped.
	ErrJSONPointerSegmentDecode = errors.New("json pointer segment decode failed")

	// ErrJSONPointerSegmentNotFound is returned when a JSON pointer segment does not resolve to a schema.
	ErrJSONPointerSegmentNotFound = errors.New("json pointer segment not found")

	// ErrInvalidSchemaType is returned when the JSON schema "type" keyword holds something
	// other than a type-name string or an array of type-name strings.
	ErrInvalidSchemaType = errors.New("invalid schema type")

	// ErrRegexValidation is returned when one or more regex patterns in a schema fail to compile.
	ErrRegexValidation = errors.New("regex pattern validation failed")
)

// Rational-number conversion errors, used by Rat when decoding "multipleOf"/"maximum"/"minimum".
var (
	// ErrUnsupportedRatType is returned when a JSON value's type cannot be converted to *big.Rat.
	ErrUnsupportedRatType = errors.New("unsupported rat type")

	// ErrRatConversion is returned when a numeric literal cannot be parsed into a *big.Rat.
	ErrRatConversion = errors.New("rat conversion failed")
)

// RegexPatternError describes a single invalid regex pattern found at a specific
// location within a schema document ("pattern" or a "patternProperties" key).
type RegexPatternError struct {
	Keyword  string
	Location string
	Pattern  string
	Err      error
}

func (e *RegexPatternError) Error() string {
	return fmt.Sprintf("%s at %s: pattern %q: %v", e.Keyword, e.Location, e.Pattern, e.Err)
}

func (e *RegexPatternError) Unwrap() error { return e.Err }
