// Package jsonsubschema decides the subschema relation between two JSON
// Schema (draft-4 numeric-bound style) documents: given S1 and S2, whether
// every value accepted by S1 is also accepted by S2.
//
// The package canonicalizes each input into a tagged term, then dispatches
// meet, join, subtype, and uninhabitedness checks by term variant. Regex
// inclusion for the string variant's pattern constraint is delegated to the
// regexalg subpackage; JSON Schema validation of the CLI's own inputs is
// delegated to the validator subpackage. Neither concern lives here.
package jsonsubschema
