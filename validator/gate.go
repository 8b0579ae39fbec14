package metaschema

import (
	_ "embed"
	"errors"
	"fmt"
)

//go:embed draft4.json
var draft4Metaschema []byte

// ErrSchemaInvalid is returned by ValidateDocument when a document fails
// the draft-4 metaschema check.
var ErrSchemaInvalid = errors.New("schema document does not conform to draft-4")

// ValidateDocument checks that raw (a decoded-then-reencoded or raw JSON
// document) conforms to the draft-4 metaschema. It is the CLI's input gate:
// the subschema algebra never sees a document that fails this check.
func ValidateDocument(raw []byte) error {
	compiler := NewCompiler()

	meta, err := compiler.Compile(draft4Metaschema)
	if err != nil {
		return fmt.Errorf("compiling draft-4 metaschema: %w", err)
	}

	var instance any
	if err := compiler.jsonDecoder(raw, &instance); err != nil {
		return fmt.Errorf("decoding schema document: %w", err)
	}

	result := meta.Validate(instance)
	if !result.IsValid() {
		details := result.GetDetailedErrors()
		return fmt.Errorf("%w: %v", ErrSchemaInvalid, details)
	}

	return nil
}
