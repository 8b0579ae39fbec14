package metaschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDocumentAcceptsWellFormedDraft4Schema(t *testing.T) {
	doc := []byte(`{
		"type": "object",
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"age": {"type": "integer", "minimum": 0}
		},
		"required": ["name"]
	}`)

	err := ValidateDocument(doc)
	require.NoError(t, err)
}

func TestValidateDocumentRejectsWrongKeywordType(t *testing.T) {
	// "required" must be an array of strings, not a bare string.
	doc := []byte(`{"type": "object", "required": "name"}`)

	err := ValidateDocument(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaInvalid)
}

func TestValidateDocumentRejectsNegativeMaxLength(t *testing.T) {
	doc := []byte(`{"type": "string", "maxLength": -1}`)

	err := ValidateDocument(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaInvalid)
}

func TestValidateDocumentRejectsExclusiveMaximumWithoutMaximum(t *testing.T) {
	// draft-4 itself declares a property-dependency: "exclusiveMaximum" requires "maximum".
	doc := []byte(`{"type": "number", "exclusiveMaximum": true}`)

	err := ValidateDocument(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaInvalid)
}

func TestValidateDocumentAcceptsExclusiveMaximumWithMaximum(t *testing.T) {
	doc := []byte(`{"type": "number", "maximum": 10, "exclusiveMaximum": true}`)

	err := ValidateDocument(doc)
	require.NoError(t, err)
}

func TestValidateDocumentAcceptsSchemaUsingRefToLocalDefinitions(t *testing.T) {
	doc := []byte(`{
		"definitions": {
			"positiveInt": {"type": "integer", "minimum": 0}
		},
		"properties": {
			"count": {"$ref": "#/definitions/positiveInt"}
		}
	}`)

	err := ValidateDocument(doc)
	require.NoError(t, err)
}

func TestValidateDocumentAcceptsTupleItemsWithAdditionalItems(t *testing.T) {
	doc := []byte(`{
		"type": "array",
		"items": [
			{"type": "integer"},
			{"type": "string"}
		],
		"additionalItems": false
	}`)

	err := ValidateDocument(doc)
	require.NoError(t, err)
}

func TestValidateDocumentAcceptsBooleanSchemas(t *testing.T) {
	doc := []byte(`{
		"type": "object",
		"additionalProperties": false,
		"properties": {"a": true}
	}`)

	err := ValidateDocument(doc)
	require.NoError(t, err)
}

func TestValidateDocumentRejectsNonBooleanAdditionalProperties(t *testing.T) {
	doc := []byte(`{"additionalProperties": "nope"}`)

	err := ValidateDocument(doc)
	require.Error(t, err)
}

func TestValidateDocumentAcceptsDependenciesKeyword(t *testing.T) {
	doc := []byte(`{
		"type": "object",
		"dependencies": {
			"creditCard": ["billingAddress"],
			"shippingAddress": {"required": ["city"]}
		}
	}`)

	err := ValidateDocument(doc)
	require.NoError(t, err)
}
