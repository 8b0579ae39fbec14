package metaschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaUnmarshalItemsSingleSchemaForm(t *testing.T) {
	var s Schema
	err := s.UnmarshalJSON([]byte(`{"items": {"type": "integer"}}`))
	require.NoError(t, err)

	require.NotNil(t, s.Items)
	assert.Nil(t, s.ItemsTuple)
	assert.Equal(t, SchemaType{"integer"}, s.Items.Type)
}

func TestSchemaUnmarshalItemsTupleForm(t *testing.T) {
	var s Schema
	err := s.UnmarshalJSON([]byte(`{"items": [{"type": "integer"}, {"type": "string"}]}`))
	require.NoError(t, err)

	assert.Nil(t, s.Items)
	require.Len(t, s.ItemsTuple, 2)
	assert.Equal(t, SchemaType{"integer"}, s.ItemsTuple[0].Type)
	assert.Equal(t, SchemaType{"string"}, s.ItemsTuple[1].Type)
}

func TestSchemaUnmarshalBooleanSchema(t *testing.T) {
	var s Schema
	err := s.UnmarshalJSON([]byte(`false`))
	require.NoError(t, err)

	require.NotNil(t, s.Boolean)
	assert.False(t, *s.Boolean)
}

func TestDependencyUnmarshalPropertyForm(t *testing.T) {
	var d Dependency
	err := d.UnmarshalJSON([]byte(`["a", "b"]`))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, d.PropertyNames)
	assert.Nil(t, d.Schema)
}

func TestDependencyUnmarshalSchemaForm(t *testing.T) {
	var d Dependency
	err := d.UnmarshalJSON([]byte(`{"required": ["b"]}`))
	require.NoError(t, err)

	assert.Nil(t, d.PropertyNames)
	require.NotNil(t, d.Schema)
	assert.Equal(t, []string{"b"}, d.Schema.Required)
}

func TestEvaluateItemsTupleRejectsExtraElementsWhenAdditionalItemsFalse(t *testing.T) {
	schema := &Schema{
		ItemsTuple:      []*Schema{{Type: SchemaType{"integer"}}},
		AdditionalItems: &Schema{Boolean: boolPtr(false)},
	}
	result := schema.Validate([]interface{}{1.0, "extra"})
	assert.False(t, result.IsValid())
}

func TestEvaluateItemsTupleAllowsExtraElementsByDefault(t *testing.T) {
	schema := &Schema{
		ItemsTuple: []*Schema{{Type: SchemaType{"integer"}}},
	}
	result := schema.Validate([]interface{}{1.0, "anything"})
	assert.True(t, result.IsValid())
}

func TestEvaluateDependenciesPropertyForm(t *testing.T) {
	schema := &Schema{
		Dependencies: map[string]*Dependency{
			"creditCard": {PropertyNames: []string{"billingAddress"}},
		},
	}

	invalid := schema.Validate(map[string]interface{}{"creditCard": "1234"})
	assert.False(t, invalid.IsValid())

	valid := schema.Validate(map[string]interface{}{"creditCard": "1234", "billingAddress": "x"})
	assert.True(t, valid.IsValid())
}

func TestEvaluateDependenciesSchemaForm(t *testing.T) {
	schema := &Schema{
		Dependencies: map[string]*Dependency{
			"shippingAddress": {Schema: &Schema{Required: []string{"city"}}},
		},
	}

	invalid := schema.Validate(map[string]interface{}{"shippingAddress": "x"})
	assert.False(t, invalid.IsValid())

	valid := schema.Validate(map[string]interface{}{"shippingAddress": "x", "city": "Springfield"})
	assert.True(t, valid.IsValid())
}

func TestEvaluateMaximumExclusiveBoolean(t *testing.T) {
	maxVal := NewRat(10.0)
	exclusive := true
	schema := &Schema{Maximum: maxVal, ExclusiveMaximum: &exclusive}

	assert.Nil(t, evaluateMaximum(schema, NewRat(9.0)))
	assert.NotNil(t, evaluateMaximum(schema, NewRat(10.0)))
}

func TestEvaluateMaximumInclusiveByDefault(t *testing.T) {
	maxVal := NewRat(10.0)
	schema := &Schema{Maximum: maxVal}

	assert.Nil(t, evaluateMaximum(schema, NewRat(10.0)))
	assert.NotNil(t, evaluateMaximum(schema, NewRat(10.1)))
}

func boolPtr(b bool) *bool { return &b }
