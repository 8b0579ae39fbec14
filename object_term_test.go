package jsonsubschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewObjectTermBumpsMinPropertiesToRequiredCount(t *testing.T) {
	term, err := newObjectTerm(0, 0, true, []string{"a", "b", "c"}, nil, nil, boolOrSchemaTrue(), nil)
	require.NoError(t, err)
	ot, ok := term.(*objectTerm)
	require.True(t, ok)
	assert.Equal(t, 3, ot.propCount.min)
}

func TestObjectUninhabitedWhenRequiredKeyNotCoveredAndAdditionalPropertiesFalse(t *testing.T) {
	term, err := newObjectTerm(0, 0, true, []string{"a"}, nil, nil, boolOrSchemaFalse(), nil)
	require.NoError(t, err)
	assert.True(t, isBot(term))
}

func TestObjectInhabitedWhenRequiredKeyCoveredByPattern(t *testing.T) {
	pattern := map[string]Term{"^a.*$": top}
	term, err := newObjectTerm(0, 0, true, []string{"ab"}, nil, pattern, boolOrSchemaFalse(), nil)
	require.NoError(t, err)
	assert.False(t, isBot(term))
}

func TestLookupSchemasPrefersNamedProperty(t *testing.T) {
	o := &objectTerm{
		properties:        map[string]Term{"a": top},
		patternProperties: map[string]Term{"^a": bot},
		additional:        boolOrSchemaTrue(),
	}
	got := lookupSchemas("a", o)
	require.Len(t, got, 1)
	assert.True(t, isTop(got[0]), "a literal property name takes precedence over a matching pattern")
}

func TestLookupSchemasFallsBackToAdditionalProperties(t *testing.T) {
	o := &objectTerm{
		properties:        nil,
		patternProperties: nil,
		additional:        boolOrSchemaOf(top),
	}
	got := lookupSchemas("anything", o)
	require.Len(t, got, 1)
	assert.True(t, isTop(got[0]))
}

func TestPatternCardinalityFinite(t *testing.T) {
	assert.True(t, patternCardinalityFinite("^abc$"))
	assert.False(t, patternCardinalityFinite("^a*$"))
}
