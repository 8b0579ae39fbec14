package jsonsubschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArrayTermCapsMaxItemsWhenAdditionalItemsFalse(t *testing.T) {
	tuple := []Term{top, top, top}
	term, err := newArrayTerm(0, 0, true, true, tuple, nil, boolOrSchemaFalse(), false, nil)
	require.NoError(t, err)
	at, ok := term.(*arrayTerm)
	require.True(t, ok)
	assert.Equal(t, 3, at.length.max)
	assert.False(t, at.length.unboundedMax)
}

func TestArrayUninhabitedWhenMinItemsExceedsTupleLength(t *testing.T) {
	tuple := []Term{top}
	term, err := newArrayTerm(5, 0, true, true, tuple, nil, boolOrSchemaFalse(), false, nil)
	require.NoError(t, err)
	assert.True(t, isBot(term))
}

func TestArrayUninhabitedWhenATuplePositionIsBot(t *testing.T) {
	tuple := []Term{top, bot}
	term, err := newArrayTerm(0, 0, true, true, tuple, nil, boolOrSchemaTrue(), false, nil)
	require.NoError(t, err)
	assert.True(t, isBot(term))
}

func TestArrayShapeUnifiesSingleAndTupleForm(t *testing.T) {
	single, err := newArrayTerm(0, 0, true, false, nil, top, boolOrSchemaTrue(), false, nil)
	require.NoError(t, err)
	at := single.(*arrayTerm)
	tuple, add := at.shape()
	assert.Nil(t, tuple)
	assert.True(t, isTop(add.asTerm()))
}
