package jsonsubschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEnumOverlayFiltersAndDedups(t *testing.T) {
	term, err := newIntegerTerm(nil, false, nil, false, nil, []any{1.0, 2.0, 2.0, 3.0})
	require.NoError(t, err)

	it, ok := term.(*integerTerm)
	require.True(t, ok)
	assert.ElementsMatch(t, []any{1.0, 2.0, 3.0}, it.enum)
}

func TestApplyEnumOverlayCollapsesToBotWhenNothingSurvives(t *testing.T) {
	term, err := newIntegerTerm(r(10), false, nil, false, nil, []any{1.0, 2.0})
	require.NoError(t, err)
	assert.True(t, isBot(term), "every enum value fails minimum=10, so the term collapses to Bot")
}

func TestMeetEnumIntersects(t *testing.T) {
	met := &integerTerm{}
	result, err := meetEnum(met, []any{1.0, 2.0, 3.0}, []any{2.0, 3.0, 4.0})
	require.NoError(t, err)
	it, ok := result.(*integerTerm)
	require.True(t, ok)
	assert.ElementsMatch(t, []any{2.0, 3.0}, it.enum)
}

func TestMeetEnumEmptyIntersectionIsBot(t *testing.T) {
	met := &integerTerm{}
	result, err := meetEnum(met, []any{1.0}, []any{2.0})
	require.NoError(t, err)
	assert.True(t, isBot(result))
}

func TestValidatesAgainstString(t *testing.T) {
	term, err := newStringTerm(1, 3, false, "^a.*$", nil)
	require.NoError(t, err)
	assert.True(t, validatesAgainst(term, "ab"))
	assert.False(t, validatesAgainst(term, "ba"))
	assert.False(t, validatesAgainst(term, 5.0))
}

func TestCanonicalEnumKeyStableAcrossEqualValues(t *testing.T) {
	assert.Equal(t, canonicalEnumKey(map[string]any{"a": 1.0, "b": 2.0}), canonicalEnumKey(map[string]any{"b": 2.0, "a": 1.0}))
}
