package jsonsubschema

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatFromAny(t *testing.T) {
	got, err := ratFromAny(2.5)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Cmp(big.NewRat(5, 2)))

	got2, err := ratFromAny(3)
	require.NoError(t, err)
	assert.Equal(t, 0, got2.Cmp(big.NewRat(3, 1)))

	_, err = ratFromAny("not a number")
	assert.Error(t, err)
}

func TestCeilFloorRat(t *testing.T) {
	assert.Equal(t, 0, ceilRat(big.NewRat(5, 2)).Cmp(big.NewRat(3, 1)))
	assert.Equal(t, 0, floorRat(big.NewRat(5, 2)).Cmp(big.NewRat(2, 1)))
	assert.Equal(t, 0, ceilRat(big.NewRat(-5, 2)).Cmp(big.NewRat(-2, 1)))
	assert.Equal(t, 0, floorRat(big.NewRat(-5, 2)).Cmp(big.NewRat(-3, 1)))
	assert.Equal(t, 0, ceilRat(big.NewRat(4, 1)).Cmp(big.NewRat(4, 1)))
}

func TestLcmRat(t *testing.T) {
	got := lcmRat(big.NewRat(2, 1), big.NewRat(3, 1))
	assert.Equal(t, 0, got.Cmp(big.NewRat(6, 1)))

	gotHalf := lcmRat(big.NewRat(1, 2), big.NewRat(1, 3))
	assert.Equal(t, 0, gotHalf.Cmp(big.NewRat(1, 1)))
}

func TestDivisibleRat(t *testing.T) {
	assert.True(t, divisibleRat(big.NewRat(6, 1), big.NewRat(2, 1)))
	assert.False(t, divisibleRat(big.NewRat(7, 1), big.NewRat(2, 1)))
	assert.False(t, divisibleRat(big.NewRat(6, 1), big.NewRat(0, 1)))
}
