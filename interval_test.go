package jsonsubschema

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func r(n int64) *big.Rat { return big.NewRat(n, 1) }

func TestNumIntervalEmpty(t *testing.T) {
	assert.True(t, numInterval{min: r(5), max: r(3)}.empty())
	assert.False(t, numInterval{min: r(3), max: r(5)}.empty())
	assert.True(t, numInterval{min: r(3), max: r(3), exclusiveMin: true}.empty())
	assert.False(t, numInterval{min: r(3), max: r(3)}.empty())
}

func TestNumIntervalMeetTightensBounds(t *testing.T) {
	a := numInterval{min: r(0), max: r(10)}
	b := numInterval{min: r(5), max: r(20)}
	m := a.meet(b)
	assert.Equal(t, 0, m.min.Cmp(r(5)))
	assert.Equal(t, 0, m.max.Cmp(r(10)))
}

func TestNumIntervalMeetPreservesExclusivityAtTie(t *testing.T) {
	a := numInterval{min: r(0), max: r(10), exclusiveMax: true}
	b := numInterval{min: r(0), max: r(10)}
	m := a.meet(b)
	assert.True(t, m.exclusiveMax, "the tighter (exclusive) sense must win when bounds tie")
}

func TestNumIntervalContains(t *testing.T) {
	wide := numInterval{min: r(0), max: r(100)}
	narrow := numInterval{min: r(10), max: r(20)}
	assert.True(t, wide.contains(narrow))
	assert.False(t, narrow.contains(wide))
}

func TestCountIntervalEmptyAndContains(t *testing.T) {
	c := countInterval{min: 5, max: 3}
	assert.True(t, c.empty())

	wide := countInterval{min: 0, unboundedMax: true}
	narrow := countInterval{min: 2, max: 5}
	assert.True(t, wide.contains(narrow))
	assert.False(t, narrow.contains(wide))
}

func TestCountIntervalMeet(t *testing.T) {
	a := countInterval{min: 0, max: 10}
	b := countInterval{min: 5, max: 20}
	m := a.meet(b)
	assert.Equal(t, 5, m.min)
	assert.Equal(t, 10, m.max)
	assert.False(t, m.unboundedMax)
}
