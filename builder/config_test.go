// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRNGOptions verifies the rng field: nil by default, set by WithRand,
// reproducible with WithSeed.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	assert.Nil(t, newBuilderConfig().rng)

	r := rand.New(rand.NewSource(123))
	assert.Same(t, r, newBuilderConfig(WithRand(r)).rng)

	a := newBuilderConfig(WithSeed(42)).rng
	b := newBuilderConfig(WithSeed(42)).rng
	assert.Equal(t, a.Int63(), b.Int63())

	assert.Panics(t, func() { WithRand(nil) })
}

// TestWeightOptions verifies defaults and last-wins overrides.
func TestWeightOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultMinWeight, newBuilderConfig().weightFn(nil))
	assert.EqualValues(t, 7, newBuilderConfig(WithConstantWeight(7)).weightFn(nil))
	assert.EqualValues(t, 3, newBuilderConfig(WithConstantWeight(7), WithWeightRange(3, 3)).weightFn(nil))

	assert.Panics(t, func() { WithWeightFn(nil) })
}

func TestMaxSimpleEdges(t *testing.T) {
	assert.Zero(t, maxSimpleEdges(0))
	assert.Zero(t, maxSimpleEdges(1))
	assert.Equal(t, 1, maxSimpleEdges(2))
	assert.Equal(t, 1225, maxSimpleEdges(50))
}
