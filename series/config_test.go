// Package series contains unit tests for the configuration primitives
// (seriesConfig and Option) and the unexported helpers of the generators.
package series

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfigDefaults verifies the documented defaults of newSeriesConfig.
func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newSeriesConfig()
	assert.Nil(t, cfg.rng, "no RNG unless explicitly set")
	assert.Equal(t, defaultInitial, cfg.initial)
	assert.Zero(t, cfg.trend)
	assert.Zero(t, cfg.noise)
	assert.Zero(t, cfg.burst)
	assert.Equal(t, DefaultBurstMin, cfg.burstMin)
	assert.Equal(t, DefaultBurstMax, cfg.burstMax)
	assert.Equal(t, DefaultOrder, cfg.order)
	assert.Nil(t, cfg.inject)
}

// TestConfigOverrideOrder verifies last-wins semantics and nil-option skipping.
func TestConfigOverrideOrder(t *testing.T) {
	t.Parallel()

	cfg := newSeriesConfig(WithTrend(0.2), nil, WithTrend(0.7), WithOrder(3), WithBurstRange(1, 1))
	assert.Equal(t, 0.7, cfg.trend)
	assert.Equal(t, 3, cfg.order)
	assert.Equal(t, 1, cfg.burstMin)
	assert.Equal(t, 1, cfg.burstMax)

	// WithInjection(nil) after a pattern disables injection again.
	cfg = newSeriesConfig(WithInjection([]int{1, 0}), WithInjection(nil))
	assert.Nil(t, cfg.inject)
}

// TestRNGOptions verifies WithRand attaches the given source and WithSeed
// produces reproducible streams.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(123))
	cfg := newSeriesConfig(WithRand(r))
	assert.Same(t, r, cfg.rng)

	a := newSeriesConfig(WithSeed(42)).rng
	b := newSeriesConfig(WithSeed(42)).rng
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Equal(t, a.Int63(), b.Int63())
	assert.Equal(t, a.Int63(), b.Int63())
}

// TestWithInjectionCopies ensures the option does not alias the caller slice.
func TestWithInjectionCopies(t *testing.T) {
	t.Parallel()

	p := []int{1, 1, 0}
	cfg := newSeriesConfig(WithInjection(p))
	p[0] = 0
	assert.Equal(t, []int{1, 1, 0}, cfg.inject)
}

// TestMemory covers the majority rule with tie-breaking and order clamping.
func TestMemory(t *testing.T) {
	t.Parallel()

	s := Series{1, 1, 0}
	tests := []struct {
		name  string
		i     int
		order int
		want  int
	}{
		{"order1_copies_previous", 3, 1, 0},
		{"order2_tie_uses_previous", 3, 2, 0},
		{"order3_majority_ones", 3, 3, 1},
		{"order_clamped_to_i", 3, 9, 1},
		{"first_step", 1, 4, 1},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, memory(s, tc.i, tc.order))
		})
	}
}

// TestInjectPattern checks stamping positions and clipping at the tail.
func TestInjectPattern(t *testing.T) {
	t.Parallel()

	s := make(Series, 25)
	injectPattern(s, []int{1, 1})
	for i, v := range s {
		want := 0
		if i == 0 || i == 1 || i == 20 || i == 21 {
			want = 1
		}
		assert.Equalf(t, want, v, "index %d", i)
	}

	// Pattern longer than the remaining tail is clipped, not a panic.
	tail := make(Series, 3)
	injectPattern(tail, []int{1, 1, 1, 1, 1})
	assert.Equal(t, Series{1, 1, 1}, tail)

	// Empty pattern is a no-op.
	empty := Series{0, 1}
	injectPattern(empty, nil)
	assert.Equal(t, Series{0, 1}, empty)
}
