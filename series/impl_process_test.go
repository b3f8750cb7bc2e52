package series_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/bitseries/series"
)

// TestProcess_Errors covers the validation branches.
func TestProcess_Errors(t *testing.T) {
	t.Parallel()

	s, err := series.Process(-1, series.WithSeed(1))
	assert.Nil(t, s)
	assert.ErrorIs(t, err, series.ErrBadLength)

	s, err = series.Process(10)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, series.ErrNeedRandSource)
}

// TestProcess_ZeroLength returns an empty, non-nil series.
func TestProcess_ZeroLength(t *testing.T) {
	t.Parallel()

	s, err := series.Process(0, series.WithSeed(1))
	require.NoError(t, err)
	assert.NotNil(t, s)
	assert.Empty(t, s)
}

// TestProcess_FullPersistence: trend=1 without noise or bursts keeps the
// initial state forever.
func TestProcess_FullPersistence(t *testing.T) {
	t.Parallel()

	for _, initial := range []float64{0, 1} {
		s, err := series.Process(64, series.WithSeed(4), series.WithInitial(initial), series.WithTrend(1))
		require.NoError(t, err)
		for i, v := range s {
			require.Equalf(t, int(initial), v, "index %d", i)
		}
	}
}

// TestProcess_AlwaysFlip: full persistence plus noise=1 alternates values.
func TestProcess_AlwaysFlip(t *testing.T) {
	t.Parallel()

	s, err := series.Process(6,
		series.WithSeed(8),
		series.WithInitial(0),
		series.WithTrend(1),
		series.WithNoise(1),
	)
	require.NoError(t, err)
	assert.Equal(t, series.Series{0, 1, 0, 1, 0, 1}, s)
}

// TestProcess_BurstLookBack pins the burst semantics: each burst starts at
// i-1, writes the complement of s[i-1], and may run past i.
func TestProcess_BurstLookBack(t *testing.T) {
	t.Parallel()

	s, err := series.Process(4,
		series.WithSeed(1),
		series.WithInitial(0),
		series.WithTrend(1),
		series.WithBurst(1),
		series.WithBurstRange(2, 2),
	)
	require.NoError(t, err)
	// i=1: s=[0,0] → burst 1 over [0,2)  ⇒ [1,1,_,_]
	// i=2: s[2]=1  → burst 0 over [1,3)  ⇒ [1,0,0,_]
	// i=3: s[3]=0  → burst 1 over [2,4)  ⇒ [1,0,1,1]
	assert.Equal(t, series.Series{1, 0, 1, 1}, s)
}

// TestProcess_Injection stamps the periodic pattern every 10 pattern lengths.
func TestProcess_Injection(t *testing.T) {
	t.Parallel()

	s, err := series.Process(45,
		series.WithSeed(2),
		series.WithInitial(0),
		series.WithTrend(1),
		series.WithInjection([]int{1, 1}),
	)
	require.NoError(t, err)
	for i, v := range s {
		want := 0
		switch i {
		case 0, 1, 20, 21, 40, 41:
			want = 1
		}
		assert.Equalf(t, want, v, "index %d", i)
	}
}

// TestProcess_DefaultOrderIsOne: leaving the order unset behaves exactly like
// WithOrder(1), i.e. the trend step copies the previous value.
func TestProcess_DefaultOrderIsOne(t *testing.T) {
	t.Parallel()

	a, err := series.Process(300, series.WithSeed(3), series.WithTrend(0.6), series.WithNoise(0.1))
	require.NoError(t, err)
	b, err := series.Process(300, series.WithSeed(3), series.WithTrend(0.6), series.WithNoise(0.1), series.WithOrder(1))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestProcess_Reproducible verifies seed determinism with every knob enabled.
func TestProcess_Reproducible(t *testing.T) {
	t.Parallel()

	opts := func() []series.Option {
		return []series.Option{
			series.WithSeed(99),
			series.WithTrend(0.7),
			series.WithNoise(0.05),
			series.WithBurst(0.02),
			series.WithOrder(3),
			series.WithInjection([]int{0, 0, 1}),
		}
	}
	a, err := series.Process(500, opts()...)
	require.NoError(t, err)
	b, err := series.Process(500, opts()...)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestProcess_Properties: any knob combination yields n binary values.
func TestProcess_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 300).Draw(t, "n")
		minB := rapid.IntRange(1, 6).Draw(t, "burstMin")
		maxB := rapid.IntRange(minB, 8).Draw(t, "burstMax")
		opts := []series.Option{
			series.WithSeed(rapid.Int64().Draw(t, "seed")),
			series.WithInitial(rapid.Float64Range(0, 1).Draw(t, "initial")),
			series.WithTrend(rapid.Float64Range(0, 1).Draw(t, "trend")),
			series.WithNoise(rapid.Float64Range(0, 1).Draw(t, "noise")),
			series.WithBurst(rapid.Float64Range(0, 1).Draw(t, "burst")),
			series.WithBurstRange(minB, maxB),
			series.WithOrder(rapid.IntRange(1, 5).Draw(t, "order")),
			series.WithInjection(rapid.SliceOfN(rapid.IntRange(0, 1), 0, 4).Draw(t, "inject")),
		}

		s, err := series.Process(n, opts...)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(s) != n {
			t.Fatalf("len = %d, want %d", len(s), n)
		}
		for i, v := range s {
			if v != 0 && v != 1 {
				t.Fatalf("s[%d] = %d, want 0 or 1", i, v)
			}
		}
	})
}
