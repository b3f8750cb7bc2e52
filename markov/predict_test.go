package markov_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bitseries/markov"
	"github.com/katalvlaran/bitseries/series"
)

// TestPredict_ContinuesPattern follows a deterministic chain with full confidence.
func TestPredict_ContinuesPattern(t *testing.T) {
	t.Parallel()

	s, err := series.Repeat(30, []int{0, 0, 1})
	require.NoError(t, err)
	tm, err := markov.BuildTransitions(s, 3)
	require.NoError(t, err)

	fc, err := markov.Predict(tm, s, 9)
	require.NoError(t, err)
	want, _ := series.Repeat(9, []int{0, 0, 1})
	assert.Equal(t, want, fc.Values)
	assert.Equal(t, []float64{1, 1, 1, 1, 1, 1, 1, 1, 1}, fc.Confidence)
	assert.Equal(t, 1.0, fc.Propagated())

	sampled, err := markov.Predict(tm, s, 9, markov.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, fc, sampled, "sampling a deterministic chain changes nothing")
}

// TestPredict_MostLikely emits the majority successor of a skewed Sample series.
func TestPredict_MostLikely(t *testing.T) {
	t.Parallel()

	s, err := series.Sample(2000, series.Binary(0.1, 0.9), series.WithSeed(1))
	require.NoError(t, err)
	tm, err := markov.BuildTransitions(s, 1)
	require.NoError(t, err)

	fc, err := markov.Predict(tm, s, 5)
	require.NoError(t, err)
	assert.Equal(t, series.Series{1, 1, 1, 1, 1}, fc.Values)
	for _, c := range fc.Confidence {
		assert.InDelta(t, 0.9, c, 0.08)
	}
	assert.Less(t, fc.Propagated(), fc.Confidence[0])
}

// TestPredict_Sampled is reproducible per seed and shares a stream through WithRand.
func TestPredict_Sampled(t *testing.T) {
	t.Parallel()

	s, err := series.Sample(500, series.Binary(0.5, 0.5), series.WithSeed(4))
	require.NoError(t, err)
	tm, err := markov.BuildTransitions(s, 2)
	require.NoError(t, err)

	a, err := markov.Predict(tm, s, 50, markov.WithSeed(9))
	require.NoError(t, err)
	b, err := markov.Predict(tm, s, 50, markov.WithRand(rand.New(rand.NewSource(9))))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	for i, v := range a.Values {
		assert.Contains(t, []int{0, 1}, v)
		assert.Greater(t, a.Confidence[i], 0.0)
	}
	assert.Panics(t, func() { markov.WithRand(nil) })
}

// TestPredict_UnobservedState falls back to the smallest symbol with confidence 0.
func TestPredict_UnobservedState(t *testing.T) {
	t.Parallel()

	s := series.Series{0, 0, 0, 1}
	tm, err := markov.BuildTransitions(s, 1)
	require.NoError(t, err)

	fc, err := markov.Predict(tm, s, 2)
	require.NoError(t, err)
	assert.Equal(t, series.Series{0, 0}, fc.Values)
	assert.InDeltaSlice(t, []float64{0, 2.0 / 3.0}, fc.Confidence, 1e-12)
	assert.Zero(t, fc.Propagated())

	none, err := markov.Predict(tm, s, 0)
	require.NoError(t, err)
	assert.Empty(t, none.Values)
	assert.Equal(t, 1.0, none.Propagated())
}

func TestPredict_Errors(t *testing.T) {
	t.Parallel()

	tm, err := markov.BuildTransitions(series.Series{0, 1, 1, 0, 1}, 3)
	require.NoError(t, err)

	_, err = markov.Predict(nil, series.Series{0}, 1)
	assert.ErrorIs(t, err, markov.ErrNilTransitions)
	_, err = markov.Predict(tm, series.Series{0, 1, 1}, -1)
	assert.ErrorIs(t, err, markov.ErrBadSteps)
	_, err = markov.Predict(tm, series.Series{0, 1}, 1)
	assert.ErrorIs(t, err, markov.ErrShortHistory)
	_, err = markov.Predict(tm, series.Series{0, 1, 5}, 1)
	assert.ErrorIs(t, err, markov.ErrUnknownSymbol)
}
