package profile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bitseries/profile"
	"github.com/katalvlaran/bitseries/series"
)

// TestDefault_MatchesHistoricalRun checks the default reproduces the
// 0.43/0.57 × 1500 → test.dat run.
func TestDefault_MatchesHistoricalRun(t *testing.T) {
	t.Parallel()

	p := profile.Default()
	require.NoError(t, p.Validate())
	assert.Equal(t, "test.dat", p.Output)

	spec := p.Spec()
	assert.Equal(t, series.KindWeighted, spec.Kind)
	assert.Equal(t, 1500, spec.Length)
	assert.Equal(t, []int{0, 1}, spec.Distribution.Values)
	assert.InDeltaSlice(t, []float64{0.43, 0.57}, spec.Distribution.Probs, 1e-12)
}

// TestDecode_Empty yields the default profile.
func TestDecode_Empty(t *testing.T) {
	t.Parallel()

	p, err := profile.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, profile.Default(), p)
}

// TestDecode_PartialOverride keeps defaults for absent fields.
func TestDecode_PartialOverride(t *testing.T) {
	t.Parallel()

	doc := `
kind: process
length: 64
seed: 7
process:
  trend: 0.9
  inject: [1, 1, 0]
`
	p, err := profile.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "process", p.Kind)
	assert.Equal(t, 64, p.Length)
	assert.EqualValues(t, 7, p.Seed)
	assert.Equal(t, 0.9, p.Process.Trend)
	assert.Equal(t, []int{1, 1, 0}, p.Process.Inject)
	assert.Equal(t, series.DefaultBurstMin, p.Process.BurstMin)
	assert.Equal(t, series.DefaultOrder, p.Process.Order)
	assert.Equal(t, profile.DefaultOutput, p.Output)

	s, err := series.Generate(p.Spec(), p.Options()...)
	require.NoError(t, err)
	assert.Len(t, s, 64)
}

// TestDecode_Invalid covers the validation branches and strict field checks.
func TestDecode_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{"unknown_field", "lenght: 10"},
		{"negative_length", "length: -1"},
		{"unknown_kind", "kind: markov"},
		{"empty_output", `output: ""`},
		{"empty_pattern", "kind: pattern\npattern: []"},
		{"trend_out_of_range", "process: {trend: 1.5}"},
		{"burst_range", "process: {burst_min: 4, burst_max: 2}"},
		{"order_zero", "process: {order: 0}"},
		{"forecast_order_zero", "forecast: {order: 0}"},
		{"forecast_empty_input", `forecast: {input: ""}`},
		{"forecast_ratio_range", "forecast: {test_ratio: -0.1}"},
		{"forecast_ratio_sum", "forecast: {valid_ratio: 0.6, test_ratio: 0.5}"},
		{"forecast_negative_steps", "forecast: {steps: -2}"},
		{"malformed", "length: [1"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := profile.Decode(strings.NewReader(tc.doc))
			require.Error(t, err)
		})
	}

	_, err := profile.Decode(strings.NewReader("kind: markov"))
	assert.ErrorIs(t, err, profile.ErrInvalidProfile)
	assert.ErrorIs(t, err, series.ErrUnknownKind)
}

// TestDecode_BadDistributionIsLeftToSample keeps the sum check in series.
func TestDecode_BadDistributionIsLeftToSample(t *testing.T) {
	t.Parallel()

	p, err := profile.Decode(strings.NewReader("distribution: {values: [0, 1], probs: [0.4, 0.4]}"))
	require.NoError(t, err)

	_, err = series.Generate(p.Spec(), p.Options()...)
	assert.ErrorIs(t, err, series.ErrProbabilitySum)
}

// TestLoad reads a profile from disk and reports missing files.
func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kind: pattern\nlength: 7\noutput: osc.dat\n"), 0o644))

	p, err := profile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "osc.dat", p.Output)

	s, err := series.Generate(p.Spec(), p.Options()...)
	require.NoError(t, err)
	assert.Equal(t, series.Series{0, 0, 1, 0, 0, 1, 0}, s)

	_, err = profile.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestDecode_Forecast reads the forecast section over its defaults.
func TestDecode_Forecast(t *testing.T) {
	t.Parallel()

	def := profile.Default().Forecast
	assert.Equal(t, profile.DefaultOutput, def.Input, "forecast reads what generation writes")
	assert.Equal(t, series.DefaultOrder, def.Order)
	assert.Equal(t, profile.DefaultValidRatio, def.ValidRatio)
	assert.Equal(t, profile.DefaultTestRatio, def.TestRatio)

	doc := `
forecast:
  input: osc.dat
  order: 3
  steps: 12
  graph: true
  export: graph.dot
`
	p, err := profile.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, profile.Forecast{
		Input:      "osc.dat",
		Order:      3,
		ValidRatio: profile.DefaultValidRatio,
		TestRatio:  profile.DefaultTestRatio,
		Steps:      12,
		Graph:      true,
		Export:     "graph.dot",
	}, p.Forecast)
}
