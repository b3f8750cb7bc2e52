// Package profile loads generation profiles: YAML documents that name one
// generator kind, its parameters, the series length, the RNG seed and the
// output path.
//
//	output: test.dat
//	length: 1500
//	seed: 7
//	kind: weighted
//	distribution: {values: [0, 1], probs: [0.43, 0.57]}
//	forecast: {input: test.dat, order: 3, valid_ratio: 0.1, test_ratio: 0.2}
//
// The forecast section drives the forecast command, which reads a series
// back, fits a Markov chain and scores it.
//
// Unknown fields are rejected so a typo never silently falls back to a default.
package profile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bitseries/series"
)

// DefaultOutput is the file written when no output path is configured.
const DefaultOutput = "test.dat"

// ErrInvalidProfile wraps every validation failure of a Profile.
var ErrInvalidProfile = errors.New("profile: invalid profile")

// Distribution is the YAML form of series.Distribution.
type Distribution struct {
	Values []int     `yaml:"values"`
	Probs  []float64 `yaml:"probs"`
}

// Process holds the knobs of the stochastic process generator.
type Process struct {
	Initial  float64 `yaml:"initial"`
	Trend    float64 `yaml:"trend"`
	Noise    float64 `yaml:"noise"`
	Burst    float64 `yaml:"burst"`
	BurstMin int     `yaml:"burst_min"`
	BurstMax int     `yaml:"burst_max"`
	Order    int     `yaml:"order"`
	Inject   []int   `yaml:"inject"`
}

// Forecast holds the knobs of the Markov forecast run.
type Forecast struct {
	Input      string  `yaml:"input"`
	Order      int     `yaml:"order"`
	ValidRatio float64 `yaml:"valid_ratio"`
	TestRatio  float64 `yaml:"test_ratio"`
	Steps      int     `yaml:"steps"`  // values to forecast past the end of the input
	Sample     bool    `yaml:"sample"` // draw each step instead of taking the most likely symbol
	Graph      bool    `yaml:"graph"`  // also random-walk the state graph and report unreachable states
	Export     string  `yaml:"export"` // DOT file for the state graph; "" disables
}

// Profile is one complete generation (and forecast) request.
type Profile struct {
	Output       string       `yaml:"output"`
	Length       int          `yaml:"length"`
	Seed         int64        `yaml:"seed"` // 0 means "pick one at run time"
	Kind         string       `yaml:"kind"`
	Distribution Distribution `yaml:"distribution"`
	Pattern      []int        `yaml:"pattern"`
	Process      Process      `yaml:"process"`
	Forecast     Forecast     `yaml:"forecast"`
}

// Forecast defaults.
const (
	DefaultValidRatio = 0.1
	DefaultTestRatio  = 0.2
)

// Default returns the profile equivalent to the historical behaviour:
// 1500 draws with P(0)=0.43, P(1)=0.57 written to test.dat.
func Default() Profile {
	return Profile{
		Output: DefaultOutput,
		Length: series.DefaultLength,
		Kind:   series.KindWeighted.String(),
		Distribution: Distribution{
			Values: []int{0, 1},
			Probs:  []float64{series.DefaultP0, series.DefaultP1},
		},
		Pattern: series.DefaultPattern(),
		Process: Process{
			Initial:  0.5,
			BurstMin: series.DefaultBurstMin,
			BurstMax: series.DefaultBurstMax,
			Order:    series.DefaultOrder,
		},
		Forecast: Forecast{
			Input:      DefaultOutput,
			Order:      series.DefaultOrder,
			ValidRatio: DefaultValidRatio,
			TestRatio:  DefaultTestRatio,
		},
	}
}

// Load reads and validates the profile at path. Fields absent from the file
// keep their Default values.
func Load(path string) (Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return Profile{}, fmt.Errorf("Load(%s): %w", path, err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return Profile{}, fmt.Errorf("Load(%s): %w", path, err)
	}

	return p, nil
}

// Decode reads a YAML profile from r on top of Default and validates it.
// An empty document yields Default().
func Decode(r io.Reader) (Profile, error) {
	p := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Profile{}, fmt.Errorf("Decode: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}

	return p, nil
}

// Validate checks the fields the series generators would otherwise reject
// (or panic on, for option constructors). Distribution sums are left to
// series.Sample so the failure keeps its ErrProbabilitySum identity.
func (p Profile) Validate() error {
	if p.Output == "" {
		return invalid("output must not be empty")
	}
	if p.Length < 0 {
		return invalid("length must be ≥ 0, got %d", p.Length)
	}
	kind, err := series.ParseKind(p.Kind)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}

	if kind == series.KindPattern && p.Pattern != nil && len(p.Pattern) == 0 {
		return invalid("pattern must not be empty")
	}

	// Process knobs are checked for every kind: Options always carries them.
	pr := p.Process
	for _, knob := range []struct {
		name string
		v    float64
	}{
		{"initial", pr.Initial}, {"trend", pr.Trend}, {"noise", pr.Noise}, {"burst", pr.Burst},
	} {
		if !(knob.v >= 0 && knob.v <= 1) {
			return invalid("process.%s must be in [0,1], got %g", knob.name, knob.v)
		}
	}
	if pr.BurstMin < 1 || pr.BurstMax < pr.BurstMin {
		return invalid("process burst range must satisfy 1 ≤ min ≤ max, got %d..%d", pr.BurstMin, pr.BurstMax)
	}
	if pr.Order < 1 {
		return invalid("process.order must be ≥ 1, got %d", pr.Order)
	}

	fc := p.Forecast
	switch {
	case fc.Input == "":
		return invalid("forecast.input must not be empty")
	case fc.Order < 1:
		return invalid("forecast.order must be ≥ 1, got %d", fc.Order)
	case !(fc.ValidRatio >= 0 && fc.ValidRatio <= 1), !(fc.TestRatio >= 0 && fc.TestRatio <= 1):
		return invalid("forecast ratios must be in [0,1], got valid=%g test=%g", fc.ValidRatio, fc.TestRatio)
	case fc.ValidRatio+fc.TestRatio > 1:
		return invalid("forecast ratios must sum to at most 1, got %g", fc.ValidRatio+fc.TestRatio)
	case fc.Steps < 0:
		return invalid("forecast.steps must be ≥ 0, got %d", fc.Steps)
	}

	return nil
}

// Spec converts the profile into a series.Spec. Call Validate first; an
// unknown kind is passed through as an out-of-range series.Kind.
func (p Profile) Spec() series.Spec {
	kind, err := series.ParseKind(p.Kind)
	if err != nil {
		kind = series.Kind(-1)
	}

	return series.Spec{
		Kind:   kind,
		Length: p.Length,
		Distribution: series.Distribution{
			Values: p.Distribution.Values,
			Probs:  p.Distribution.Probs,
		},
		Pattern: p.Pattern,
	}
}

// Options returns the series options carrying the RNG seed and the process
// knobs. It panics on values Validate would reject.
func (p Profile) Options() []series.Option {
	pr := p.Process

	return []series.Option{
		series.WithSeed(p.Seed),
		series.WithInitial(pr.Initial),
		series.WithTrend(pr.Trend),
		series.WithNoise(pr.Noise),
		series.WithBurst(pr.Burst),
		series.WithBurstRange(pr.BurstMin, pr.BurstMax),
		series.WithOrder(pr.Order),
		series.WithInjection(pr.Inject),
	}
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidProfile, fmt.Sprintf(format, args...))
}
