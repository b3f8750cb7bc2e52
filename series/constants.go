// Package series defines shared constants used by the generators, ensuring
// consistent defaults and validation across all of them.
package series

//-----------------------------------------------------------------------------
// Generator Method Name Constants
//   used to prefix errors with the generator name for context.
//-----------------------------------------------------------------------------

const (
	// MethodSample is the canonical name for the Sample generator.
	MethodSample = "Sample"
	// MethodRepeat is the canonical name for the Repeat generator.
	MethodRepeat = "Repeat"
	// MethodProcess is the canonical name for the Process generator.
	MethodProcess = "Process"
	// MethodGenerate is the canonical name for the Generate dispatcher.
	MethodGenerate = "Generate"
)

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the lower bound for any probability parameter, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for any probability parameter, inclusive.
const MaxProbability = 1.0

// SumTolerance is the absolute tolerance allowed between the sum of a
// distribution's probabilities and 1.
const SumTolerance = 1e-5

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

// DefaultLength is the series length produced when nothing else is requested.
const DefaultLength = 1500

// DefaultP0 is the default probability of drawing 0 in a binary distribution.
// DefaultP1 is its complement.
const (
	DefaultP0 = 0.43
	DefaultP1 = 1.0 - DefaultP0
)

// DefaultPattern returns the tiling unit used when Repeat gets a nil pattern.
// A fresh slice is returned on every call so callers may modify it.
func DefaultPattern() []int {
	return []int{0, 0, 1}
}

// Burst length bounds (inclusive) used by Process unless WithBurstRange is set.
const (
	DefaultBurstMin = 2
	DefaultBurstMax = 5
)

// DefaultOrder is the memory depth of the Process trend step. An order of 1
// copies the previous value.
const DefaultOrder = 1

// InjectionStride is the number of pattern lengths between two injected
// copies of the periodic pattern in Process.
const InjectionStride = 10
