// SPDX-License-Identifier: MIT
// Package: bitseries/series
//
// impl_repeat.go - periodic pattern repeater.
//
// Contract:
//   • Repeat(n, pattern) tiles pattern and truncates to exactly n values.
//   • Fully deterministic; no RNG, no options.
//   • nil pattern ⇒ DefaultPattern(); empty pattern ⇒ ErrEmptyPattern.
//   • O(n) time and memory; the result never aliases pattern.

package series

// Repeat returns pattern concatenated with itself and cut to length n.
//
//	Repeat(7, []int{0, 0, 1}) // [0 0 1 0 0 1 0]
//	Repeat(3, []int{0, 0, 1}) // [0 0 1]
func Repeat(n int, pattern []int) (Series, error) {
	if err := validateLength(MethodRepeat, n); err != nil {
		return nil, err
	}
	if err := validatePattern(MethodRepeat, pattern); err != nil {
		return nil, err
	}
	if pattern == nil {
		pattern = DefaultPattern()
	}

	out := make(Series, n)
	// copy doubles the filled prefix each round: O(log(n/len)) calls.
	filled := copy(out, pattern)
	for filled < n {
		filled += copy(out[filled:], out[:filled])
	}

	return out, nil
}
