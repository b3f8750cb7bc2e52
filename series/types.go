package series

import (
	"fmt"
	"strings"
)

// Series is an ordered, finite sequence of generated values.
// Generators in this package emit values from their symbol set only;
// Process always emits 0 or 1.
type Series []int

// Distribution is a categorical distribution over integer symbols.
// Values[i] is drawn with probability Probs[i].
//
// Invariants checked by Sample:
//   - len(Values) == len(Probs) > 0
//   - every Probs[i] ∈ [0,1]
//   - |1 − ΣProbs| ≤ SumTolerance
type Distribution struct {
	Values []int
	Probs  []float64
}

// Binary returns the two-symbol distribution P(0)=p0, P(1)=p1.
// The pair is not validated here; Sample does that.
func Binary(p0, p1 float64) Distribution {
	return Distribution{
		Values: []int{0, 1},
		Probs:  []float64{p0, p1},
	}
}

// Kind enumerates the generators reachable through Generate.
type Kind int

const (
	// KindWeighted draws i.i.d. values from Spec.Distribution (Sample).
	KindWeighted Kind = iota
	// KindPattern tiles Spec.Pattern (Repeat).
	KindPattern
	// KindProcess runs the trend/noise/burst process (Process).
	KindProcess
)

var kindNames = [...]string{
	KindWeighted: "weighted",
	KindPattern:  "pattern",
	KindProcess:  "process",
}

// String returns the lowercase name of k, or "Kind(<n>)" for unknown values.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a case-insensitive name ("weighted", "pattern", "process")
// to its Kind.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", name, ErrUnknownKind)
}

// Spec selects and parameterizes one generator for Generate.
// Only the fields relevant to Kind are consulted: Distribution for
// KindWeighted, Pattern for KindPattern. Process knobs travel as Options.
type Spec struct {
	Kind         Kind
	Length       int
	Distribution Distribution
	Pattern      []int
}
