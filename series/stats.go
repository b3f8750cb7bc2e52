package series

import (
	"gonum.org/v1/gonum/stat"
)

// Summary describes a Series: how many ones and zeros it holds and how its
// values cluster into runs of equal consecutive values.
type Summary struct {
	Len        int
	Ones       int
	Zeros      int
	OnesRatio  float64 // Ones / Len; 0 for an empty series
	Runs       int     // number of maximal runs of equal values
	LongestRun int
	MeanRun    float64 // mean run length; 0 for an empty series
}

// Describe computes a Summary of s. Values other than 0 and 1 count toward
// Len and the run statistics but neither Ones nor Zeros.
// Complexity: O(n) time, O(n) memory.
func Describe(s Series) Summary {
	sum := Summary{Len: len(s)}
	if len(s) == 0 {
		return sum
	}

	var (
		runs []float64
		run  int
	)
	for i, v := range s {
		switch v {
		case 0:
			sum.Zeros++
		case 1:
			sum.Ones++
		}

		if i > 0 && v != s[i-1] {
			runs = append(runs, float64(run))
			run = 0
		}
		run++
		if run > sum.LongestRun {
			sum.LongestRun = run
		}
	}
	runs = append(runs, float64(run))

	sum.OnesRatio = float64(sum.Ones) / float64(sum.Len)
	sum.Runs = len(runs)
	sum.MeanRun = stat.Mean(runs, nil)

	return sum
}
