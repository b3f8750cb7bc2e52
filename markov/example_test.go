package markov_test

import (
	"fmt"

	"github.com/katalvlaran/bitseries/markov"
	"github.com/katalvlaran/bitseries/series"
)

// ExamplePredict continues the default oscillation from an order-3 fit.
func ExamplePredict() {
	s, _ := series.Repeat(30, nil)
	tm, _ := markov.BuildTransitions(s, 3)
	fc, _ := markov.Predict(tm, s, 6)
	fmt.Println(fc.Values, fc.Propagated())
	// Output: [0 0 1 0 0 1] 1
}

// ExampleAccuracy scores a forecast against the values that followed.
func ExampleAccuracy() {
	acc, _ := markov.Accuracy(series.Series{0, 1, 1, 0}, series.Series{0, 1, 0, 0})
	fmt.Println(acc)
	// Output: 0.75
}
