// SPDX-License-Identifier: MIT
// Package: bitseries/markov
//
// constants.go - method names and limits.

package markov

// Method names used as error prefixes.
const (
	MethodBuildTransitions = "BuildTransitions"
	MethodPredict          = "Predict"
	MethodRandomWalk       = "RandomWalk"
	MethodAccuracy         = "Accuracy"
	MethodConfusion        = "NewConfusion"
	MethodEvaluate         = "Evaluate"
	MethodNewGraph         = "NewGraph"
)

// MaxStates caps |alphabet|^order, the row count of a TransitionMatrix.
const MaxStates = 1 << 16

// DefaultGraphFile is where the forecast command exports the state graph.
const DefaultGraphFile = "graph.dot"
