// Package markov fits order-k Markov chains to a series.Series and uses them
// to forecast.
//
// A state is a window of the last k symbols. BuildTransitions counts, for
// every state, how often each symbol follows it and normalizes the counts
// into a row-stochastic TransitionMatrix. Predict walks that matrix forward
// from the tail of a history and reports one confidence per step: the
// probability of the symbol it emitted. Accuracy and NewConfusion score a
// forecast against the values that actually followed.
//
// NewGraph turns the matrix into a state graph (states are vertices,
// observed transitions are weighted edges) that supports random walks,
// reachability queries and Graphviz DOT export.
//
// Evaluate ties the pieces together the way the bitseries forecast command
// runs them: fit on train+valid, predict len(test) steps, score on test.
//
// Errors:
//   - ErrBadOrder       - order < 1.
//   - ErrShortSeries    - not enough values to observe one transition, or an empty test part.
//   - ErrTooManyStates  - |alphabet|^order exceeds MaxStates.
//   - ErrShortHistory   - a history shorter than the order.
//   - ErrUnknownSymbol  - a history symbol missing from the alphabet.
//   - ErrBadSteps       - negative step count.
//   - ErrLengthMismatch - actual and predicted series differ in length.
//   - ErrNeedRandSource - a random walk without an RNG.
package markov
