// Package bitseries generates synthetic binary (0/1) time series for
// forecasting experiments, writes them as plain text, one value per line,
// and forecasts them with order-k Markov chains.
//
// What is inside?
//
//	series/        - generators: weighted sampling, pattern tiling, a
//	                 trend/noise/burst process, and a Kind-based dispatcher
//	seriesio/      - text writer and reader, chronological train/valid/test split
//	markov/        - order-k transition matrices, forecasts with confidences,
//	                 accuracy and confusion counts, the state graph
//	matrix/        - row-major float64 matrix backing the transition tables
//	core/          - directed weighted graph holding the state graph
//	bfs/           - breadth-first reachability over core graphs
//	profile/       - YAML generation and forecast profiles
//	cmd/bitseries/ - the command-line entry point (generate, forecast)
//
// Every random draw comes from an explicit *rand.Rand (series.WithSeed or
// series.WithRand), so a seed reproduces a series exactly.
//
// Quick example:
//
//	s, err := series.Generate(series.Spec{
//		Kind:         series.KindWeighted,
//		Length:       1500,
//		Distribution: series.Binary(0.43, 0.57),
//	}, series.WithSeed(7))
//	if err != nil {
//		return err
//	}
//	return seriesio.WriteFile("test.dat", s)
//
// and to score an order-3 chain on the last 20% of it:
//
//	train, valid, test, _ := seriesio.Split(s, 0.1, 0.2)
//	rep, err := markov.Evaluate(train, valid, test, 3)
//
//	go install github.com/katalvlaran/bitseries/cmd/bitseries@latest
package bitseries
