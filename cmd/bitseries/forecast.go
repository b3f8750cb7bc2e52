package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/bitseries/markov"
	"github.com/katalvlaran/bitseries/profile"
	"github.com/katalvlaran/bitseries/series"
	"github.com/katalvlaran/bitseries/seriesio"
)

const forecastCommand = "forecast"

// forecastFlags mirrors the forecast flags before they are merged into a profile.
type forecastFlags struct {
	config    string
	in        string
	order     int
	valid     float64
	test      float64
	steps     int
	sample    bool
	graph     bool
	export    string
	seed      int64
	verbosity int
}

func runForecast(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("bitseries forecast", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var f forecastFlags
	fs.StringVar(&f.config, "config", "", "YAML profile; its forecast section replaces the defaults")
	fs.StringVar(&f.in, "in", profile.DefaultOutput, "The series file to forecast")
	fs.IntVar(&f.order, "order", series.DefaultOrder, "Markov chain order")
	fs.Float64Var(&f.valid, "valid", profile.DefaultValidRatio, "Share of the series used as validation")
	fs.Float64Var(&f.test, "test", profile.DefaultTestRatio, "Share of the series used as test")
	fs.IntVar(&f.steps, "steps", 0, "Values to forecast past the end of the series")
	fs.BoolVar(&f.sample, "sample", false, "Draw each step from the chain instead of taking the most likely symbol")
	fs.BoolVar(&f.graph, "graph", false, "Also random-walk the state graph and report unreachable states")
	fs.StringVar(&f.export, "export", "", "Write the state graph in DOT form to this file, e.g. "+markov.DefaultGraphFile)
	fs.Int64Var(&f.seed, "seed", 0, seedUsage)
	fs.IntVar(&f.verbosity, "v", 0, "Log verbosity")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return exitUsage
	}

	log := newLogger(stderr, f.verbosity).WithName(forecastCommand)

	p, err := resolveForecast(fs, f)
	if err != nil {
		log.Error(err, "invalid configuration")
		return exitError
	}
	fc := p.Forecast
	log.V(DetailLogLevel).Info("profile resolved",
		"input", fc.Input, "order", fc.Order, "valid", fc.ValidRatio, "test", fc.TestRatio, "seed", p.Seed)

	if err = forecast(log, p); err != nil {
		log.Error(err, "forecast failed", "input", fc.Input)
		return exitError
	}

	return exitOK
}

// forecast reads the input series, evaluates the chain on its test part and
// optionally walks the state graph, exports it and forecasts past the end.
func forecast(log logr.Logger, p profile.Profile) error {
	fc := p.Forecast

	s, err := seriesio.ReadFile(fc.Input)
	if err != nil {
		return err
	}
	train, valid, test, err := seriesio.Split(s, fc.ValidRatio, fc.TestRatio)
	if err != nil {
		return err
	}
	log.V(DetailLogLevel).Info("series split",
		"len", len(s), "train", len(train), "valid", len(valid), "test", len(test))

	rng := rand.New(rand.NewSource(p.Seed))
	var opts []markov.Option
	if fc.Sample {
		opts = append(opts, markov.WithRand(rng))
	}

	rep, err := markov.Evaluate(train, valid, test, fc.Order, opts...)
	if err != nil {
		return err
	}
	log.V(SummaryLogLevel).Info("chain evaluated",
		"order", fc.Order, "states", rep.Transitions.States(),
		"accuracy", rep.Accuracy, "confidence", rep.Forecast.Propagated())
	log.V(DetailLogLevel).Info("transition matrix", "matrix", rep.Transitions.String())
	log.V(DetailLogLevel).Info("confusion matrix",
		"labels", rep.Confusion.Labels, "counts", rep.Confusion.Counts)
	log.V(TraceLogLevel).Info("test forecast",
		"values", []int(rep.Forecast.Values), "confidence", rep.Forecast.Confidence)

	var g *markov.Graph
	if fc.Graph || fc.Export != "" {
		if g, err = markov.NewGraph(rep.Transitions); err != nil {
			return err
		}
	}
	if fc.Graph {
		if err = walkGraph(log, g, rep.History, test, rng); err != nil {
			return err
		}
	}
	if fc.Export != "" {
		if err = g.WriteDOTFile(fc.Export); err != nil {
			return err
		}
		log.V(SummaryLogLevel).Info("graph exported", "output", fc.Export)
	}

	if fc.Steps == 0 {
		return nil
	}
	ahead, err := markov.Predict(rep.Transitions, s, fc.Steps, opts...)
	if err != nil {
		return err
	}
	log.V(SummaryLogLevel).Info("forecast",
		"steps", fc.Steps, "values", []int(ahead.Values),
		"confidence", ahead.Confidence, "propagated", ahead.Propagated())
	if fc.Graph {
		walk, err := g.RandomWalk(s, fc.Steps, rng)
		if err != nil {
			return err
		}
		log.V(SummaryLogLevel).Info("random walk forecast",
			"steps", fc.Steps, "values", []int(walk.Values), "propagated", walk.Propagated())
	}

	return nil
}

// walkGraph scores a random walk over the test part and reports the states
// the chain can never reach from the end of the history.
func walkGraph(log logr.Logger, g *markov.Graph, history, test series.Series, rng *rand.Rand) error {
	walk, err := g.RandomWalk(history, len(test), rng)
	if err != nil {
		return err
	}
	acc, err := markov.Accuracy(test, walk.Values)
	if err != nil {
		return err
	}
	unreachable, err := g.Unreachable(history)
	if err != nil {
		return err
	}
	log.V(SummaryLogLevel).Info("random walk evaluated",
		"accuracy", acc, "confidence", walk.Propagated(),
		"transitions", g.Core().EdgeCount(),
		"disconnected", g.Disconnected(), "unreachable", unreachable)

	return nil
}

// resolveForecast layers defaults, the optional YAML profile and the
// forecast flags that were set explicitly, in that order.
func resolveForecast(fs *flag.FlagSet, f forecastFlags) (profile.Profile, error) {
	p := profile.Default()
	if f.config != "" {
		var err error
		if p, err = profile.Load(f.config); err != nil {
			return profile.Profile{}, err
		}
	}

	var seedSet bool
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "in":
			p.Forecast.Input = f.in
		case "order":
			p.Forecast.Order = f.order
		case "valid":
			p.Forecast.ValidRatio = f.valid
		case "test":
			p.Forecast.TestRatio = f.test
		case "steps":
			p.Forecast.Steps = f.steps
		case "sample":
			p.Forecast.Sample = f.sample
		case "graph":
			p.Forecast.Graph = f.graph
		case "export":
			p.Forecast.Export = f.export
		case "seed":
			p.Seed, seedSet = f.seed, true
		}
	})

	if err := p.Validate(); err != nil {
		return profile.Profile{}, err
	}
	resolveSeed(&p, seedSet)

	return p, nil
}
