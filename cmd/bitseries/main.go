// Command bitseries generates a synthetic binary time series and writes it
// to a text file, one value per line, and forecasts such files with Markov
// chains.
//
// Without arguments it draws 1500 values with P(0)=0.43, P(1)=0.57 and
// writes them to test.dat. A YAML profile (-config) replaces the defaults,
// and flags given explicitly override the profile:
//
//	bitseries -kind pattern -pattern 0,0,1 -n 30 -out osc.dat
//	bitseries -config process.yaml -seed 42 -v 1
//
// The forecast subcommand reads a series back, splits it into train, valid
// and test parts, fits an order-k chain on train+valid and reports how well
// it predicts test:
//
//	bitseries forecast -in osc.dat -order 3 -steps 10 -graph -export graph.dot
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/bitseries/profile"
	"github.com/katalvlaran/bitseries/series"
	"github.com/katalvlaran/bitseries/seriesio"
)

// Exit statuses.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// cliFlags mirrors the command-line flags before they are merged into a profile.
type cliFlags struct {
	config    string
	out       string
	n         int
	kind      string
	p0        float64
	pattern   string
	seed      int64
	verbosity int
}

func run(args []string, stderr io.Writer) int {
	if len(args) > 0 && args[0] == forecastCommand {
		return runForecast(args[1:], stderr)
	}

	fs := flag.NewFlagSet("bitseries", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var f cliFlags
	fs.StringVar(&f.config, "config", "", "YAML generation profile")
	fs.StringVar(&f.out, "out", profile.DefaultOutput, "The output file")
	fs.IntVar(&f.n, "n", series.DefaultLength, "The number of values to generate")
	fs.StringVar(&f.kind, "kind", series.KindWeighted.String(), "Generator: weighted, pattern or process")
	fs.Float64Var(&f.p0, "p0", series.DefaultP0, "Probability of 0 for the weighted generator (P(1) = 1 - p0)")
	fs.StringVar(&f.pattern, "pattern", "0,0,1", "Comma separated tiling pattern for the pattern generator")
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

	log := newLogger(stderr, f.verbosity)

	p, err := resolveProfile(fs, f)
	if err != nil {
		log.Error(err, "invalid configuration")
		return exitError
	}
	log.V(DetailLogLevel).Info("profile resolved",
		"kind", p.Kind, "length", p.Length, "seed", p.Seed, "output", p.Output)

	s, err := series.Generate(p.Spec(), p.Options()...)
	if err != nil {
		log.Error(err, "generation failed", "kind", p.Kind)
		return exitError
	}
	if err := seriesio.WriteFile(p.Output, s); err != nil {
		log.Error(err, "write failed", "output", p.Output)
		return exitError
	}

	sum := series.Describe(s)
	log.V(SummaryLogLevel).Info("series written",
		"output", p.Output, "len", sum.Len, "ones", sum.Ones, "onesRatio", sum.OnesRatio,
		"runs", sum.Runs, "longestRun", sum.LongestRun)

	return exitOK
}

// resolveProfile layers defaults, the optional YAML profile and the flags
// that were set explicitly, in that order.
func resolveProfile(fs *flag.FlagSet, f cliFlags) (profile.Profile, error) {
	p := profile.Default()
	if f.config != "" {
		var err error
		if p, err = profile.Load(f.config); err != nil {
			return profile.Profile{}, err
		}
	}

	var (
		err     error
		seedSet bool
	)
	fs.Visit(func(fl *flag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "out":
			p.Output = f.out
		case "n":
			p.Length = f.n
		case "kind":
			p.Kind = f.kind
		case "p0":
			p.Distribution = profile.Distribution{
				Values: []int{0, 1},
				Probs:  []float64{f.p0, 1 - f.p0},
			}
		case "pattern":
			p.Pattern, err = parseInts(f.pattern)
		case "seed":
			p.Seed, seedSet = f.seed, true
		}
	})
	if err != nil {
		return profile.Profile{}, err
	}

	if err := p.Validate(); err != nil {
		return profile.Profile{}, err
	}
	resolveSeed(&p, seedSet)

	return p, nil
}

const seedUsage = "RNG seed; when not given, the profile seed is used and a profile seed of 0 picks one from the clock"

// resolveSeed replaces a zero profile seed with a clock seed unless -seed
// was given explicitly, so "-seed 0" stays reproducible.
func resolveSeed(p *profile.Profile, explicit bool) {
	if !explicit && p.Seed == 0 {
		p.Seed = time.Now().UnixNano()
	}
}

// parseInts parses a comma separated list such as "0,0,1".
func parseInts(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	out := make([]int, 0, len(fields))
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("parseInts(%q): %w", s, err)
		}
		out = append(out, v)
	}

	return out, nil
}
