// Command chaintrace builds a propagation graph, drives it with a generated
// signal and prints the trace table and per-buffer statistics.
//
// Usage:
//
//	chaintrace [flags]
//
// Without --config it runs a built-in filter bank.
//
// Examples:
//
//	chaintrace
//	chaintrace --signal noise --spike-every 5
//	chaintrace --config bank.yaml --samples 64 --debug
package main

import (
	_ "embed"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-chain/dsp/chainconf"
	"github.com/cwbudde/algo-chain/dsp/core"
	"github.com/cwbudde/algo-chain/dsp/signal"
	"github.com/cwbudde/algo-chain/internal/log"
)

//go:embed demo.yaml
var demoDefinition []byte

type options struct {
	config     string
	samples    int
	signal     string
	rate       float64
	freq       float64
	amplitude  float64
	spikeEvery int
	seed       int64
	debug      bool
}

func main() {
	if err := newRootCmd(os.Stdout, log.GetLogger()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer, logger *logrus.Logger) *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:          "chaintrace",
		Short:        "Drive a propagation graph with a test signal and print its trace",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.debug {
				logger.SetLevel(logrus.DebugLevel)
			}
			return run(cmd.OutOrStdout(), logger, opts)
		},
	}
	cmd.SetOut(out)

	f := cmd.Flags()
	f.StringVarP(&opts.config, "config", "c", "", "YAML graph definition (default: built-in filter bank)")
	f.IntVarP(&opts.samples, "samples", "n", 16, "number of samples to push")
	f.StringVarP(&opts.signal, "signal", "s", "ramp", "input signal: ramp, sine or noise")
	f.Float64Var(&opts.rate, "rate", 1, "sample rate of the time axis in Hz")
	f.Float64Var(&opts.freq, "freq", 0.1, "sine frequency in Hz")
	f.Float64Var(&opts.amplitude, "amplitude", 8, "sine and noise amplitude")
	f.IntVar(&opts.spikeEvery, "spike-every", 0, "add an outlier every N samples (0 disables)")
	f.Int64Var(&opts.seed, "seed", 1, "noise seed")
	f.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	return cmd
}

func run(out io.Writer, logger *logrus.Logger, opts options) error {
	def, source, err := loadDefinition(opts.config)
	if err != nil {
		return err
	}
	p, err := chainconf.Build(def, chainconf.WithLogger(logger))
	if err != nil {
		return err
	}

	gen := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(opts.rate)},
		signal.WithSeed(opts.seed),
	)
	values, err := generate(gen, opts)
	if err != nil {
		return err
	}
	times, err := gen.Times(opts.samples)
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"definition": source,
		"nodes":      len(def.Nodes),
		"signal":     opts.signal,
		"samples":    opts.samples,
	}).Info("driving pipeline")

	for i, v := range values {
		p.Push(times[i], v)
	}

	fmt.Fprintln(out, p.Dump())
	fmt.Fprintln(out)
	return printSummary(out, p)
}

func loadDefinition(path string) (chainconf.Definition, string, error) {
	if path == "" {
		def, err := chainconf.Parse(demoDefinition)
		return def, "built-in", err
	}
	def, err := chainconf.Load(path)
	return def, path, err
}

func generate(gen *signal.Generator, opts options) ([]float64, error) {
	var (
		values []float64
		err    error
	)
	switch opts.signal {
	case "ramp":
		values, err = gen.RampSine(1, opts.samples)
	case "sine":
		values, err = gen.Sine(opts.freq, opts.amplitude, opts.samples)
	case "noise":
		values, err = gen.WhiteNoise(opts.amplitude, opts.samples)
	default:
		return nil, fmt.Errorf("unknown signal %q (want ramp, sine or noise)", opts.signal)
	}
	if err != nil {
		return nil, err
	}
	if opts.spikeEvery > 0 {
		return signal.Spikes(values, opts.spikeEvery, 3*opts.amplitude)
	}
	return values, nil
}

type stats struct {
	mean, rms, peak float64
}

func summarize(x []float64) stats {
	if len(x) == 0 {
		return stats{}
	}
	n := float64(len(x))
	return stats{
		mean: vecmath.Sum(x) / n,
		rms:  math.Sqrt(vecmath.DotProduct(x, x) / n),
		peak: vecmath.MaxAbs(x),
	}
}

func printSummary(out io.Writer, p *chainconf.Pipeline) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Buffer\tSize\tMean\tRMS\tPeak\n")
	fmt.Fprintf(tw, "------\t----\t----\t---\t----\n")
	for _, id := range p.IDs() {
		w, err := p.Export(id)
		if err != nil {
			continue
		}
		s := summarize(w)
		fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.4f\t%.4f\n", id, len(w), s.mean, s.rms, s.peak)
	}
	return tw.Flush()
}
