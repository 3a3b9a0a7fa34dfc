// Command phaseline renders sine, square and triangle test signals.
//
// Usage:
//
//	phaseline [flags]
//
// Without flags it saves sine_wave.png, square_wave.png and
// triangle_wave.png with the default parameters into ./graphs.
//
// Examples:
//
//	phaseline -kind square -freq 2 -amp 0.5
//	phaseline -kind triangle -rate 48000 -duration 0.01 -json
//	phaseline -serve
//	phaseline -list
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/cwbudde/phaseline/dsp/waveform"
	"github.com/cwbudde/phaseline/internal/config"
	"github.com/cwbudde/phaseline/internal/server"
	"github.com/cwbudde/phaseline/render"
)

type options struct {
	kinds  []waveform.Kind
	params waveform.Params
	outDir string
	json   bool
}

type jsonWaveform struct {
	Kind  waveform.Kind `json:"kind"`
	Title string        `json:"title"`
	*render.Series
}

func main() {
	def := waveform.DefaultParams()
	kind := flag.String("kind", "all", "waveform kind: sine, square, triangle or all")
	freq := flag.Float64("freq", def.Frequency, "frequency in Hz")
	amp := flag.Float64("amp", def.Amplitude, "peak amplitude")
	duration := flag.Float64("duration", def.Duration, "signal length in seconds")
	rate := flag.Int("rate", def.SampleRate, "samples per second")
	outDir := flag.String("out", render.DefaultDir, "directory for rendered images")
	asJSON := flag.Bool("json", false, "print time/amplitude arrays as JSON instead of saving images")
	serve := flag.Bool("serve", false, "start the HTTP API (configured via PORT, PHASELINE_* env vars)")
	list := flag.Bool("list", false, "list available waveform kinds")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: phaseline [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Renders sine, square and triangle test signals.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  phaseline -kind square -freq 2 -amp 0.5\n")
		fmt.Fprintf(os.Stderr, "  phaseline -kind triangle -json\n")
		fmt.Fprintf(os.Stderr, "  phaseline -serve\n")
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}

	logger := newLogger()
	defer logger.Sync() //nolint:errcheck

	if *serve {
		if err := runServer(logger); err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
		return
	}

	kinds, err := resolveKinds(*kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v (use -list to see available)\n", err)
		os.Exit(2)
	}

	opts := options{
		kinds: kinds,
		params: waveform.NewParams(
			waveform.WithFrequency(*freq),
			waveform.WithAmplitude(*amp),
			waveform.WithDuration(*duration),
			waveform.WithSampleRate(*rate),
		),
		outDir: *outDir,
		json:   *asJSON,
	}
	if err := run(opts, os.Stdout, logger); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger() *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if config.Load().Development {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func runServer(logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.New(config.Load(), logger).Run(ctx)
}

func run(opts options, stdout io.Writer, logger *zap.Logger) error {
	r := render.New(opts.outDir, render.WithLogger(logger))

	var out []jsonWaveform
	for _, k := range opts.kinds {
		w, err := waveform.Generate(k, opts.params)
		if err != nil {
			return err
		}

		filename := ""
		if !opts.json {
			filename = k.String() + "_wave.png"
		}
		series, err := r.Plot(w, k.Title(), filename)
		if err != nil {
			return fmt.Errorf("plot %s: %w", k, err)
		}
		if series != nil {
			out = append(out, jsonWaveform{Kind: k, Title: k.Title(), Series: series})
		}
	}

	if !opts.json {
		return nil
	}
	enc := json.NewEncoder(stdout)
	if len(out) == 1 {
		return enc.Encode(out[0])
	}
	return enc.Encode(out)
}

func resolveKinds(name string) ([]waveform.Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "all" {
		return waveform.Kinds(), nil
	}

	var kinds []waveform.Kind
	for _, part := range strings.Split(name, ",") {
		k, err := waveform.ParseKind(part)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func printList(w io.Writer) {
	for _, k := range waveform.Kinds() {
		fmt.Fprintln(w, k)
	}
}
