// Command leiden reads a JSON edge list on stdin (or from -input),
// runs community detection, and writes the result envelope to stdout.
// On failure it writes {"error": ...} to stderr and exits 1.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dd0wney/cluso-leiden/pkg/envelope"
	"github.com/dd0wney/cluso-leiden/pkg/leiden"
	"github.com/dd0wney/cluso-leiden/pkg/logging"
)

func main() {
	input := flag.String("input", "-", "Input file path, or - for stdin")
	resolution := flag.Float64("resolution", 1.0, "Resolution parameter, overrides the request value when set")
	iterations := flag.Int("iterations", -1, "Iteration budget, -1 runs to convergence, overrides the request value when set")
	seed := flag.Int64("seed", 1, "Random seed for the refinement phase")
	verbose := flag.Bool("verbose", false, "Log progress to stderr")
	flag.Parse()

	var logger logging.Logger = logging.NewNopLogger()
	if *verbose {
		logger = logging.NewDefaultLogger()
	}

	if err := run(*input, resolution, iterations, *seed, logger); err != nil {
		envelope.EncodeError(os.Stderr, err)
		os.Exit(1)
	}
}

func run(input string, resolution *float64, iterations *int, seed int64, logger logging.Logger) error {
	var in io.Reader = os.Stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
	}

	req, err := envelope.DecodeRequest(in)
	if err != nil {
		return err
	}

	// Flags given on the command line beat the envelope values
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "resolution":
			req.Resolution = resolution
		case "iterations":
			req.Iterations = iterations
		}
	})

	opts := leiden.DefaultOptions()
	opts.RandomSeed = seed

	timer := logging.StartTimer(logger, "detection",
		logging.Operation("detect"), logging.Edges(len(req.Edges)))
	resp, err := envelope.Process(req, opts)
	if err != nil {
		timer.EndError(err)
		return err
	}
	timer.End(
		logging.Vertices(resp.Stats.VertexCount),
		logging.Communities(resp.Stats.CommunityCount),
		logging.Passes(resp.Passes),
		logging.Float64("quality", resp.Quality),
	)

	return envelope.EncodeResponse(os.Stdout, resp)
}
