// config.go - CLI configuration, parsed once at startup (SPEC_FULL.md B.2)

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// Config is graphsynthd's entire configuration surface: CLI flags only,
// no project or preset file — there is no persisted state format.
type Config struct {
	SampleRate uint32
	BufferSize int
	Threads    int
	Backend    string // "oto" | "headless"
	Poly       int
}

func parseConfig(args []string) *Config {
	fs := pflag.NewFlagSet("graphsynthd", pflag.ExitOnError)

	sampleRate := fs.UintP("sample-rate", "r", 48000, "audio sample rate in Hz")
	bufferSize := fs.IntP("buffer-size", "b", 512, "frames per audio buffer")
	threads := fs.IntP("threads", "t", 2, "DSP worker thread count")
	backend := fs.StringP("backend", "B", "oto", "audio backend: oto or headless")
	poly := fs.IntP("poly", "p", 16, "polyphonic voice count")
	help := fs.BoolP("help", "h", false, "show this help text")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "graphsynthd - real-time modular audio graph engine\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\n", os.Args[0])
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *help {
		fs.Usage()
		os.Exit(0)
	}

	return &Config{
		SampleRate: uint32(*sampleRate),
		BufferSize: *bufferSize,
		Threads:    *threads,
		Backend:    *backend,
		Poly:       *poly,
	}
}
