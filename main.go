// main.go - graphsynthd entry point: wires config, graph, scheduler, audio loop and sinks together

/*
(c) 2024 - 2026 graphsynth contributors
License: GPLv3 or later
*/

package main

import (
	"log"
	"os"
)

func main() {
	cfg := parseConfig(os.Args[1:])

	table := NewDefaultGraph(cfg.Threads, float32(cfg.SampleRate), cfg.Poly)

	var sink Sink
	var err error
	switch cfg.Backend {
	case "oto":
		sink, err = NewOtoSink(int(cfg.SampleRate), 2, 0.5)
	case "headless":
		sink = NewRingSink()
	default:
		log.Fatalf("unknown backend %q", cfg.Backend)
	}
	if err != nil {
		log.Fatalf("failed to initialize audio sink: %v", err)
	}

	control := NewControlChannel()
	loop := NewAudioLoop(table, sink, control, cfg.BufferSize, cfg.SampleRate)

	go listenMidiWire(os.Stdin, 0, control)

	loop.Run()
}
