//go:build headless

// sink_headless.go - No-device Sink for headless builds and CI

package main

import "sync"

// OtoSink is the headless counterpart of sink_oto.go's type of the same
// name: same exported surface, no real audio device. Every written frame
// is appended to an in-memory slice that grows without bound, so code
// built with -tags headless can inspect output without a sound card.
type OtoSink struct {
	mu      sync.Mutex
	started bool
	frames  []float32
}

func NewOtoSink(sampleRate, channels int, queueSeconds float32) (*OtoSink, error) {
	return &OtoSink{}, nil
}

func (s *OtoSink) WriteFrames(frames []float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, frames...)
	return nil
}

func (s *OtoSink) Backlog() int { return 0 }

func (s *OtoSink) Start() error {
	s.started = true
	return nil
}

func (s *OtoSink) Stop() error {
	s.started = false
	return nil
}

func (s *OtoSink) Close() error {
	s.started = false
	return nil
}
