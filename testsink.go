// testsink.go - Deterministic in-memory Sink, available in every build

package main

import "sync"

// RingSink captures every written frame in order, with no build tag
// restriction, so callers can inspect sink output regardless of whether
// the package was built with -tags headless. main uses it for
// --backend headless.
type RingSink struct {
	mu     sync.Mutex
	frames []float32
}

func NewRingSink() *RingSink { return &RingSink{} }

func (s *RingSink) WriteFrames(frames []float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, frames...)
	return nil
}

func (s *RingSink) Frames() []float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]float32, len(s.frames))
	copy(out, s.frames)
	return out
}

func (s *RingSink) Backlog() int { return 0 }
func (s *RingSink) Start() error { return nil }
func (s *RingSink) Stop() error  { return nil }
func (s *RingSink) Close() error { return nil }
