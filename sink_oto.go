//go:build !headless

// sink_oto.go - oto/v3-backed Sink

/*
(c) 2024 - 2026 graphsynth contributors
License: GPLv3 or later
*/

package main

import (
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// OtoSink wraps github.com/ebitengine/oto/v3. oto pulls samples through a
// Read callback; WriteFrames pushes into a buffered channel that Read
// drains, turning oto's pull model into the push interface the audio
// loop expects (§4.11 step 5).
type OtoSink struct {
	ctx    *oto.Context
	player *oto.Player

	queue    chan float32
	channels int

	mu      sync.Mutex
	started bool
}

// NewOtoSink opens an oto context at sampleRate with the given channel
// count (1 or 2) and a queue sized for queueSeconds of audio, bounding
// how far WriteFrames can run ahead of playback.
func NewOtoSink(sampleRate, channels int, queueSeconds float32) (*OtoSink, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatFloat32LE,
		BufferSize:   0,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	s := &OtoSink{
		ctx:      ctx,
		channels: channels,
		queue:    make(chan float32, int(float32(sampleRate*channels)*queueSeconds)),
	}
	s.player = ctx.NewPlayer(s)
	return s, nil
}

// Read implements io.Reader for oto.Player. It is the sole consumer of
// the queue and never blocks: an empty queue is treated as underrun and
// zero-filled so oto's callback never stalls the OS audio thread.
func (s *OtoSink) Read(p []byte) (int, error) {
	n := len(p) / 4
	for i := 0; i < n; i++ {
		var v float32
		select {
		case v = <-s.queue:
		default:
		}
		putFloat32LE(p[i*4:], v)
	}
	return n * 4, nil
}

func putFloat32LE(b []byte, v float32) {
	bits := math.Float32bits(v)
	b[0] = byte(bits)
	b[1] = byte(bits >> 8)
	b[2] = byte(bits >> 16)
	b[3] = byte(bits >> 24)
}

func (s *OtoSink) WriteFrames(frames []float32) error {
	for _, f := range frames {
		s.queue <- f
	}
	return nil
}

func (s *OtoSink) Backlog() int { return len(s.queue) }

func (s *OtoSink) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		s.player.Play()
		s.started = true
	}
	return nil
}

func (s *OtoSink) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		s.player.Pause()
		s.started = false
	}
	return nil
}

func (s *OtoSink) Close() error {
	s.Stop()
	return s.player.Close()
}
