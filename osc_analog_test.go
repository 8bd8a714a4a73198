package main

import (
	"math"
	"testing"
)

// TestSineCorrectness checks §8.3: a Sine oscillator at Hz = sr/8
// produces zero crossings at sample indices 0, 4, 8, ...
func TestSineCorrectness(t *testing.T) {
	const sr = 48000.0
	const hz = sr / 8
	// Hz = 2^(127f/12) * 8.176  =>  f = 12*log2(hz/8.176)/127
	f := hzToPitch(hz, 8.176)

	osc := NewAnalogOscillator(0, sr, Sine, f, 1.0)
	for i := 0; i < 32; i++ {
		osc.Process()
		out := osc.ReadOutput(0)
		if i%4 == 0 {
			if math.Abs(float64(out)) > 1e-3 {
				t.Fatalf("sample %d = %v, want ~0 (zero crossing)", i, out)
			}
		}
	}
}

// TestSquareMeanNearZero checks §8.4: the running mean of a
// BLEP-corrected square wave over a full period stays close to zero.
func TestSquareMeanNearZero(t *testing.T) {
	const sr = 48000.0
	f := hzToPitch(440, 8.176)
	osc := NewAnalogOscillator(0, sr, Square, f, 1.0)

	periodSamples := int(sr / 440)
	var sum float32
	for i := 0; i < periodSamples; i++ {
		osc.Process()
		sum += osc.ReadOutput(0)
	}
	mean := sum / float32(periodSamples)
	if math.Abs(float64(mean)) > 0.05 {
		t.Fatalf("square wave running mean = %v, want close to 0", mean)
	}
}

func TestOscillatorLevelAndFrequencyInputs(t *testing.T) {
	osc := NewAnalogOscillator(0, 48000, Saw, 0, 0)
	osc.Modulate(0, 0.5) // level
	osc.Modulate(1, 0.3) // frequency
	// The first sample sits at phase 0, the midpoint of the BLEP-corrected
	// saw discontinuity, where the output is exactly 0; check the second.
	osc.Process()
	osc.Process()
	if out := osc.ReadOutput(0); out == 0 {
		t.Fatalf("expected nonzero output once level input is set, got %v", out)
	}
}
