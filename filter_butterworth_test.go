package main

import (
	"math"
	"testing"
)

// TestButterworthAttenuatesAboveCutoff checks scenario S5: a 1kHz cutoff
// on 48kHz sr attenuates a 10kHz sine by at least 40dB at steady state.
func TestButterworthAttenuatesAboveCutoff(t *testing.T) {
	const sr = 48000.0
	cutoffNorm := hzToPitch(1000, 8.176)
	filt := NewButterworth(0, sr, cutoffNorm)

	inputHz := float32(10000)
	phase := float32(0)
	delta := inputHz / sr

	const n = 4096
	var maxOut float32
	for i := 0; i < n; i++ {
		x := float32(math.Sin(2 * math.Pi * float64(phase)))
		phase = wrap01(phase + delta)

		filt.Modulate(0, x)
		filt.Process()
		if i > n/2 { // steady state only
			if out := filt.ReadOutput(0); abs32(out) > maxOut {
				maxOut = abs32(out)
			}
		}
	}

	if maxOut >= 0.01 { // -40dB = input amplitude * 10^(-40/20) = 1 * 0.01
		t.Fatalf("steady-state output amplitude %v exceeds -40dB threshold 0.01", maxOut)
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
