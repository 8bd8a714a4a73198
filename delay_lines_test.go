package main

import "testing"

// TestDelayPassthroughAtZeroRatio checks §8.7's first clause.
func TestDelayPassthroughAtZeroRatio(t *testing.T) {
	d := NewDelay(0, 1000, 48000, 0.01, 0)
	d.Modulate(0, 0.42)
	d.Process()
	if out := d.ReadOutput(0); out != 0.42 {
		t.Fatalf("ratio=0 delay output = %v, want 0.42 (passthrough)", out)
	}
}

// TestDelayImpulseResponse checks §8.7: a unit impulse at t=0 produces
// 1, ratio, ratio^2, ... at samples 0, T*sr, 2T*sr, ...
func TestDelayImpulseResponse(t *testing.T) {
	const sr = 48000.0
	const timeSec = 0.1 // T*sr = 4800 samples
	const ratio = 0.5
	const capacity = 20000

	d := NewDelay(0, capacity, sr, timeSec, ratio)

	d.Modulate(0, 1.0)
	d.Process()
	if out := d.ReadOutput(0); out != 1.0 {
		t.Fatalf("sample 0 = %v, want 1.0", out)
	}

	delaySamples := int(timeSec * sr)
	want := float32(ratio)
	for tick := 1; tick <= 2; tick++ {
		for i := 0; i < delaySamples-1; i++ {
			d.Process()
		}
		d.Process()
		out := d.ReadOutput(0)
		if diff := out - want; diff > 1e-4 || diff < -1e-4 {
			t.Fatalf("sample %d = %v, want %v", tick*delaySamples, out, want)
		}
		want *= ratio
	}
}

func TestAllpassIsStableUnderImpulse(t *testing.T) {
	a := NewAllpass(0, 512, 80, 0.7)
	a.Modulate(0, 1.0)
	for i := 0; i < 600; i++ {
		a.Process()
		out := a.ReadOutput(0)
		if out > 2 || out < -2 {
			t.Fatalf("allpass output diverged: %v at sample %d", out, i)
		}
	}
}

func TestCombFeedbackSurfacesImpulseAtDelay(t *testing.T) {
	c := NewComb(0, 256, 10, 0.5)
	c.Modulate(0, 1.0)
	c.Process()
	for i := 0; i < 9; i++ {
		c.Process()
	}
	c.Modulate(1, 0) // no shift: tap should hit the impulse exactly at delay 10
	c.Process()
	if out := c.ReadOutput(0); out == 0 {
		t.Fatalf("expected comb feedback to surface the impulse, got 0")
	}
}
