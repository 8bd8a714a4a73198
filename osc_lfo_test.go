package main

import "testing"

func TestLFOQuadratureOutputsAreOffsetByQuarterPeriod(t *testing.T) {
	lfo := NewLFO(0, 48000, Sine, hzToPitch(1, 0.5), 1.0)
	lfo.Process()
	o0, o1 := lfo.ReadOutput(0), lfo.ReadOutput(1)
	if o0 == o1 {
		t.Fatalf("zero-phase and quarter-phase outputs coincide: %v == %v", o0, o1)
	}
}

func TestSinkDeterminism(t *testing.T) {
	run := func() []float32 {
		g := NewDefaultGraph(2, 48000, 16)
		g.Update(0, KeyPress{Note: 64, Velocity: 100})
		var out []float32
		for i := 0; i < 500; i++ {
			if i == 250 {
				g.Update(0, KeyRelease{Note: 64})
			}
			l, r := g.Tick()
			out = append(out, l, r)
		}
		return out
	}

	a := run()
	b := run()
	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d diverged: %v vs %v", i, a[i], b[i])
		}
	}
}
