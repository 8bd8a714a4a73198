package main

import "testing"

func onCount(m *Midi) int {
	n := 0
	for v := 0; v < m.poly; v++ {
		if m.ReadOutput(3+3*v) == 1 {
			n++
		}
	}
	return n
}

// TestVoiceAllocatorFIFOEviction checks §8.8.
func TestVoiceAllocatorFIFOEviction(t *testing.T) {
	const poly = 4
	m := NewMidi(0, poly)

	notes := []uint8{60, 62, 64, 65}
	for _, n := range notes {
		m.Update(KeyPress{Note: n, Velocity: 100})
		m.Process()
	}
	if got := onCount(m); got != poly {
		t.Fatalf("after %d presses, %d voices on, want %d", poly, got, poly)
	}

	// The (POLY+1)th press evicts the oldest (note 60).
	m.Update(KeyPress{Note: 67, Velocity: 100})
	m.Process()
	if got := onCount(m); got != poly {
		t.Fatalf("after eviction, %d voices on, want %d", got, poly)
	}

	foundEvicted := false
	for v := 0; v < poly; v++ {
		if m.ReadOutput(4+3*v)*127 == 60 {
			foundEvicted = true
		}
	}
	if foundEvicted {
		t.Fatal("evicted note 60 is still present in a voice")
	}

	// A release for the evicted note is a no-op on voices.
	before := onCount(m)
	m.Update(KeyRelease{Note: 60})
	m.Process()
	if after := onCount(m); after != before {
		t.Fatalf("release of evicted note changed voice count: %d -> %d", before, after)
	}
}

// TestSustainPedalProperty checks §8.9.
func TestSustainPedalProperty(t *testing.T) {
	m := NewMidi(0, 4)

	m.Update(PedalPress{})
	m.Update(KeyPress{Note: 60, Velocity: 100})
	m.Process()
	m.Update(KeyRelease{Note: 60})
	m.Process()

	if got := onCount(m); got != 1 {
		t.Fatalf("sustained voice dropped on release: %d voices on, want 1", got)
	}

	m.Update(PedalRelease{})
	m.Process()

	if got := onCount(m); got != 0 {
		t.Fatalf("voice survived pedal release after key release: %d voices on, want 0", got)
	}
}

// TestMonoGateTwoSampleTransition checks §4.9's mono path: KeyPress must
// produce a zero-then-rise gate transition across two Process calls.
func TestMonoGateTwoSampleTransition(t *testing.T) {
	m := NewMidi(0, 1)
	m.Update(KeyPress{Note: 69, Velocity: 127})

	m.Process()
	if g := m.ReadOutput(0); g != 0 {
		t.Fatalf("gate on first process after KeyPress = %v, want 0", g)
	}
	m.Process()
	if g := m.ReadOutput(0); g != 1 {
		t.Fatalf("gate on second process after KeyPress = %v, want 1", g)
	}
}
