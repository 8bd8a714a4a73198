// default_graph.go - Reference 52-module graph topology (SPEC_FULL.md Part D)

package main

// NewDefaultGraph builds the engine's reference/demo topology: one Midi
// source with poly voices, poly AnalogOscillator voices each gated by
// its own Envelope and filtered by its own Butterworth, summed through a
// shared Chorus, a shared Delay, and a shared stereo Reverb sink. Module
// ids scale with poly (the per-voice chain count tracks the Midi
// module's own polyphony exactly, so every allocated voice has
// somewhere to route); ModTable itself stays general-purpose and takes
// the sink as a construction parameter rather than hard-coding module 51.
func NewDefaultGraph(threadCount int, sampleRate float32, poly int) *ModTable {
	envBase := 1 + poly
	butterBase := 1 + 2*poly
	chorusID := 1 + 3*poly
	delayID := chorusID + 1
	reverbID := chorusID + 2

	modules := make([]Module, 0, 1+poly*3+3)
	modules = append(modules, NewMidi(0, poly))

	for v := 0; v < poly; v++ {
		modules = append(modules, NewAnalogOscillator(1+v, sampleRate, Saw, 0, 0))
	}
	for v := 0; v < poly; v++ {
		modules = append(modules, NewEnvelope(envBase+v, sampleRate, 0.01, 0.1, 0.7, 0.3))
	}
	for v := 0; v < poly; v++ {
		modules = append(modules, NewButterworth(butterBase+v, sampleRate, 0.2))
	}

	chorusCapacity := int(sampleRate*0.05) + 64
	modules = append(modules, NewChorus(chorusID, chorusCapacity, sampleRate, sampleRate*0.02, sampleRate*0.005, 0.5))

	delayCapacity := int(sampleRate*2) + 8
	modules = append(modules, NewDelay(delayID, delayCapacity, sampleRate, 0.3, 0.3))

	modules = append(modules, NewReverb(reverbID, sampleRate))

	var cables []Cable
	cables = append(cables, Cable{chorusID, 0, delayID, 0}, Cable{delayID, 0, reverbID, 0})
	for v := 0; v < poly; v++ {
		oscID := 1 + v
		envID := envBase + v
		butterID := butterBase + v
		gateOut := 3 + 3*v
		noteOut := 4 + 3*v
		velOut := 5 + 3*v

		cables = append(cables,
			Cable{0, gateOut, envID, 0},
			Cable{0, velOut, envID, 1},
			Cable{envID, 0, oscID, 0},
			Cable{0, noteOut, oscID, 1},
			Cable{oscID, 0, butterID, 0},
			Cable{0, noteOut, butterID, 1},
			Cable{envID, 0, butterID, 1},
			Cable{butterID, 0, chorusID, 0},
		)
	}

	return NewModTable(threadCount, modules, cables, reverbID, true)
}
