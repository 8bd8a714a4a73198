// module.go - Module and Cable data model for the graph audio engine

/*
(c) 2024 - 2026 graphsynth contributors
License: GPLv3 or later
*/

package main

// Module is the contract every node in the audio graph implements. A
// module is addressed by its dense id (position in ModTable.modules) and
// carries its own internal DSP state; the graph never reaches into that
// state directly.
//
// process, update, readOutput and modulate are the only four operations a
// module exposes. process must be allocation-free, lock-free and
// deterministic: it runs once per sample, per module, on whichever worker
// owns that module's slice of the module list (see scheduler.go).
type Module interface {
	// ID returns this module's dense, construction-time-assigned id.
	ID() int

	// Process advances one sample of internal state and computes this
	// sample's outputs from the current input accumulators.
	Process()

	// Update applies a parameter change. Only called between samples,
	// never concurrently with Process on the same module.
	Update(msg ModuleMessage)

	// ReadOutput returns the scalar produced by the last Process call at
	// the given output index. Pure and idempotent.
	ReadOutput(index int) float32

	// Modulate writes input accumulator index with value. Whether
	// successive writes within a sample sum or overwrite is a per-input
	// contract documented on each module (§4.1: control inputs are
	// last-writer-wins, audio inputs sum and self-clear).
	Modulate(index int, value float32)
}

// Cable is an immutable directed connection between one module's output
// and another module's input, read in definition order once per sample
// after every module has processed (§4.2). Cables never own modules; they
// only describe a relation by dense id.
type Cable struct {
	SourceModule int
	SourceOutput int
	TargetModule int
	TargetInput  int
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
