// midi_wire.go - Raw MIDI byte decode rule (§6 "MIDI wire")

package main

import (
	"io"

	"gitlab.com/gomidi/midi/v2"
)

// DecodeWireBytes turns a raw MIDI status/data byte triple, already read
// from some external transport, into the ModuleMessage the wire decode
// rule describes: a note-on status with velocity > 0 is a KeyPress, the
// same status with velocity 0 is a KeyRelease (the zero-velocity
// note-on-as-note-off convention most MIDI sources use). Any other
// status is ignored. Binding to an actual hardware or virtual MIDI port
// is the external listener's job, not this package's.
func DecodeWireBytes(raw []byte) (ModuleMessage, bool) {
	b := midi.Message(raw).Bytes()
	if len(b) < 3 {
		return nil, false
	}
	if b[0]&0xF0 != 0x90 {
		return nil, false
	}
	note, velocity := b[1], b[2]
	if velocity > 0 {
		return KeyPress{Note: note, Velocity: velocity}, true
	}
	return KeyRelease{Note: note}, true
}

// listenMidiWire reads 3-byte MIDI packets from src and forwards decoded
// events as ModuleUpdate messages targeting midiModuleID. src is
// whatever external transport a deployment wires up (stdin here, a real
// port binding is the external listener's job per §1); a closed/erroring
// reader simply ends the goroutine.
func listenMidiWire(src io.Reader, midiModuleID int, control *ControlChannel) {
	packet := make([]byte, 3)
	for {
		if _, err := io.ReadFull(src, packet); err != nil {
			return
		}
		if msg, ok := DecodeWireBytes(packet); ok {
			control.TrySend(ModuleUpdate{ModuleID: midiModuleID, Payload: msg})
		}
	}
}
