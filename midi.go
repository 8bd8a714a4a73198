// midi.go - Midi module: mono gate path plus polyphonic voice allocator (§4.9)

package main

type monoStage int

const (
	monoIdle monoStage = iota
	monoTrigger
	monoReady
	monoGate
)

type voiceSlot struct {
	on       bool
	pressed  bool
	note     uint8
	velocity uint8
}

// Midi has no cable inputs: it is driven purely by control-channel
// messages forwarded from the external MIDI listener (§6). It exposes a
// mono gate/note/velocity output plus one gate/note/velocity triple per
// poly voice.
type Midi struct {
	id   int
	poly int

	sustain bool

	stage       monoStage
	monoNote    uint8
	monoVel     uint8
	currentHeld bool

	voices []voiceSlot
	fifo   []int

	out []float32
}

func NewMidi(id, poly int) *Midi {
	return &Midi{
		id:     id,
		poly:   poly,
		voices: make([]voiceSlot, poly),
		out:    make([]float32, 3+3*poly),
	}
}

func (m *Midi) ID() int { return m.id }

func (m *Midi) Process() {
	switch m.stage {
	case monoTrigger:
		m.stage = monoReady
	case monoReady:
		m.stage = monoGate
	}

	var gate float32
	if m.stage == monoGate {
		gate = 1
	}
	m.out[0] = gate
	m.out[1] = float32(m.monoNote) / 127
	m.out[2] = float32(m.monoVel) / 127

	for v := 0; v < m.poly; v++ {
		base := 3 + 3*v
		slot := m.voices[v]
		var g float32
		if slot.on {
			g = 1
		}
		m.out[base] = g
		m.out[base+1] = float32(slot.note) / 127
		m.out[base+2] = float32(slot.velocity) / 127
	}
}

func (m *Midi) Update(msg ModuleMessage) {
	switch p := msg.(type) {
	case KeyPress:
		m.stage = monoTrigger
		m.monoNote = p.Note
		m.monoVel = p.Velocity
		m.currentHeld = true
		m.pressPoly(p.Note, p.Velocity)

	case KeyRelease:
		if p.Note == m.monoNote {
			m.currentHeld = false
			if !m.sustain {
				m.stage = monoIdle
			}
		}
		m.releasePoly(p.Note)

	case PedalPress:
		m.sustain = true

	case PedalRelease:
		m.sustain = false
		if !m.currentHeld {
			m.stage = monoIdle
		}
		m.releasePedalPoly()
	}
}

func (m *Midi) pressPoly(note, velocity uint8) {
	target := -1
	for i, v := range m.voices {
		if !v.on {
			target = i
			break
		}
	}
	if target == -1 {
		if len(m.fifo) == 0 {
			return
		}
		target = m.fifo[0]
		m.fifo = m.fifo[1:]
	}
	m.voices[target] = voiceSlot{on: true, pressed: true, note: note, velocity: velocity}
	m.fifo = append(m.fifo, target)
}

func (m *Midi) releasePoly(note uint8) {
	for i := range m.voices {
		if m.voices[i].on && m.voices[i].note == note {
			if m.sustain {
				m.voices[i].pressed = false
			} else {
				m.voices[i] = voiceSlot{}
				m.removeFromFifo(i)
			}
		}
	}
}

func (m *Midi) releasePedalPoly() {
	for i := range m.voices {
		if m.voices[i].on && !m.voices[i].pressed {
			m.voices[i] = voiceSlot{}
			m.removeFromFifo(i)
		}
	}
}

func (m *Midi) removeFromFifo(voiceIndex int) {
	for j, idx := range m.fifo {
		if idx == voiceIndex {
			m.fifo = append(m.fifo[:j], m.fifo[j+1:]...)
			return
		}
	}
}

func (m *Midi) ReadOutput(index int) float32 {
	if index < 0 || index >= len(m.out) {
		return 0
	}
	return m.out[index]
}

// Modulate is unused: Midi has no cable inputs, it is only driven by
// Update.
func (m *Midi) Modulate(index int, value float32) {}

func (m *Midi) NumOutputs() int { return len(m.out) }
func (m *Midi) NumInputs() int  { return 0 }
