// osc_analog.go - AnalogOscillator module (§4.3)

package main

// AnalogOscillator produces one antialiased audio-rate waveform per tick.
// Inputs 0:level, 1:frequency, 2:phase are last-writer-wins offsets
// combined with the oscillator's own base parameters each sample.
type AnalogOscillator struct {
	id int

	sampleRate float32
	shape      WaveShape
	baseFreq   float32 // normalized pitch, [0,1]
	baseLevel  float32
	basePhase  float32

	phase float32 // running phase, [0,1)

	inLevel float32
	inFreq  float32
	inPhase float32

	out0 float32
}

// NewAnalogOscillator constructs an oscillator voice at baseFreq
// (normalized MIDI note / 127) with the given waveform.
func NewAnalogOscillator(id int, sampleRate float32, shape WaveShape, baseFreq, baseLevel float32) *AnalogOscillator {
	return &AnalogOscillator{
		id:         id,
		sampleRate: sampleRate,
		shape:      shape,
		baseFreq:   baseFreq,
		baseLevel:  baseLevel,
	}
}

func (o *AnalogOscillator) ID() int { return o.id }

func (o *AnalogOscillator) Process() {
	f := clamp32(o.baseFreq+o.inFreq, 0, 1)
	lv := clamp32(o.baseLevel+o.inLevel, 0, 1)

	hz := pitchToHz(f, 8.176)
	delta := hz / o.sampleRate

	p := wrap01(o.phase + o.inPhase)
	raw := rawWaveform(o.shape, p, delta)

	o.phase = wrap01(o.phase + delta)
	o.out0 = raw * lv

	// Inputs are last-writer-wins control signals: they hold their value
	// until the next Update/Modulate, they are not cleared here.
}

func (o *AnalogOscillator) Update(msg ModuleMessage) {
	switch m := msg.(type) {
	case SetSampleRate:
		o.sampleRate = float32(m)
	case SetFrequency:
		o.baseFreq = float32(m)
	case SetPhase:
		o.basePhase = float32(m)
		o.phase = wrap01(o.basePhase)
	case SetShape:
		o.shape = m.Shape
	}
}

func (o *AnalogOscillator) ReadOutput(index int) float32 {
	if index == 0 {
		return o.out0
	}
	return 0
}

func (o *AnalogOscillator) Modulate(index int, value float32) {
	switch index {
	case 0:
		o.inLevel = value
	case 1:
		o.inFreq = value
	case 2:
		o.inPhase = value
	}
}

func (o *AnalogOscillator) NumOutputs() int { return 1 }
func (o *AnalogOscillator) NumInputs() int  { return 3 }
