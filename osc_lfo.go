// osc_lfo.go - LFO module: same oscillator math at sub-audio rate, quadrature outputs (§4.4)

package main

// LFO is an AnalogOscillator variant mapped to sub-audio frequencies
// (pitch coefficient 0.5 instead of 8.176) that exposes two outputs in
// quadrature for modulation use: zero-phase and quarter-phase.
type LFO struct {
	id int

	sampleRate float32
	shape      WaveShape
	baseFreq   float32
	baseLevel  float32
	basePhase  float32

	phase float32

	inLevel float32
	inFreq  float32
	inPhase float32

	out0, out1 float32
}

func NewLFO(id int, sampleRate float32, shape WaveShape, baseFreq, baseLevel float32) *LFO {
	return &LFO{
		id:         id,
		sampleRate: sampleRate,
		shape:      shape,
		baseFreq:   baseFreq,
		baseLevel:  baseLevel,
	}
}

func (o *LFO) ID() int { return o.id }

func (o *LFO) Process() {
	f := clamp32(o.baseFreq+o.inFreq, 0, 1)
	lv := clamp32(o.baseLevel+o.inLevel, 0, 1)

	hz := pitchToHz(f, 0.5)
	delta := hz / o.sampleRate

	p := wrap01(o.phase + o.inPhase)
	o.out0 = rawWaveform(o.shape, p, delta) * lv
	o.out1 = rawWaveform(o.shape, wrap01(p+0.25), delta) * lv

	o.phase = wrap01(o.phase + delta)
}

func (o *LFO) Update(msg ModuleMessage) {
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

func (o *LFO) ReadOutput(index int) float32 {
	switch index {
	case 0:
		return o.out0
	case 1:
		return o.out1
	default:
		return 0
	}
}

func (o *LFO) Modulate(index int, value float32) {
	switch index {
	case 0:
		o.inLevel = value
	case 1:
		o.inFreq = value
	case 2:
		o.inPhase = value
	}
}

func (o *LFO) NumOutputs() int { return 2 }
func (o *LFO) NumInputs() int  { return 3 }
