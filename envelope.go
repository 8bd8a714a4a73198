// envelope.go - ADSR envelope generator, sample-counter based (§4.5)

package main

type envStage int

const (
	envIdle envStage = iota
	envAttack
	envDecay
	envSustain
	envRelease
)

// Envelope is a four-stage ADSR generator. Stage timing is driven by a
// sample counter rather than a wall-clock timestamp, for deterministic,
// reproducible output regardless of scheduling jitter.
type Envelope struct {
	id int

	sampleRate              float32
	attack, decay, release  float32 // seconds
	sustain                 float32 // 0..1

	stage      envStage
	elapsed    int64
	startValue float32
	current    float32

	gate, prevGate, velocity float32

	out0 float32
}

func NewEnvelope(id int, sampleRate, attack, decay, sustain, release float32) *Envelope {
	return &Envelope{
		id:         id,
		sampleRate: sampleRate,
		attack:     attack,
		decay:      decay,
		sustain:    sustain,
		release:    release,
	}
}

func (e *Envelope) ID() int { return e.id }

func (e *Envelope) Process() {
	rose := e.gate != 0 && e.prevGate == 0
	fell := e.gate == 0 && e.prevGate != 0

	if rose {
		e.stage = envAttack
		e.startValue = e.current
		e.elapsed = 0
	} else if fell && e.stage != envIdle {
		e.stage = envRelease
		e.startValue = e.current
		e.elapsed = 0
	}

	attackSamples := e.attack * e.sampleRate
	decaySamples := e.decay * e.sampleRate
	releaseSamples := e.release * e.sampleRate
	t := float32(e.elapsed)

	switch e.stage {
	case envIdle:
		e.current = 0

	case envAttack:
		if attackSamples <= 0 {
			e.current = 1
		} else {
			e.current = e.startValue + (1-e.startValue)*t/attackSamples
		}
		if t >= attackSamples {
			e.stage = envDecay
			e.elapsed = 0
		} else {
			e.elapsed++
		}

	case envDecay:
		if decaySamples <= 0 {
			e.current = e.sustain
		} else {
			v := 1 - (1-e.sustain)*t/decaySamples
			if v < e.sustain {
				v = e.sustain
			}
			e.current = v
		}
		if t >= decaySamples {
			e.stage = envSustain
		} else {
			e.elapsed++
		}

	case envSustain:
		e.current = e.sustain

	case envRelease:
		var v float32
		if releaseSamples <= 0 {
			v = 0
		} else {
			v = e.startValue * (1 - t/releaseSamples)
			if v < 0 {
				v = 0
			}
		}
		e.current = v
		if v <= 0 {
			e.stage = envIdle
			e.current = 0
		} else {
			e.elapsed++
		}
	}

	e.out0 = e.current * e.velocity
	e.prevGate = e.gate
}

func (e *Envelope) Update(msg ModuleMessage) {
	switch m := msg.(type) {
	case SetAttack:
		e.attack = float32(m)
	case SetDecay:
		e.decay = float32(m)
	case SetSustain:
		e.sustain = float32(m)
	case SetRelease:
		e.release = float32(m)
	}
}

func (e *Envelope) ReadOutput(index int) float32 {
	if index == 0 {
		return e.out0
	}
	return 0
}

func (e *Envelope) Modulate(index int, value float32) {
	switch index {
	case 0:
		e.gate = value
	case 1:
		e.velocity = value
	default:
		// 2..5: real-time attack/decay/sustain/release modulation inputs,
		// accepted but not applied by this implementation.
	}
}

func (e *Envelope) NumOutputs() int { return 1 }
func (e *Envelope) NumInputs() int  { return 6 }
