// reverb.go - Composite Schroeder-style reverb (§4.8)

package main

// Reverb owns a fixed internal pipeline — three series allpasses, a
// Butterworth low-pass, a quadrature LFO, and four parallel combs — and
// drives them directly inside its own Process() rather than through
// cables. The tuning constants below are the canonical Schroeder reverb
// values and must not be altered.
type Reverb struct {
	id int

	wet float32

	allpasses [3]*Allpass
	butter    *Butterworth
	lfo       *LFO
	combs     [4]*Comb

	inValue    float32
	outL, outR float32
}

func NewReverb(id int, sampleRate float32) *Reverb {
	allpassDelays := [3]int{400, 200, 80}
	const allpassGain = 0.7

	combDelays := [4]int{1835, 2133, 1478, 1911}
	combGains := [4]float32{0.913, 0.871, 0.863, 0.903}

	r := &Reverb{id: id, wet: 0.5}

	for i, d := range allpassDelays {
		r.allpasses[i] = NewAllpass(-1, d+8, d, allpassGain)
	}

	r.butter = NewButterworth(-1, sampleRate, hzToPitch(8000, 8.176))
	r.lfo = NewLFO(-1, sampleRate, Sine, hzToPitch(0.3, 0.5), 1.0)

	for i, d := range combDelays {
		r.combs[i] = NewComb(-1, d+16, d, combGains[i])
	}

	return r
}

func (r *Reverb) ID() int { return r.id }

func (r *Reverb) Process() {
	x := r.inValue

	v := x
	for _, ap := range r.allpasses {
		ap.Modulate(0, v)
		ap.Process()
		v = ap.ReadOutput(0)
	}

	r.butter.Modulate(0, v)
	r.butter.Process()
	filtered := r.butter.ReadOutput(0)

	r.lfo.Process()
	lfo0 := r.lfo.ReadOutput(0)
	lfo1 := r.lfo.ReadOutput(1)

	var sum, altSum float32
	for i, comb := range r.combs {
		shift := lfo1 * 3
		if i%2 == 0 {
			shift = lfo0 * 3
		}
		comb.Modulate(1, shift)
		comb.Modulate(0, filtered)
		comb.Process()
		o := comb.ReadOutput(0)
		sum += o
		if i%2 == 0 {
			altSum += o
		} else {
			altSum -= o
		}
	}

	combMeanL := sum / 4
	combMeanR := altSum / 4

	r.outL = x*(1-r.wet) + r.wet*combMeanL
	r.outR = x*(1-r.wet) + r.wet*combMeanR

	r.inValue = 0
}

func (r *Reverb) Update(msg ModuleMessage) {
	if m, ok := msg.(SetWet); ok {
		r.wet = clamp32(float32(m), 0, 1)
	}
}

func (r *Reverb) ReadOutput(index int) float32 {
	switch index {
	case 0:
		return r.outL
	case 1:
		return r.outR
	default:
		return 0
	}
}

func (r *Reverb) Modulate(index int, value float32) {
	if index == 0 {
		r.inValue += value
	}
}

func (r *Reverb) NumOutputs() int { return 2 }
func (r *Reverb) NumInputs() int  { return 1 }
