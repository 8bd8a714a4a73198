// delay_lines.go - Allpass, Comb, Delay, Chorus ring-buffered delay modules (§4.7)

package main

import "math"

// Allpass implements y = -g·x + d + g·f, with d the tap-delayed input and
// f the tap-delayed previous output, both pushed to their own ring
// buffers each sample (§4.7).
type Allpass struct {
	id int

	gain         float32
	delaySamples int

	bufX, bufY *ringBuffer

	inValue float32
	out0    float32
}

func NewAllpass(id, capacity, delaySamples int, gain float32) *Allpass {
	return &Allpass{
		id:           id,
		gain:         gain,
		delaySamples: delaySamples,
		bufX:         newRingBuffer(capacity),
		bufY:         newRingBuffer(capacity),
	}
}

func (a *Allpass) ID() int { return a.id }

func (a *Allpass) Process() {
	x := a.inValue
	d := a.bufX.tap(a.delaySamples)
	f := a.bufY.tap(a.delaySamples)
	y := -a.gain*x + d + a.gain*f

	a.bufX.push(x)
	a.bufY.push(y)
	a.out0 = y
	a.inValue = 0
}

func (a *Allpass) Update(msg ModuleMessage) {
	switch m := msg.(type) {
	case SetTapGain:
		a.gain = float32(m)
	case SetTapDelay:
		a.delaySamples = int(m)
	}
}

func (a *Allpass) ReadOutput(index int) float32 {
	if index == 0 {
		return a.out0
	}
	return 0
}

func (a *Allpass) Modulate(index int, value float32) {
	if index == 0 {
		a.inValue += value
	}
}

func (a *Allpass) NumOutputs() int { return 1 }
func (a *Allpass) NumInputs() int  { return 1 }

// Comb implements the feedback comb y = x + g·buf[delay+offset], with
// offset a last-writer-wins tap-modulation input (§4.7).
type Comb struct {
	id int

	gain         float32
	delaySamples int

	buf *ringBuffer

	inValue    float32
	inTapShift float32

	out0 float32
}

func NewComb(id, capacity, delaySamples int, gain float32) *Comb {
	return &Comb{
		id:           id,
		gain:         gain,
		delaySamples: delaySamples,
		buf:          newRingBuffer(capacity),
	}
}

func (c *Comb) ID() int { return c.id }

func (c *Comb) Process() {
	x := c.inValue
	tapPos := c.delaySamples + int(c.inTapShift)
	f := c.buf.tap(tapPos)
	y := x + c.gain*f

	c.buf.push(y)
	c.out0 = y
	c.inValue = 0
}

func (c *Comb) Update(msg ModuleMessage) {
	switch m := msg.(type) {
	case SetTapGain:
		c.gain = float32(m)
	case SetTapDelay:
		c.delaySamples = int(m)
	}
}

func (c *Comb) ReadOutput(index int) float32 {
	if index == 0 {
		return c.out0
	}
	return 0
}

func (c *Comb) Modulate(index int, value float32) {
	switch index {
	case 0:
		c.inValue += value
	case 1:
		c.inTapShift = value
	}
}

func (c *Comb) NumOutputs() int { return 1 }
func (c *Comb) NumInputs() int  { return 2 }

// Delay implements y = x + ratio·buf[round(time·sr)], a feedback echo
// line with a floating-point time parameter (§4.7).
type Delay struct {
	id int

	sampleRate float32
	timeSec    float32
	ratio      float32

	buf *ringBuffer

	inValue float32
	out0    float32
}

func NewDelay(id, capacity int, sampleRate, timeSec, ratio float32) *Delay {
	return &Delay{
		id:         id,
		sampleRate: sampleRate,
		timeSec:    timeSec,
		ratio:      ratio,
		buf:        newRingBuffer(capacity),
	}
}

func (d *Delay) ID() int { return d.id }

func (d *Delay) Process() {
	x := d.inValue
	delaySamples := int(math.Round(float64(d.timeSec * d.sampleRate)))
	tap := d.buf.tap(delaySamples)
	y := x + d.ratio*tap

	d.buf.push(y)
	d.out0 = y
	d.inValue = 0
}

func (d *Delay) Update(msg ModuleMessage) {
	switch m := msg.(type) {
	case SetLineTime:
		d.timeSec = float32(m)
	case SetLineRatio:
		d.ratio = clamp32(float32(m), 0, 0.99)
	}
}

func (d *Delay) ReadOutput(index int) float32 {
	if index == 0 {
		return d.out0
	}
	return 0
}

func (d *Delay) Modulate(index int, value float32) {
	if index == 0 {
		d.inValue += value
	}
}

func (d *Delay) NumOutputs() int { return 1 }
func (d *Delay) NumInputs() int  { return 1 }

// Chorus implements two LFO-swept taps: output = (1-ratio)·x +
// ratio·(tap1+tap2)/2, with the output itself fed back into the buffer
// (§4.7). The sweep LFO is owned internally, driven at construction-fixed
// ≈0.05 Hz, and is not part of the cable graph.
type Chorus struct {
	id int

	sampleRate   float32
	baseDelay    float32 // samples
	depth        float32 // samples
	ratio        float32
	lfoPhase     float32
	lfoIncrement float32

	buf *ringBuffer

	inValue float32
	out0    float32
}

func NewChorus(id, capacity int, sampleRate, baseDelaySamples, depthSamples, ratio float32) *Chorus {
	return &Chorus{
		id:           id,
		sampleRate:   sampleRate,
		baseDelay:    baseDelaySamples,
		depth:        depthSamples,
		ratio:        ratio,
		lfoIncrement: 0.05 / sampleRate,
		buf:          newRingBuffer(capacity),
	}
}

func (c *Chorus) ID() int { return c.id }

func (c *Chorus) Process() {
	x := c.inValue

	s0 := float32(math.Sin(2 * math.Pi * float64(c.lfoPhase)))
	s1 := float32(math.Sin(2 * math.Pi * float64(wrap01(c.lfoPhase+0.25))))
	c.lfoPhase = wrap01(c.lfoPhase + c.lfoIncrement)

	tap1Delay := int(math.Round(float64(c.baseDelay + s0*c.depth)))
	tap2Delay := int(math.Round(float64(c.baseDelay + s1*c.depth)))
	tap1 := c.buf.tap(tap1Delay)
	tap2 := c.buf.tap(tap2Delay)

	y := (1-c.ratio)*x + c.ratio*(tap1+tap2)/2

	c.buf.push(y)
	c.out0 = y
	c.inValue = 0
}

func (c *Chorus) Update(msg ModuleMessage) {
	switch m := msg.(type) {
	case SetLineTime:
		c.baseDelay = float32(m) * c.sampleRate
	case SetLineRatio:
		c.ratio = clamp32(float32(m), 0, 0.99)
	}
}

func (c *Chorus) ReadOutput(index int) float32 {
	if index == 0 {
		return c.out0
	}
	return 0
}

func (c *Chorus) Modulate(index int, value float32) {
	if index == 0 {
		c.inValue += value
	}
}

func (c *Chorus) NumOutputs() int { return 1 }
func (c *Chorus) NumInputs() int  { return 1 }
