// dsp_common.go - Shared oscillator math: pitch mapping and polyBLEP antialiasing (§4.3, §4.4)

package main

import "math"

// pitchToHz maps a normalized pitch f ∈ [0,1] (MIDI note / 127) to Hertz
// using the base-2 exponential scale common to both audio-rate oscillators
// (coeff = 8.176, so f=0 lands on MIDI C-1) and sub-audio LFOs
// (coeff = 0.5).
func pitchToHz(f float32, coeff float32) float32 {
	return float32(math.Pow(2, float64(127*f/12))) * coeff
}

// polyBLEP returns the polynomial band-limited step correction for a
// phase p given phase increment delta, applied around waveform
// discontinuities to suppress aliasing (§4.3).
func polyBLEP(p, delta float32) float32 {
	switch {
	case p < delta:
		t := p / delta
		return 2*t - t*t - 1
	case p > 1-delta:
		t := (p - 1) / delta
		return t*t + 2*t + 1
	default:
		return 0
	}
}

// hzToPitch is the inverse of pitchToHz, used to express a fixed Hertz
// target (e.g. a reverb's fixed low-pass cutoff) as the normalized pitch
// AnalogOscillator/Butterworth/LFO expect.
func hzToPitch(hz, coeff float32) float32 {
	return 12 * float32(math.Log2(float64(hz/coeff))) / 127
}

func wrap01(p float32) float32 {
	p -= float32(math.Floor(float64(p)))
	if p < 0 {
		p += 1
	}
	return p
}

// rawWaveform evaluates the unscaled waveform for shape at phase p with
// phase increment delta (needed for the BLEP correction on Saw/Square).
func rawWaveform(shape WaveShape, p, delta float32) float32 {
	switch shape {
	case Saw:
		return 2*p - 1 - polyBLEP(p, delta)
	case Sine:
		return float32(math.Sin(2 * math.Pi * float64(p)))
	case Square:
		var base float32 = -1
		if p < 0.5 {
			base = 1
		}
		return base + polyBLEP(p, delta) - polyBLEP(wrap01(p+0.5), delta)
	case Triangle:
		return 1 - 4*float32(math.Abs(float64(p-float32(math.Floor(float64(p+0.5))))))
	default:
		return 0
	}
}
