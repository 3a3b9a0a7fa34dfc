package testutil

import "math"

// DeterministicSine generates a sine wave by stepping the phase per sample
// index, independent of any time base.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Ramp returns length samples i*step starting at 0.
func Ramp(step float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = float64(i) * step
	}
	return out
}
