package waveform

import (
	"fmt"
	"math"
)

const twoPi = 2 * math.Pi

// Waveform pairs a time base with the amplitude sampled at each instant.
// Time and Amplitude always have equal length.
type Waveform struct {
	Time      []float64
	Amplitude []float64
}

// Len returns the number of samples.
func (w Waveform) Len() int {
	return len(w.Time)
}

// Sine returns amplitude * sin(2*pi*frequency*t) for each t in time.
func Sine(time []float64, frequency, amplitude float64) []float64 {
	out := make([]float64, len(time))
	w := twoPi * frequency
	for i, t := range time {
		out[i] = amplitude * math.Sin(w*t)
	}
	return out
}

// Square returns amplitude * sign(sin(2*pi*frequency*t)) for each t in time,
// with sign(0) = 0.
//
// The sign is taken from the half-cycle count 2*frequency*t rather than from
// a rounded sine value: an integral count is a zero crossing and yields an
// exact 0, otherwise the parity of the half cycle selects +amplitude or
// -amplitude.
func Square(time []float64, frequency, amplitude float64) []float64 {
	out := make([]float64, len(time))
	for i, t := range time {
		out[i] = amplitude * squareSign(2*frequency*t)
	}
	return out
}

func squareSign(halfCycles float64) float64 {
	if math.IsNaN(halfCycles) || math.IsInf(halfCycles, 0) {
		return math.NaN()
	}
	k := math.Floor(halfCycles)
	if k == halfCycles {
		return 0
	}
	if math.Mod(k, 2) == 0 {
		return 1
	}
	return -1
}

// Triangle returns amplitude * (2*|2*phase-1| - 1) for each t in time, where
// phase = (t*frequency) mod 1 is the position within the current period.
//
// Each period starts at +amplitude, reaches -amplitude at half period and
// climbs back.
func Triangle(time []float64, frequency, amplitude float64) []float64 {
	out := make([]float64, len(time))
	for i, t := range time {
		out[i] = amplitude * (2*math.Abs(2*Phase(t*frequency)-1) - 1)
	}
	return out
}

// Phase returns x mod 1 using floored division, so the result lies in
// [0, 1) for every finite x. Non-finite x yields NaN.
func Phase(x float64) float64 {
	p := math.Mod(x, 1)
	if p < 0 {
		p++
	}
	if p == 1 {
		return 0
	}
	return p
}

// SineWave generates a sine waveform from p.
func SineWave(p Params) Waveform {
	t := TimeBase(p.Duration, p.SampleRate)
	return Waveform{Time: t, Amplitude: Sine(t, p.Frequency, p.Amplitude)}
}

// SquareWave generates a square waveform from p.
func SquareWave(p Params) Waveform {
	t := TimeBase(p.Duration, p.SampleRate)
	return Waveform{Time: t, Amplitude: Square(t, p.Frequency, p.Amplitude)}
}

// TriangleWave generates a triangle waveform from p.
func TriangleWave(p Params) Waveform {
	t := TimeBase(p.Duration, p.SampleRate)
	return Waveform{Time: t, Amplitude: Triangle(t, p.Frequency, p.Amplitude)}
}

// Generate dispatches to the generator for kind.
func Generate(kind Kind, p Params) (Waveform, error) {
	switch kind {
	case KindSine:
		return SineWave(p), nil
	case KindSquare:
		return SquareWave(p), nil
	case KindTriangle:
		return TriangleWave(p), nil
	default:
		return Waveform{}, fmt.Errorf("unknown waveform kind: %d", int(kind))
	}
}
