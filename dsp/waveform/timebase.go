package waveform

import "math"

// SampleCount returns floor(duration * sampleRate), or 0 when the product is
// not a finite value of at least one sample.
func SampleCount(duration float64, sampleRate int) int {
	n := math.Floor(duration * float64(sampleRate))
	if math.IsNaN(n) || n < 1 || n >= float64(math.MaxInt) {
		return 0
	}
	return int(n)
}

// TimeBase returns SampleCount(duration, sampleRate) uniformly spaced time
// samples over [0, duration). The endpoint is excluded so consecutive
// periods tile without repeating the wrap point.
//
// Degenerate inputs yield an empty, non-nil slice.
func TimeBase(duration float64, sampleRate int) []float64 {
	n := SampleCount(duration, sampleRate)
	out := make([]float64, n)
	if n == 0 {
		return out
	}

	step := duration / float64(n)
	for i := range out {
		out[i] = float64(i) * step
	}
	return out
}
