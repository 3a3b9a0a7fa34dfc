// Package time summarizes sampled amplitude sequences in the time domain.
package time

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Stats holds time-domain statistics of an amplitude sequence.
type Stats struct {
	Length        int     `json:"length"`
	Min           float64 `json:"min"`
	MinPos        int     `json:"min_pos"`
	Max           float64 `json:"max"`
	MaxPos        int     `json:"max_pos"`
	Peak          float64 `json:"peak"` // max(|max|, |min|)
	Mean          float64 `json:"mean"`
	RMS           float64 `json:"rms"`
	Energy        float64 `json:"energy"`       // sum of squares
	CrestFactor   float64 `json:"crest_factor"` // peak / RMS
	ZeroCrossings int     `json:"zero_crossings"`
}

// Calculate computes all statistics of signal. An empty signal yields the
// zero Stats.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	s := Stats{
		Length: n,
		Min:    signal[0],
		Max:    signal[0],
	}

	var sum, c float64
	for i, x := range signal {
		if x > s.Max {
			s.Max = x
			s.MaxPos = i
		}
		if x < s.Min {
			s.Min = x
			s.MinPos = i
		}

		// Kahan summation keeps the mean of long, symmetric signals near zero.
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}
	s.ZeroCrossings = ZeroCrossings(signal)
	s.Energy = Energy(signal)

	nf := float64(n)
	s.Mean = sum / nf
	s.RMS = math.Sqrt(s.Energy / nf)
	s.Peak = math.Max(math.Abs(s.Max), math.Abs(s.Min))
	if s.RMS != 0 {
		s.CrestFactor = s.Peak / s.RMS
	}
	return s
}

// Energy returns the sum of squared samples.
func Energy(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	sq := make([]float64, len(signal))
	vecmath.MulBlock(sq, signal, signal)

	var sum float64
	for _, v := range sq {
		sum += v
	}
	return sum
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return math.Sqrt(Energy(signal) / float64(len(signal)))
}

// ZeroCrossings counts sign changes between consecutive samples. Exact zero
// samples do not start or end a crossing on their own, so a square wave that
// passes through 0 on its way from +A to -A is counted once per transition.
// NaN samples are skipped the same way.
func ZeroCrossings(signal []float64) int {
	var (
		count int
		prev  float64
	)
	for _, x := range signal {
		if x == 0 || math.IsNaN(x) {
			continue
		}
		if prev != 0 && (prev > 0) != (x > 0) {
			count++
		}
		prev = x
	}
	return count
}
