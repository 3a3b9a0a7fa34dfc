package render

import (
	"github.com/cwbudde/phaseline/dsp/waveform"
	timestats "github.com/cwbudde/phaseline/stats/time"
)

// Series is the transport form of a waveform: two plain arrays of equal
// length.
type Series struct {
	Time      []float64 `json:"time"`
	Amplitude []float64 `json:"amplitude"`
}

// NewSeries copies w into a Series.
func NewSeries(w waveform.Waveform) *Series {
	return &Series{
		Time:      append(make([]float64, 0, len(w.Time)), w.Time...),
		Amplitude: append(make([]float64, 0, len(w.Amplitude)), w.Amplitude...),
	}
}

// Len returns the number of samples.
func (s *Series) Len() int {
	return len(s.Time)
}

// Summary returns time-domain statistics of the amplitude sequence.
func (s *Series) Summary() timestats.Stats {
	return timestats.Calculate(s.Amplitude)
}
