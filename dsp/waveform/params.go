package waveform

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams is wrapped by every error returned from [Params.Validate].
var ErrInvalidParams = errors.New("invalid waveform parameters")

const (
	DefaultFrequency  = 5.0
	DefaultAmplitude  = 1.0
	DefaultDuration   = 1.0
	DefaultSampleRate = 1000
)

// Params holds the generation parameters shared by all waveform kinds.
//
// Frequency is in Hz, Duration in seconds and SampleRate in samples per
// second. Frequencies above the Nyquist limit are not rejected.
type Params struct {
	Frequency  float64 `json:"frequency"`
	Amplitude  float64 `json:"amplitude"`
	Duration   float64 `json:"duration"`
	SampleRate int     `json:"sampling_rate"`
}

// Option overrides one field of a Params.
type Option func(*Params)

// DefaultParams returns 5 Hz, unit amplitude, one second at 1000 samples/s.
func DefaultParams() Params {
	return Params{
		Frequency:  DefaultFrequency,
		Amplitude:  DefaultAmplitude,
		Duration:   DefaultDuration,
		SampleRate: DefaultSampleRate,
	}
}

// WithFrequency sets the frequency in Hz.
func WithFrequency(hz float64) Option {
	return func(p *Params) {
		p.Frequency = hz
	}
}

// WithAmplitude sets the peak amplitude.
func WithAmplitude(a float64) Option {
	return func(p *Params) {
		p.Amplitude = a
	}
}

// WithDuration sets the signal length in seconds.
func WithDuration(seconds float64) Option {
	return func(p *Params) {
		p.Duration = seconds
	}
}

// WithSampleRate sets the number of samples per second.
func WithSampleRate(rate int) Option {
	return func(p *Params) {
		p.SampleRate = rate
	}
}

// NewParams applies zero or more options to the defaults.
func NewParams(opts ...Option) Params {
	p := DefaultParams()
	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}
	return p
}

// Samples returns the number of samples these parameters produce.
func (p Params) Samples() int {
	return SampleCount(p.Duration, p.SampleRate)
}

// Validate reports whether p describes a well-formed signal. Synthesis does
// not call it; it exists for callers that want to reject bad input up front.
func (p Params) Validate() error {
	if math.IsNaN(p.Frequency) || math.IsInf(p.Frequency, 0) {
		return fmt.Errorf("%w: frequency must be finite: %f", ErrInvalidParams, p.Frequency)
	}
	if p.Frequency < 0 {
		return fmt.Errorf("%w: frequency must be >= 0: %f", ErrInvalidParams, p.Frequency)
	}
	if math.IsNaN(p.Amplitude) || math.IsInf(p.Amplitude, 0) {
		return fmt.Errorf("%w: amplitude must be finite: %f", ErrInvalidParams, p.Amplitude)
	}
	if math.IsNaN(p.Duration) || math.IsInf(p.Duration, 0) || p.Duration <= 0 {
		return fmt.Errorf("%w: duration must be > 0: %f", ErrInvalidParams, p.Duration)
	}
	if p.SampleRate <= 0 {
		return fmt.Errorf("%w: sampling rate must be > 0: %d", ErrInvalidParams, p.SampleRate)
	}
	return nil
}
