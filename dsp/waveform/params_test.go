package waveform

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultParams(t *testing.T) {
	want := Params{Frequency: 5, Amplitude: 1, Duration: 1, SampleRate: 1000}
	if got := DefaultParams(); got != want {
		t.Fatalf("DefaultParams() = %+v, want %+v", got, want)
	}
	if got := NewParams(); got != want {
		t.Fatalf("NewParams() = %+v, want %+v", got, want)
	}
}

func TestOptionsOverrideIndependently(t *testing.T) {
	p := NewParams(WithAmplitude(3), nil, WithSampleRate(44100))
	if p.Amplitude != 3 || p.SampleRate != 44100 {
		t.Fatalf("overrides not applied: %+v", p)
	}
	if p.Frequency != DefaultFrequency || p.Duration != DefaultDuration {
		t.Fatalf("untouched fields changed: %+v", p)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		p       Params
		wantErr bool
	}{
		{name: "defaults", p: DefaultParams()},
		{name: "zero frequency", p: NewParams(WithFrequency(0))},
		{name: "above nyquist", p: NewParams(WithFrequency(900))},
		{name: "negative amplitude", p: NewParams(WithAmplitude(-1))},
		{name: "negative frequency", p: NewParams(WithFrequency(-1)), wantErr: true},
		{name: "infinite frequency", p: NewParams(WithFrequency(math.Inf(1))), wantErr: true},
		{name: "nan amplitude", p: NewParams(WithAmplitude(math.NaN())), wantErr: true},
		{name: "zero duration", p: NewParams(WithDuration(0)), wantErr: true},
		{name: "infinite duration", p: NewParams(WithDuration(math.Inf(1))), wantErr: true},
		{name: "zero rate", p: NewParams(WithSampleRate(0)), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidParams) {
					t.Fatalf("Validate() = %v, want ErrInvalidParams", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
		})
	}
}
