package time

import (
	"math"
	"testing"
)

const tolerance = 1e-10

func TestCalculateEmpty(t *testing.T) {
	if got := Calculate(nil); got != (Stats{}) {
		t.Fatalf("Calculate(nil) = %+v, want zero Stats", got)
	}
	if RMS(nil) != 0 || Energy(nil) != 0 || ZeroCrossings(nil) != 0 {
		t.Fatal("helpers must return 0 for empty input")
	}
}

func TestCalculateAlternating(t *testing.T) {
	s := Calculate([]float64{0.5, -0.5, 0.5, -0.5})
	if s.Length != 4 {
		t.Fatalf("Length = %d, want 4", s.Length)
	}
	if s.Max != 0.5 || s.MaxPos != 0 || s.Min != -0.5 || s.MinPos != 1 {
		t.Fatalf("extrema = %+v", s)
	}
	if s.Peak != 0.5 {
		t.Fatalf("Peak = %v, want 0.5", s.Peak)
	}
	if math.Abs(s.RMS-0.5) > tolerance {
		t.Fatalf("RMS = %v, want 0.5", s.RMS)
	}
	if math.Abs(s.CrestFactor-1) > tolerance {
		t.Fatalf("CrestFactor = %v, want 1", s.CrestFactor)
	}
	if s.Energy != 1 {
		t.Fatalf("Energy = %v, want 1", s.Energy)
	}
	if s.Mean != 0 {
		t.Fatalf("Mean = %v, want 0", s.Mean)
	}
	if s.ZeroCrossings != 3 {
		t.Fatalf("ZeroCrossings = %d, want 3", s.ZeroCrossings)
	}
}

func TestSineRMS(t *testing.T) {
	const n = 1000
	x := make([]float64, n)
	for i := range x {
		x[i] = 2 * math.Sin(2*math.Pi*5*float64(i)/n)
	}
	s := Calculate(x)
	if math.Abs(s.RMS-math.Sqrt2) > 1e-9 {
		t.Fatalf("RMS = %v, want %v", s.RMS, math.Sqrt2)
	}
	if math.Abs(s.Mean) > 1e-12 {
		t.Fatalf("Mean = %v, want ~0", s.Mean)
	}
	if math.Abs(s.CrestFactor-math.Sqrt2) > 1e-6 {
		t.Fatalf("CrestFactor = %v, want sqrt(2)", s.CrestFactor)
	}
}

func TestZeroCrossingsSkipsExactZeros(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want int
	}{
		{name: "through zero", in: []float64{0, 2, 0, -2, 0, 2}, want: 2},
		{name: "touch zero", in: []float64{1, 0, 1}, want: 0},
		{name: "all zero", in: []float64{0, 0, 0}, want: 0},
		{name: "direct", in: []float64{1, -1}, want: 1},
		{name: "tiny amplitude", in: []float64{1e-200, -1e-200, 1e-200, -1e-200}, want: 3},
		{name: "subnormal", in: []float64{5e-324, -5e-324}, want: 1},
		{name: "nan gap", in: []float64{1, math.NaN(), -1}, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ZeroCrossings(tt.in); got != tt.want {
				t.Fatalf("ZeroCrossings() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSilenceHasNoCrestFactor(t *testing.T) {
	s := Calculate([]float64{0, 0, 0})
	if s.RMS != 0 || s.CrestFactor != 0 || s.Peak != 0 {
		t.Fatalf("unexpected stats for silence: %+v", s)
	}
}
