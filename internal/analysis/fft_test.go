package analysis

import (
	"math"
	"testing"
)

func TestFFTConstantSignal(t *testing.T) {
	data := []float64{1, 1, 1, 1, 1, 1, 1, 1}
	ps := PowerSpectrum(data)

	// All power in the DC bin.
	if math.Abs(ps[0]-8) > 1e-9 {
		t.Errorf("expected DC power 8, got %f", ps[0])
	}
	for i := 1; i < len(ps); i++ {
		if ps[i] > 1e-9 {
			t.Errorf("bin %d: expected zero power, got %f", i, ps[i])
		}
	}
}

func TestFFTSinePeak(t *testing.T) {
	n := 256
	cycles := 8
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * float64(cycles) * float64(i) / float64(n))
	}

	ps := PowerSpectrum(data)

	maxIdx := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > ps[maxIdx] {
			maxIdx = i
		}
	}
	if maxIdx != cycles {
		t.Errorf("expected spectral peak at bin %d, got %d", cycles, maxIdx)
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"power of two unchanged", 8, 8},
		{"rounds up", 300, 512},
		{"one stays one", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pad(make([]float64, tt.in))
			if len(got) != tt.want {
				t.Errorf("expected length %d, got %d", tt.want, len(got))
			}
		})
	}
}

func TestDominantFrequency(t *testing.T) {
	ps := []float64{100, 0, 0, 5, 0} // DC ignored, peak at bin 3
	freq := DominantFrequency(ps, 2.0)
	if math.Abs(freq-1.5) > 1e-9 {
		t.Errorf("expected 1.5 hz, got %f", freq)
	}
}

func TestTangentialSpeed(t *testing.T) {
	// Ball directly below center moving in -x: tangent at the bottom is
	// (-1, 0), so the tangential speed is +10.
	states := [][]float64{
		{0, 0, 100, 200, -10, 0, 0, 0},
	}
	got := TangentialSpeed(states, 100, 100)
	if math.Abs(got[0]-10) > 1e-9 {
		t.Errorf("expected tangential speed 10, got %f", got[0])
	}
}

func TestSpeed(t *testing.T) {
	states := [][]float64{
		{0, 0, 0, 0, 3, 4, 0, 0},
	}
	got := Speed(states)
	if math.Abs(got[0]-5) > 1e-9 {
		t.Errorf("expected speed 5, got %f", got[0])
	}
}
