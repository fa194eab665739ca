package assessment

import (
	"math"
	"testing"
)

func TestCalibrated_PassthroughBelowMinSamples(t *testing.T) {
	e := NewCalibrationEngine(DefaultConfig())

	for i := 0; i < 9; i++ {
		e.Update(0.8, true)
	}
	if e.SampleCount() != 9 {
		t.Fatalf("SampleCount = %d, want 9", e.SampleCount())
	}

	for _, raw := range []float64{0.1, 0.5, 0.8, 0.95} {
		if got := e.Calibrated(raw); got != raw {
			t.Errorf("Calibrated(%.2f) = %.4f, want raw passthrough", raw, got)
		}
	}
}

func TestCalibrated_UsesEmpiricalBinAccuracy(t *testing.T) {
	e := NewCalibrationEngine(DefaultConfig())

	// 10 answers at confidence 0.8, half correct. The calibrated value
	// for 0.8 must be the observed accuracy, not the stated value.
	for i := 0; i < 10; i++ {
		e.Update(0.8, i%2 == 0)
	}

	got := e.Calibrated(0.8)
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Calibrated(0.8) = %.4f, want 0.5", got)
	}
}

func TestCalibrated_InterpolatesBetweenBins(t *testing.T) {
	e := NewCalibrationEngine(DefaultConfig())

	// Bin 0.2 with 0% accuracy and bin 0.8 with 100% accuracy.
	for i := 0; i < 5; i++ {
		e.Update(0.2, false)
		e.Update(0.8, true)
	}

	// 0.5 sits exactly halfway between the populated bins.
	got := e.Calibrated(0.5)
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Calibrated(0.5) = %.4f, want 0.5 (midpoint)", got)
	}

	// Outside the populated range, clamp to the boundary bin.
	if got := e.Calibrated(0.05); math.Abs(got-0.0) > 1e-9 {
		t.Errorf("Calibrated(0.05) = %.4f, want 0.0 (lower boundary)", got)
	}
	if got := e.Calibrated(0.95); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Calibrated(0.95) = %.4f, want 1.0 (upper boundary)", got)
	}
}

func TestCalibrated_SparseBinsDoNotContribute(t *testing.T) {
	cfg := DefaultConfig()
	e := NewCalibrationEngine(cfg)

	// Bin 0.5 is well populated; bin 0.9 has fewer than MinBinSamples.
	for i := 0; i < 10; i++ {
		e.Update(0.5, true)
	}
	e.Update(0.9, false)
	e.Update(0.9, false)

	// 0.9's bin is too sparse, so it falls back to the nearest
	// populated bin below.
	got := e.Calibrated(0.9)
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Calibrated(0.9) = %.4f, want 1.0 from the 0.5 bin", got)
	}
}

func TestUpdate_EvictsOldestBeyondWindow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CalibrationWindow = 10
	e := NewCalibrationEngine(cfg)

	// Fill the window with misses at 0.6, then push them all out with
	// correct answers at the same confidence.
	for i := 0; i < 10; i++ {
		e.Update(0.6, false)
	}
	for i := 0; i < 10; i++ {
		e.Update(0.6, true)
	}

	if e.SampleCount() != 10 {
		t.Fatalf("SampleCount = %d, want 10", e.SampleCount())
	}
	if got := e.Calibrated(0.6); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Calibrated(0.6) = %.4f, want 1.0 after eviction", got)
	}
}

func TestCalibrated_Idempotent(t *testing.T) {
	e := NewCalibrationEngine(DefaultConfig())
	for i := 0; i < 20; i++ {
		e.Update(float64(i%10)/10, i%3 != 0)
	}

	first := e.Calibrated(0.7)
	for i := 0; i < 5; i++ {
		if got := e.Calibrated(0.7); got != first {
			t.Fatalf("Calibrated(0.7) changed on repeated reads: %.6f then %.6f", first, got)
		}
	}
}

func TestBinKey(t *testing.T) {
	tests := []struct {
		confidence float64
		want       int
	}{
		{0, 0},
		{0.04, 0},
		{0.05, 1},
		{0.55, 6},
		{0.74, 7},
		{1, 10},
		{-0.5, 0},
		{1.5, 10},
	}
	for _, tt := range tests {
		if got := binKey(tt.confidence); got != tt.want {
			t.Errorf("binKey(%.2f) = %d, want %d", tt.confidence, got, tt.want)
		}
	}
}
