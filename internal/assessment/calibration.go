package assessment

import "math"

// calibrationSample is one (confidence, outcome) observation.
type calibrationSample struct {
	confidence float64
	correct    bool
}

// binStats holds the empirical record for one confidence bin.
type binStats struct {
	count   int
	correct int
}

func (b binStats) accuracy() float64 {
	if b.count == 0 {
		return 0
	}
	return float64(b.correct) / float64(b.count)
}

// CalibrationEngine converts raw self-reported confidence into an
// empirically calibrated probability of correctness. Observations are
// kept in a FIFO history capped at Config.CalibrationWindow and binned
// by confidence rounded to one decimal; the curve is rebuilt from the
// full history on every update.
type CalibrationEngine struct {
	cfg     Config
	history []calibrationSample
	bins    map[int]binStats
}

// NewCalibrationEngine creates an empty engine.
func NewCalibrationEngine(cfg Config) *CalibrationEngine {
	return &CalibrationEngine{
		cfg:  cfg,
		bins: make(map[int]binStats),
	}
}

// Update appends an observation, evicting the oldest once the window
// is full, and rebuilds the calibration curve.
func (e *CalibrationEngine) Update(confidence float64, correct bool) {
	e.history = append(e.history, calibrationSample{
		confidence: clamp(confidence, 0, 1),
		correct:    correct,
	})
	if len(e.history) > e.cfg.CalibrationWindow {
		e.history = e.history[len(e.history)-e.cfg.CalibrationWindow:]
	}
	e.rebuild()
}

// SampleCount returns the number of observations currently in the window.
func (e *CalibrationEngine) SampleCount() int {
	return len(e.history)
}

// Calibrated returns the empirical accuracy for the bin containing the
// raw confidence. An unpopulated bin is interpolated linearly between
// the nearest populated bins, clamping to the boundary bin outside the
// populated range. Below the minimum sample count the raw value is
// returned unchanged.
func (e *CalibrationEngine) Calibrated(raw float64) float64 {
	if len(e.history) < e.cfg.MinCalibrationSamples {
		return raw
	}

	key := binKey(raw)
	if b, ok := e.populated(key); ok {
		return b.accuracy()
	}

	lo, hasLo := e.nearestBelow(key)
	hi, hasHi := e.nearestAbove(key)
	switch {
	case hasLo && hasHi:
		loAcc := e.bins[lo].accuracy()
		hiAcc := e.bins[hi].accuracy()
		t := float64(key-lo) / float64(hi-lo)
		return loAcc + t*(hiAcc-loAcc)
	case hasLo:
		return e.bins[lo].accuracy()
	case hasHi:
		return e.bins[hi].accuracy()
	default:
		return raw
	}
}

func (e *CalibrationEngine) rebuild() {
	bins := make(map[int]binStats, len(e.bins))
	for _, s := range e.history {
		key := binKey(s.confidence)
		b := bins[key]
		b.count++
		if s.correct {
			b.correct++
		}
		bins[key] = b
	}
	e.bins = bins
}

// populated returns the bin only if it has enough samples to be
// trusted over single-sample noise.
func (e *CalibrationEngine) populated(key int) (binStats, bool) {
	b, ok := e.bins[key]
	if !ok || b.count < e.cfg.MinBinSamples {
		return binStats{}, false
	}
	return b, true
}

func (e *CalibrationEngine) nearestBelow(key int) (int, bool) {
	for k := key - 1; k >= 0; k-- {
		if _, ok := e.populated(k); ok {
			return k, true
		}
	}
	return 0, false
}

func (e *CalibrationEngine) nearestAbove(key int) (int, bool) {
	for k := key + 1; k <= 10; k++ {
		if _, ok := e.populated(k); ok {
			return k, true
		}
	}
	return 0, false
}

// binKey maps a confidence value to its 0.1-granularity bin (0-10).
func binKey(confidence float64) int {
	return int(math.Round(clamp(confidence, 0, 1) * 10))
}
