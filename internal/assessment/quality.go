package assessment

import "math"

// neutralQuality is returned whenever there is too little data to
// judge a user's confidence reporting.
const neutralQuality = 0.5

// QualityMetrics scores how well a user's stated confidence matches
// their actual correctness pattern. It keeps its own FIFO history,
// independent of the calibration engine's.
type QualityMetrics struct {
	cfg     Config
	history []calibrationSample
}

// NewQualityMetrics creates an empty metrics tracker.
func NewQualityMetrics(cfg Config) *QualityMetrics {
	return &QualityMetrics{cfg: cfg}
}

// Add appends an observation, evicting the oldest beyond the window.
func (m *QualityMetrics) Add(confidence float64, correct bool) {
	m.history = append(m.history, calibrationSample{
		confidence: clamp(confidence, 0, 1),
		correct:    correct,
	})
	if len(m.history) > m.cfg.QualityWindow {
		m.history = m.history[len(m.history)-m.cfg.QualityWindow:]
	}
}

// SampleCount returns the number of observations currently tracked.
func (m *QualityMetrics) SampleCount() int {
	return len(m.history)
}

// Score blends calibration error, overconfidence rate, and consistency
// into a single quality value in [0,1]. With fewer than the minimum
// samples there is nothing meaningful to measure and the neutral
// default is returned.
func (m *QualityMetrics) Score() float64 {
	if len(m.history) < m.cfg.MinQualitySamples {
		return neutralQuality
	}
	score := 0.4*(1-m.calibrationError()) +
		0.4*(1-m.overconfidenceRate()) +
		0.2*m.consistency()
	return clamp(score, 0, 1)
}

// calibrationError is the sample-weighted mean absolute difference
// between each bin's nominal confidence and its observed accuracy.
// Bins below the minimum sample count are excluded.
func (m *QualityMetrics) calibrationError() float64 {
	bins := make(map[int]binStats)
	for _, s := range m.history {
		key := binKey(s.confidence)
		b := bins[key]
		b.count++
		if s.correct {
			b.correct++
		}
		bins[key] = b
	}

	totalErr := 0.0
	totalWeight := 0
	for key, b := range bins {
		if b.count < m.cfg.MinBinSamples {
			continue
		}
		nominal := float64(key) / 10
		totalErr += math.Abs(nominal-b.accuracy()) * float64(b.count)
		totalWeight += b.count
	}
	if totalWeight == 0 {
		return 0
	}
	return totalErr / float64(totalWeight)
}

// overconfidenceRate is the fraction of high-confidence responses that
// were nonetheless incorrect.
func (m *QualityMetrics) overconfidenceRate() float64 {
	highConf := 0
	highConfWrong := 0
	for _, s := range m.history {
		if s.confidence > m.cfg.OverconfidenceLevel {
			highConf++
			if !s.correct {
				highConfWrong++
			}
		}
	}
	if highConf == 0 {
		return 0
	}
	return float64(highConfWrong) / float64(highConf)
}

// consistency rewards confidence values that cluster tightly within
// each outcome group. Requires at least MinBinSamples of each outcome;
// otherwise the neutral default is used.
func (m *QualityMetrics) consistency() float64 {
	var correct, incorrect []float64
	for _, s := range m.history {
		if s.correct {
			correct = append(correct, s.confidence)
		} else {
			incorrect = append(incorrect, s.confidence)
		}
	}
	if len(correct) < m.cfg.MinBinSamples || len(incorrect) < m.cfg.MinBinSamples {
		return neutralQuality
	}
	avgVariance := (variance(correct) + variance(incorrect)) / 2
	return 1 / (1 + avgVariance)
}

func variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(values))
}
