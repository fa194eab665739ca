package assessment

import "math"

// ProgressTracker converts answered questions into a bounded [0,100]
// domain progress score. Correct answers earn base points plus
// difficulty, confidence, quality, and speed bonuses; a miss earns
// nothing unless the user honestly reported low confidence.
type ProgressTracker struct {
	cfg   Config
	total float64
}

// NewProgressTracker creates a tracker at zero progress.
func NewProgressTracker(cfg Config) *ProgressTracker {
	return &ProgressTracker{cfg: cfg}
}

// Total returns the accumulated progress, always in [0,100].
func (p *ProgressTracker) Total() float64 {
	return p.total
}

// Record converts one answer into percentage points, accumulates them,
// and returns the increment actually applied. The increment is
// normalized against the domain's question budget and capped so no
// single answer can finish a domain too quickly.
func (p *ProgressTracker) Record(correct bool, confidence, questionDifficulty, responseTime, qualityScore, expectedSeconds float64) float64 {
	points := 0.0
	base := p.cfg.BasePoints

	if correct {
		points = base
		points += questionDifficulty / 100 * p.cfg.BonusRate * base
		points += clamp(confidence, 0, 1) * p.cfg.BonusRate * base
		points += clamp(qualityScore, 0, 1) * p.cfg.QualityBonusRate * base
		if expectedSeconds > 0 && responseTime < p.cfg.SpeedFraction*expectedSeconds {
			points += p.cfg.SpeedBonus * base
		}
	} else if confidence < p.cfg.HonestyThreshold {
		// Reward accurate self-assessment of uncertainty on a miss.
		points = p.cfg.HonestyReward
	}

	pct := points / (base * float64(p.cfg.TargetQuestions)) * 100
	pct = math.Min(pct, p.cfg.MaxIncrementPct)

	applied := math.Min(pct, 100-p.total)
	p.total += applied
	return pct
}
