package assessment

import "fmt"

// Config holds every tunable of the adaptive assessment pipeline.
// All thresholds, window sizes, and bonus rates live here so behavior
// can be adjusted without code changes. Use DefaultConfig as the
// starting point and Validate before wiring a Controller.
type Config struct {
	// Difficulty adaptation.
	InitialDifficulty float64 // starting difficulty when the domain has none (1-100)
	MinDifficulty     float64 // lower difficulty clamp
	MaxDifficulty     float64 // upper difficulty clamp
	BaseStep          float64 // difficulty points added/subtracted per answer
	StreakLength      int     // streak length that triggers amplification
	StreakMultiplier  float64 // base-step multiplier on a qualifying streak
	MaxAdjustment     float64 // cap on a single total difficulty adjustment
	PerformanceWindow int     // rolling window of recent outcomes and times
	CorrelationWindow int     // rolling window for confidence/accuracy correlation

	// Confidence impact on difficulty.
	ConfidenceWeight         float64 // difficulty points per unit of calibrated confidence
	MatureCalibrationSamples int     // calibration history size considered well-populated
	CalibrationBonus         float64 // impact bonus when calibration is well-populated
	StrongCorrelation        float64 // |Pearson r| considered a strong signal
	CorrelationBonus         float64 // impact bonus on strong confidence/accuracy correlation
	AgreementBonus           float64 // impact bonus when confidence, timing and outcome agree
	MaxConfidenceImpact      float64 // cap on the confidence-derived adjustment

	// Response timing.
	BaseExpectedSeconds float64 // expected answer time at difficulty 0
	DifficultyTimeScale float64 // extra expected seconds at difficulty 100
	FastRatio           float64 // fraction of expected time considered fast
	SlowRatio           float64 // multiple of expected time considered slow

	// Stability factor.
	ErraticChangeRate float64 // outcome change-rate above which adjustments are dampened
	StableChangeRate  float64 // outcome change-rate below which adjustments are amplified
	ErraticDamping    float64 // multiplier applied when performance is erratic
	StableAmplifier   float64 // multiplier applied when performance is very stable
	MinStabilityCount int     // window samples required before the factor applies

	// Confidence calibration.
	CalibrationWindow     int // FIFO history capacity for the calibration engine
	MinCalibrationSamples int // total samples required before calibration applies
	MinBinSamples         int // samples required before a bin contributes

	// Confidence quality.
	QualityWindow       int     // FIFO history capacity for quality metrics
	MinQualitySamples   int     // samples required before a real score is computed
	OverconfidenceLevel float64 // confidence above which a miss counts as overconfident

	// Progress accumulation.
	BasePoints       float64 // points earned for a plain correct answer
	BonusRate        float64 // scale for the difficulty and confidence bonuses
	QualityBonusRate float64 // scale for the confidence-quality bonus
	SpeedBonus       float64 // base-point fraction awarded for a fast correct answer
	SpeedFraction    float64 // fraction of expected time that earns the speed bonus
	HonestyReward    float64 // points for a miss with honestly low confidence
	HonestyThreshold float64 // confidence below which a miss earns the honesty reward
	MaxIncrementPct  float64 // cap on progress earned by a single answer

	// Domain completion.
	TargetQuestions   int     // question budget a domain's progress is normalized against
	MinQuestions      int     // attempts required before early stopping is considered
	EarlyStopAttempts int     // attempts required by the extreme early-stop conditions
	EarlyMasteryDifficulty  float64 // difficulty floor for an early mastered stop
	EarlyStruggleDifficulty float64 // difficulty ceiling for an early struggling stop

	// Terminal classification.
	MasteryThreshold    float64 // accuracy at or above which a domain is mastered
	CompletionThreshold float64 // accuracy at or above which a domain is completed
	StruggleThreshold   float64 // accuracy at or below which early struggling stops apply
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		InitialDifficulty: 50,
		MinDifficulty:     1,
		MaxDifficulty:     100,
		BaseStep:          5,
		StreakLength:      3,
		StreakMultiplier:  1.2,
		MaxAdjustment:     15,
		PerformanceWindow: 10,
		CorrelationWindow: 50,

		ConfidenceWeight:         3,
		MatureCalibrationSamples: 30,
		CalibrationBonus:         0.1,
		StrongCorrelation:        0.5,
		CorrelationBonus:         0.1,
		AgreementBonus:           0.15,
		MaxConfidenceImpact:      5,

		BaseExpectedSeconds: 30,
		DifficultyTimeScale: 30,
		FastRatio:           0.7,
		SlowRatio:           1.5,

		ErraticChangeRate: 0.6,
		StableChangeRate:  0.2,
		ErraticDamping:    0.7,
		StableAmplifier:   1.3,
		MinStabilityCount: 5,

		CalibrationWindow:     100,
		MinCalibrationSamples: 10,
		MinBinSamples:         3,

		QualityWindow:       100,
		MinQualitySamples:   10,
		OverconfidenceLevel: 0.7,

		BasePoints:       10,
		BonusRate:        0.5,
		QualityBonusRate: 0.1,
		SpeedBonus:       0.2,
		SpeedFraction:    0.7,
		HonestyReward:    2,
		HonestyThreshold: 0.4,
		MaxIncrementPct:  20,

		TargetQuestions:   15,
		MinQuestions:      10,
		EarlyStopAttempts: 10,
		EarlyMasteryDifficulty:  80,
		EarlyStruggleDifficulty: 30,

		MasteryThreshold:    0.85,
		CompletionThreshold: 0.40,
		StruggleThreshold:   0.40,
	}
}

// Validate rejects configurations that would make the pipeline
// misbehave. It is meant to run once at startup.
func (c Config) Validate() error {
	if c.MinDifficulty >= c.MaxDifficulty {
		return fmt.Errorf("min difficulty %.0f must be below max difficulty %.0f", c.MinDifficulty, c.MaxDifficulty)
	}
	if c.InitialDifficulty < c.MinDifficulty || c.InitialDifficulty > c.MaxDifficulty {
		return fmt.Errorf("initial difficulty %.0f outside [%.0f, %.0f]", c.InitialDifficulty, c.MinDifficulty, c.MaxDifficulty)
	}
	if c.BaseStep <= 0 {
		return fmt.Errorf("base step must be positive, got %.2f", c.BaseStep)
	}
	if c.MaxAdjustment <= 0 {
		return fmt.Errorf("max adjustment must be positive, got %.2f", c.MaxAdjustment)
	}
	if c.PerformanceWindow <= 0 || c.CorrelationWindow <= 0 {
		return fmt.Errorf("rolling windows must be positive")
	}
	if c.CalibrationWindow <= 0 || c.QualityWindow <= 0 {
		return fmt.Errorf("history capacities must be positive")
	}
	if c.MinBinSamples <= 0 {
		return fmt.Errorf("min bin samples must be positive, got %d", c.MinBinSamples)
	}
	if c.FastRatio <= 0 || c.SlowRatio <= c.FastRatio {
		return fmt.Errorf("timing ratios must satisfy 0 < fast < slow, got fast=%.2f slow=%.2f", c.FastRatio, c.SlowRatio)
	}
	if c.StableChangeRate >= c.ErraticChangeRate {
		return fmt.Errorf("stable change-rate %.2f must be below erratic change-rate %.2f", c.StableChangeRate, c.ErraticChangeRate)
	}
	if c.BasePoints <= 0 || c.TargetQuestions <= 0 {
		return fmt.Errorf("progress base points and target questions must be positive")
	}
	if c.MaxIncrementPct <= 0 || c.MaxIncrementPct > 100 {
		return fmt.Errorf("max increment must be in (0, 100], got %.1f", c.MaxIncrementPct)
	}
	if c.StruggleThreshold >= c.MasteryThreshold {
		return fmt.Errorf("struggle threshold %.2f must be below mastery threshold %.2f", c.StruggleThreshold, c.MasteryThreshold)
	}
	if c.CompletionThreshold > c.MasteryThreshold {
		return fmt.Errorf("completion threshold %.2f must not exceed mastery threshold %.2f", c.CompletionThreshold, c.MasteryThreshold)
	}
	return nil
}

// ExpectedSeconds returns the expected answer time at the given difficulty.
func (c Config) ExpectedSeconds(difficulty float64) float64 {
	return c.BaseExpectedSeconds + difficulty/100*c.DifficultyTimeScale
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
