package assessment

import "math"

// outcome is one entry in the difficulty controller's rolling window.
type outcome struct {
	correct      bool
	responseTime float64
}

// DifficultyController adapts question difficulty to the user's
// performance. A single correct/incorrect signal is too noisy to drive
// difficulty directly, so each update blends the outcome, calibrated
// self-reported confidence, response timing, and recent volatility.
type DifficultyController struct {
	cfg         Config
	calibration *CalibrationEngine

	difficulty           float64
	window               []outcome
	consecutiveCorrect   int
	consecutiveIncorrect int
	correlation          *correlationWindow
}

// NewDifficultyController creates a controller seeded at the given
// difficulty. The calibration engine supplies the calibrated
// confidence used for the confidence-derived adjustment.
func NewDifficultyController(cfg Config, start float64, calibration *CalibrationEngine) *DifficultyController {
	return &DifficultyController{
		cfg:         cfg,
		calibration: calibration,
		difficulty:  clamp(start, cfg.MinDifficulty, cfg.MaxDifficulty),
		correlation: newCorrelationWindow(cfg.CorrelationWindow),
	}
}

// Difficulty returns the current difficulty value.
func (c *DifficultyController) Difficulty() float64 {
	return c.difficulty
}

// ExpectedSeconds returns the expected answer time at the current difficulty.
func (c *DifficultyController) ExpectedSeconds() float64 {
	return c.cfg.ExpectedSeconds(c.difficulty)
}

// Update consumes one answered question and returns the new difficulty.
// The total adjustment is capped so no single answer can swing
// difficulty by more than Config.MaxAdjustment points.
func (c *DifficultyController) Update(correct bool, responseTime, confidence float64) float64 {
	c.push(correct, responseTime)
	c.correlation.push(confidence, correct)

	if correct {
		c.consecutiveCorrect++
		c.consecutiveIncorrect = 0
	} else {
		c.consecutiveIncorrect++
		c.consecutiveCorrect = 0
	}

	base := c.cfg.BaseStep
	streak := c.consecutiveCorrect
	if !correct {
		base = -base
		streak = c.consecutiveIncorrect
	}
	if streak >= c.cfg.StreakLength {
		base *= c.cfg.StreakMultiplier
	}

	expected := c.ExpectedSeconds()
	adjustment := base +
		c.confidenceImpact(correct, confidence, responseTime, expected) +
		c.timingAdjustment(correct, responseTime, expected)
	adjustment *= c.stabilityFactor()
	adjustment = clamp(adjustment, -c.cfg.MaxAdjustment, c.cfg.MaxAdjustment)

	c.difficulty = clamp(c.difficulty+adjustment, c.cfg.MinDifficulty, c.cfg.MaxDifficulty)
	return c.difficulty
}

// EstimateConfidence computes a system-side confidence value for use
// when the UI did not collect one. It must be called before Update so
// the streak counters still describe the previous answers.
func (c *DifficultyController) EstimateConfidence(correct bool, responseTime float64) float64 {
	est := 0.5
	if correct {
		est += 0.3
	} else {
		est -= 0.2
	}

	expected := c.ExpectedSeconds()
	if expected > 0 {
		ratio := responseTime / expected
		switch {
		case ratio < c.cfg.FastRatio:
			est += 0.05
		case ratio > c.cfg.SlowRatio:
			est -= 0.05
		}
	}

	if correct && c.consecutiveCorrect >= 2 {
		est += 0.05
	}
	if !correct && c.consecutiveIncorrect >= 2 {
		est -= 0.05
	}

	return clamp(est, 0.1, 0.9)
}

func (c *DifficultyController) push(correct bool, responseTime float64) {
	c.window = append(c.window, outcome{correct: correct, responseTime: responseTime})
	if len(c.window) > c.cfg.PerformanceWindow {
		c.window = c.window[len(c.window)-c.cfg.PerformanceWindow:]
	}
}

// confidenceImpact converts calibrated confidence into difficulty
// points: positive for a correct answer, negative for a miss. The
// signal is scaled up when the calibration history is well populated,
// when stated confidence actually correlates with accuracy, and when
// confidence, timing, and outcome tell a coherent story.
func (c *DifficultyController) confidenceImpact(correct bool, confidence, responseTime, expected float64) float64 {
	impact := c.calibration.Calibrated(confidence) * c.cfg.ConfidenceWeight
	if !correct {
		impact = -impact
	}

	if c.calibration.SampleCount() >= c.cfg.MatureCalibrationSamples {
		impact *= 1 + c.cfg.CalibrationBonus
	}
	if r := c.correlation.coefficient(); math.Abs(r) >= c.cfg.StrongCorrelation {
		impact *= 1 + c.cfg.CorrelationBonus
	}

	fast := responseTime < c.cfg.FastRatio*expected
	slow := responseTime > c.cfg.SlowRatio*expected
	highConf := confidence > c.cfg.OverconfidenceLevel
	if (highConf && correct && fast) || (highConf && !correct && slow) {
		impact *= 1 + c.cfg.AgreementBonus
	}

	return clamp(impact, -c.cfg.MaxConfidenceImpact, c.cfg.MaxConfidenceImpact)
}

// timingAdjustment rewards fast correct answers and penalizes fast
// misses; slow answers pull mildly in the opposite direction.
func (c *DifficultyController) timingAdjustment(correct bool, responseTime, expected float64) float64 {
	fast := responseTime < c.cfg.FastRatio*expected
	slow := responseTime > c.cfg.SlowRatio*expected
	switch {
	case correct && fast:
		return 2
	case correct && slow:
		return -1
	case !correct && fast:
		return -2
	case !correct && slow:
		return 1
	}
	return 0
}

// stabilityFactor dampens adjustments when recent outcomes flip
// erratically and amplifies them when performance is very stable.
func (c *DifficultyController) stabilityFactor() float64 {
	if len(c.window) < c.cfg.MinStabilityCount {
		return 1
	}
	changes := 0
	for i := 1; i < len(c.window); i++ {
		if c.window[i].correct != c.window[i-1].correct {
			changes++
		}
	}
	rate := float64(changes) / float64(len(c.window)-1)
	switch {
	case rate > c.cfg.ErraticChangeRate:
		return c.cfg.ErraticDamping
	case rate < c.cfg.StableChangeRate:
		return c.cfg.StableAmplifier
	}
	return 1
}

// correlationWindow tracks (confidence, outcome) pairs over a rolling
// window and computes their Pearson correlation coefficient.
type correlationWindow struct {
	capacity    int
	confidences []float64
	outcomes    []float64
}

func newCorrelationWindow(capacity int) *correlationWindow {
	return &correlationWindow{capacity: capacity}
}

func (w *correlationWindow) push(confidence float64, correct bool) {
	out := 0.0
	if correct {
		out = 1.0
	}
	w.confidences = append(w.confidences, clamp(confidence, 0, 1))
	w.outcomes = append(w.outcomes, out)
	if len(w.confidences) > w.capacity {
		w.confidences = w.confidences[len(w.confidences)-w.capacity:]
		w.outcomes = w.outcomes[len(w.outcomes)-w.capacity:]
	}
}

// coefficient returns the Pearson correlation between confidence and
// correctness, or 0 when either series is degenerate.
func (w *correlationWindow) coefficient() float64 {
	n := len(w.confidences)
	if n < 2 {
		return 0
	}

	meanC, meanO := 0.0, 0.0
	for i := range w.confidences {
		meanC += w.confidences[i]
		meanO += w.outcomes[i]
	}
	meanC /= float64(n)
	meanO /= float64(n)

	var cov, varC, varO float64
	for i := range w.confidences {
		dc := w.confidences[i] - meanC
		do := w.outcomes[i] - meanO
		cov += dc * do
		varC += dc * dc
		varO += do * do
	}
	if varC == 0 || varO == 0 {
		return 0
	}
	return cov / math.Sqrt(varC*varO)
}
