package assessment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/acumen/internal/questiongen"
)

// mastery promotion looks at the last few responses: a tag is promoted
// when at least masteryRecentHits of the last masteryRecentWindow
// answers were correct.
const (
	masteryRecentWindow = 5
	masteryRecentHits   = 3
)

// AnswerResult is what SubmitAnswer reports back to the caller.
type AnswerResult struct {
	Correct           bool
	Explanation       string
	Progress          float64
	Difficulty        float64
	ConfidenceQuality float64
	DomainComplete    bool
	FinalStatus       DomainStatus // set only when DomainComplete
}

// Controller runs one domain's adaptive assessment. Each controller
// owns its own engine instances seeded from the assessment it drives;
// nothing is shared between domains, so no synchronization is needed.
// A controller is not safe for concurrent use.
type Controller struct {
	cfg        Config
	assessment *DomainAssessment
	gen        questiongen.Generator

	calibration *CalibrationEngine
	quality     *QualityMetrics
	difficulty  *DifficultyController
	progress    *ProgressTracker

	pending *questiongen.Question
	askedAt time.Time
	started bool

	// now is injectable for deterministic tests.
	now func() time.Time
}

// NewController creates a controller for the given assessment. The
// configuration is validated once here so a bad tuning fails fast.
func NewController(a *DomainAssessment, gen questiongen.Generator, cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Controller{
		cfg:        cfg,
		assessment: a,
		gen:        gen,
		now:        time.Now,
	}, nil
}

// Assessment returns the domain assessment this controller drives.
func (c *Controller) Assessment() *DomainAssessment {
	return c.assessment
}

// Start resets the engines, seeds difficulty from the assessment, and
// moves the domain to IN_PROGRESS. Calling Start on a terminal domain
// is an explicit restart: history and counters are kept, engines begin
// fresh at the recorded difficulty.
func (c *Controller) Start() {
	start := c.assessment.CurrentDifficulty
	if start == 0 {
		start = c.cfg.InitialDifficulty
	}

	c.calibration = NewCalibrationEngine(c.cfg)
	c.quality = NewQualityMetrics(c.cfg)
	c.difficulty = NewDifficultyController(c.cfg, start, c.calibration)
	c.progress = NewProgressTracker(c.cfg)
	c.pending = nil
	c.started = true

	c.assessment.CurrentDifficulty = c.difficulty.Difficulty()
	c.assessment.Status = StatusInProgress
}

// NextQuestion requests a question from the generator at the current
// difficulty. A generator failure leaves all recorded state untouched;
// the caller may simply retry.
func (c *Controller) NextQuestion(ctx context.Context) (*questiongen.Question, error) {
	if !c.started {
		return nil, ErrNotStarted
	}
	if c.assessment.Status.Terminal() {
		return nil, ErrDomainComplete
	}

	q, err := c.gen.Generate(ctx, questiongen.GenerateInput{
		Domain:        c.assessment.Domain,
		Difficulty:    int(c.difficulty.Difficulty() + 0.5),
		KnowledgeGaps: c.assessment.KnowledgeGaps,
	})
	if err != nil {
		return nil, err
	}

	c.pending = q
	c.askedAt = c.now()
	return q, nil
}

// SubmitAnswer validates the answer against the pending question and
// runs the full update pipeline: history, calibration, quality,
// difficulty, progress, tag bookkeeping, and the completion check.
// Validation failures happen before any mutation.
func (c *Controller) SubmitAnswer(answerIndex int, confidence *float64) (*AnswerResult, error) {
	if !c.started {
		return nil, ErrNotStarted
	}
	if c.assessment.Status.Terminal() {
		return nil, ErrDomainComplete
	}
	q := c.pending
	if q == nil {
		return nil, ErrNoPendingQuestion
	}
	if answerIndex < 0 || answerIndex >= len(q.Options) {
		return nil, &InvalidAnswerError{Index: answerIndex, Options: len(q.Options)}
	}

	correct := answerIndex == q.CorrectIndex
	responseTime := c.now().Sub(c.askedAt).Seconds()
	if responseTime < 0 {
		responseTime = 0
	}

	conf := 0.0
	if confidence != nil {
		conf = clamp(*confidence, 0, 1)
	} else {
		// Streak counters still describe the previous answers here.
		conf = c.difficulty.EstimateConfidence(correct, responseTime)
	}

	c.pending = nil
	c.assessment.History.Append(Response{
		ID:           uuid.NewString(),
		QuestionID:   q.ID,
		AnswerIndex:  answerIndex,
		Correct:      correct,
		ResponseTime: responseTime,
		Confidence:   conf,
		Timestamp:    c.now(),
	})
	c.assessment.QuestionsAttempted++
	if correct {
		c.assessment.QuestionsCorrect++
	}

	c.calibration.Update(conf, correct)
	c.quality.Add(conf, correct)
	c.assessment.CurrentDifficulty = c.difficulty.Update(correct, responseTime, conf)

	qualityScore := c.quality.Score()
	c.assessment.ConfidenceQuality = qualityScore

	expected := float64(q.EstimatedSeconds)
	if expected <= 0 {
		expected = c.cfg.ExpectedSeconds(float64(q.Difficulty))
	}
	c.progress.Record(correct, conf, float64(q.Difficulty), responseTime, qualityScore, expected)
	c.assessment.Progress = c.progress.Total()

	c.updateTags(q.KnowledgeTag, correct)
	if n := c.assessment.History.Len(); n > 0 {
		c.assessment.AvgResponseTime = c.assessment.History.TotalTime() / float64(n)
	}

	result := &AnswerResult{
		Correct:           correct,
		Explanation:       q.Explanation,
		Progress:          c.assessment.Progress,
		Difficulty:        c.assessment.CurrentDifficulty,
		ConfidenceQuality: qualityScore,
	}

	if shouldStop(c.assessment, c.progress.Total(), c.cfg) {
		c.assessment.Status = Classify(c.assessment.Accuracy(), c.cfg)
		result.DomainComplete = true
		result.FinalStatus = c.assessment.Status
	}

	return result, nil
}

// Progress reports (questions attempted, target, accuracy).
func (c *Controller) Progress() (attempted, target int, accuracy float64) {
	return c.assessment.QuestionsAttempted, c.cfg.TargetQuestions, c.assessment.Accuracy()
}

// updateTags maintains the knowledge-gap and mastery-area sets. A miss
// records a gap; a correct answer promotes the tag once the recent
// record supports it.
func (c *Controller) updateTags(tag string, correct bool) {
	if !correct {
		c.assessment.recordGap(tag)
		return
	}
	if c.assessment.History.RecentCorrect(masteryRecentWindow) >= masteryRecentHits {
		c.assessment.recordMastery(tag)
	}
}
