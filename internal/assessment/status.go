package assessment

// DomainStatus is a domain assessment's position in its lifecycle.
// Transitions are monotonic: NOT_STARTED → IN_PROGRESS → one terminal
// state. A terminal assessment never re-enters IN_PROGRESS without an
// explicit restart by the orchestration layer.
type DomainStatus string

const (
	StatusNotStarted DomainStatus = "not_started"
	StatusInProgress DomainStatus = "in_progress"
	StatusCompleted  DomainStatus = "completed"
	StatusMastered   DomainStatus = "mastered"
	StatusStruggling DomainStatus = "struggling"
)

// Terminal reports whether the status is final.
func (s DomainStatus) Terminal() bool {
	switch s {
	case StatusCompleted, StatusMastered, StatusStruggling:
		return true
	}
	return false
}

// Classify maps a final accuracy to a terminal status.
func Classify(accuracy float64, cfg Config) DomainStatus {
	switch {
	case accuracy >= cfg.MasteryThreshold:
		return StatusMastered
	case accuracy >= cfg.CompletionThreshold:
		return StatusCompleted
	default:
		return StatusStruggling
	}
}

// shouldStop reports whether the domain assessment is over: either the
// progress score has saturated, or enough attempts have accumulated to
// recognize an extreme outcome early.
func shouldStop(a *DomainAssessment, progress float64, cfg Config) bool {
	if progress >= 100 {
		return true
	}
	if a.QuestionsAttempted < cfg.MinQuestions {
		return false
	}
	accuracy := a.Accuracy()
	if accuracy >= cfg.MasteryThreshold &&
		a.CurrentDifficulty >= cfg.EarlyMasteryDifficulty &&
		a.QuestionsAttempted >= cfg.EarlyStopAttempts {
		return true
	}
	if accuracy <= cfg.StruggleThreshold &&
		a.CurrentDifficulty <= cfg.EarlyStruggleDifficulty &&
		a.QuestionsAttempted >= cfg.EarlyStopAttempts {
		return true
	}
	return false
}
