package assessment

import "time"

// Response records a single answered question. Responses are created
// once per answer, appended to the domain history, and never mutated.
type Response struct {
	ID           string    `json:"id"`
	QuestionID   string    `json:"question_id"`
	AnswerIndex  int       `json:"answer_index"`
	Correct      bool      `json:"correct"`
	ResponseTime float64   `json:"response_time"` // seconds
	Confidence   float64   `json:"confidence"`    // 0-1, user-declared or estimated
	Timestamp    time.Time `json:"timestamp"`
}

// DomainAssessment is the aggregate state of one domain's assessment.
// It owns its response history and tag sets; engine state lives on the
// Controller driving it, so two assessments never share mutable state.
type DomainAssessment struct {
	Domain             string       `json:"domain"`
	Status             DomainStatus `json:"status"`
	CurrentDifficulty  float64      `json:"current_difficulty"`
	QuestionsAttempted int          `json:"questions_attempted"`
	QuestionsCorrect   int          `json:"questions_correct"`
	History            History      `json:"history"`
	KnowledgeGaps      []string     `json:"knowledge_gaps"`
	MasteryAreas       []string     `json:"mastery_areas"`
	AvgResponseTime    float64      `json:"avg_response_time"`
	ConfidenceQuality  float64      `json:"confidence_quality"`
	Progress           float64      `json:"progress"`
}

// NewDomainAssessment creates a fresh assessment for the named domain
// at the given starting difficulty.
func NewDomainAssessment(domain string, difficulty float64) *DomainAssessment {
	return &DomainAssessment{
		Domain:            domain,
		Status:            StatusNotStarted,
		CurrentDifficulty: difficulty,
		ConfidenceQuality: 0.5,
	}
}

// Accuracy returns correct/attempted, or 0 with no attempts.
func (a *DomainAssessment) Accuracy() float64 {
	if a.QuestionsAttempted == 0 {
		return 0
	}
	return float64(a.QuestionsCorrect) / float64(a.QuestionsAttempted)
}

// recordGap marks a knowledge tag as a gap and drops it from mastery.
// A tag is never in both sets at once.
func (a *DomainAssessment) recordGap(tag string) {
	if tag == "" {
		return
	}
	a.MasteryAreas = removeTag(a.MasteryAreas, tag)
	if !containsTag(a.KnowledgeGaps, tag) {
		a.KnowledgeGaps = append(a.KnowledgeGaps, tag)
	}
}

// recordMastery promotes a tag to the mastery set and clears its gap.
func (a *DomainAssessment) recordMastery(tag string) {
	if tag == "" {
		return
	}
	a.KnowledgeGaps = removeTag(a.KnowledgeGaps, tag)
	if !containsTag(a.MasteryAreas, tag) {
		a.MasteryAreas = append(a.MasteryAreas, tag)
	}
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func removeTag(tags []string, tag string) []string {
	out := tags[:0]
	for _, t := range tags {
		if t != tag {
			out = append(out, t)
		}
	}
	return out
}
