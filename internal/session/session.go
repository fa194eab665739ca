package session

import (
	"fmt"
	"time"

	"github.com/abhisek/acumen/internal/assessment"
)

// Session holds one assessment run across several knowledge domains.
// Domains are taken in order: a domain unlocks only after all earlier
// domains have reached a terminal status. Each domain assessment owns
// its own controller state; the session never shares engines between
// domains.
type Session struct {
	Topic       string                         `json:"topic"`
	Plans       []DomainPlan                   `json:"plans"`
	Assessments []*assessment.DomainAssessment `json:"assessments"`
	StartedAt   time.Time                      `json:"started_at"`
}

// New creates a session with one fresh assessment per planned domain,
// seeded at the plan's estimated difficulty.
func New(topic string, plans []DomainPlan) *Session {
	assessments := make([]*assessment.DomainAssessment, len(plans))
	for i, p := range plans {
		assessments[i] = assessment.NewDomainAssessment(p.Name, float64(p.EstimatedDifficulty))
	}
	return &Session{
		Topic:       topic,
		Plans:       plans,
		Assessments: assessments,
		StartedAt:   time.Now(),
	}
}

// CanAccess reports whether the domain at index may be assessed now.
// The first domain is always available; later domains require every
// earlier domain to have finished.
func (s *Session) CanAccess(index int) bool {
	if index < 0 || index >= len(s.Assessments) {
		return false
	}
	for i := 0; i < index; i++ {
		if !s.Assessments[i].Status.Terminal() {
			return false
		}
	}
	return true
}

// Domain returns the assessment at index, enforcing sequential access.
func (s *Session) Domain(index int) (*assessment.DomainAssessment, error) {
	if index < 0 || index >= len(s.Assessments) {
		return nil, fmt.Errorf("domain index %d out of range (%d domains)", index, len(s.Assessments))
	}
	if !s.CanAccess(index) {
		return nil, fmt.Errorf("domain %q is locked until earlier domains finish", s.Assessments[index].Domain)
	}
	return s.Assessments[index], nil
}

// NextDomain returns the index of the first unfinished domain, or
// false when every domain is terminal.
func (s *Session) NextDomain() (int, bool) {
	for i, a := range s.Assessments {
		if !a.Status.Terminal() {
			return i, true
		}
	}
	return 0, false
}

// Complete reports whether every domain has reached a terminal status.
func (s *Session) Complete() bool {
	_, more := s.NextDomain()
	return !more
}

// OverallScore is the session-wide accuracy as a percentage.
func (s *Session) OverallScore() float64 {
	attempted, correct := 0, 0
	for _, a := range s.Assessments {
		attempted += a.QuestionsAttempted
		correct += a.QuestionsCorrect
	}
	if attempted == 0 {
		return 0
	}
	return float64(correct) / float64(attempted) * 100
}

// Elapsed returns the wall-clock duration since the session started.
func (s *Session) Elapsed() time.Duration {
	return time.Since(s.StartedAt)
}
