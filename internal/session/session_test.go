package session

import (
	"testing"

	"github.com/abhisek/acumen/internal/assessment"
)

func threeDomainSession() *Session {
	return New("kubernetes", []DomainPlan{
		{Name: "Architecture", Description: "Control plane and node components", EstimatedDifficulty: 40},
		{Name: "Workloads", Description: "Pods, deployments, and scheduling", EstimatedDifficulty: 55},
		{Name: "Networking", Description: "Services, ingress, and DNS", EstimatedDifficulty: 65},
	})
}

func TestNew_SeedsAssessmentsFromPlans(t *testing.T) {
	s := threeDomainSession()

	if len(s.Assessments) != 3 {
		t.Fatalf("Assessments = %d, want 3", len(s.Assessments))
	}
	for i, a := range s.Assessments {
		if a.Domain != s.Plans[i].Name {
			t.Errorf("domain %d = %q, want %q", i, a.Domain, s.Plans[i].Name)
		}
		if a.CurrentDifficulty != float64(s.Plans[i].EstimatedDifficulty) {
			t.Errorf("domain %d difficulty = %.0f, want %d", i, a.CurrentDifficulty, s.Plans[i].EstimatedDifficulty)
		}
		if a.Status != assessment.StatusNotStarted {
			t.Errorf("domain %d status = %s, want %s", i, a.Status, assessment.StatusNotStarted)
		}
	}
}

func TestSession_SequentialAccess(t *testing.T) {
	s := threeDomainSession()

	if !s.CanAccess(0) {
		t.Error("first domain must always be accessible")
	}
	if s.CanAccess(1) || s.CanAccess(2) {
		t.Error("later domains accessible before earlier ones finish")
	}
	if s.CanAccess(-1) || s.CanAccess(3) {
		t.Error("out-of-range indices must never be accessible")
	}

	if _, err := s.Domain(1); err == nil {
		t.Error("Domain(1) must fail while domain 0 is unfinished")
	}

	s.Assessments[0].Status = assessment.StatusMastered
	if !s.CanAccess(1) {
		t.Error("second domain locked after the first finished")
	}
	if s.CanAccess(2) {
		t.Error("third domain unlocked too early")
	}
	if _, err := s.Domain(1); err != nil {
		t.Errorf("Domain(1): %v", err)
	}
}

func TestSession_NextDomainAndComplete(t *testing.T) {
	s := threeDomainSession()

	idx, more := s.NextDomain()
	if !more || idx != 0 {
		t.Fatalf("NextDomain = (%d, %v), want (0, true)", idx, more)
	}

	s.Assessments[0].Status = assessment.StatusCompleted
	idx, more = s.NextDomain()
	if !more || idx != 1 {
		t.Fatalf("NextDomain = (%d, %v), want (1, true)", idx, more)
	}
	if s.Complete() {
		t.Error("Complete() = true with unfinished domains")
	}

	s.Assessments[1].Status = assessment.StatusStruggling
	s.Assessments[2].Status = assessment.StatusMastered
	if _, more = s.NextDomain(); more {
		t.Error("NextDomain reported work after all domains finished")
	}
	if !s.Complete() {
		t.Error("Complete() = false with all domains terminal")
	}
}

func TestOverallScore(t *testing.T) {
	s := threeDomainSession()
	if got := s.OverallScore(); got != 0 {
		t.Errorf("OverallScore with no answers = %.1f, want 0", got)
	}

	s.Assessments[0].QuestionsAttempted = 10
	s.Assessments[0].QuestionsCorrect = 9
	s.Assessments[1].QuestionsAttempted = 10
	s.Assessments[1].QuestionsCorrect = 3

	if got := s.OverallScore(); got != 60 {
		t.Errorf("OverallScore = %.1f, want 60", got)
	}
}

func TestStaticPlan(t *testing.T) {
	plans := StaticPlan("go", 3)
	if len(plans) != 3 {
		t.Fatalf("StaticPlan(3) = %d plans", len(plans))
	}
	for i, p := range plans {
		if p.Name == "" || p.Description == "" {
			t.Errorf("plan %d incomplete: %+v", i, p)
		}
		if p.EstimatedDifficulty < 1 || p.EstimatedDifficulty > 100 {
			t.Errorf("plan %d difficulty %d outside 1-100", i, p.EstimatedDifficulty)
		}
	}

	if got := len(StaticPlan("go", 0)); got != 5 {
		t.Errorf("StaticPlan(0) = %d plans, want default 5", got)
	}
	if got := len(StaticPlan("go", 99)); got != 5 {
		t.Errorf("StaticPlan(99) = %d plans, want default 5", got)
	}
}
