package session

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/acumen/internal/assessment"
	"github.com/abhisek/acumen/internal/llm"
)

const planOutput = `{
	"domains": [
		{"domain_name": "Syntax and Types", "description": "Language basics", "estimated_difficulty": 30},
		{"domain_name": "Concurrency", "description": "Goroutines and channels", "estimated_difficulty": 65},
		{"domain_name": "Tooling", "description": "Modules, testing, profiling", "estimated_difficulty": 50}
	]
}`

func TestPlanDomains(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(planOutput)},
	)
	p := NewPlanner(mock, DefaultConfig())

	plans, err := p.PlanDomains(context.Background(), "go", 3)
	if err != nil {
		t.Fatalf("PlanDomains: %v", err)
	}
	if len(plans) != 3 {
		t.Fatalf("plans = %d, want 3", len(plans))
	}
	if plans[1].Name != "Concurrency" || plans[1].EstimatedDifficulty != 65 {
		t.Errorf("plan 1 = %+v", plans[1])
	}

	req := mock.Calls[0]
	if req.Schema != planSchema {
		t.Error("request did not carry the plan schema")
	}
	if !strings.Contains(req.Messages[0].Content, "Topic: go") {
		t.Errorf("user message missing topic: %s", req.Messages[0].Content)
	}
	if !strings.Contains(req.Messages[0].Content, "Number of domains: 3") {
		t.Errorf("user message missing count: %s", req.Messages[0].Content)
	}
}

func TestPlanDomains_InputValidation(t *testing.T) {
	p := NewPlanner(llm.NewMockProvider(), DefaultConfig())

	if _, err := p.PlanDomains(context.Background(), "  ", 3); err == nil {
		t.Error("blank topic accepted")
	}
	if _, err := p.PlanDomains(context.Background(), "go", 2); err == nil {
		t.Error("count below minimum accepted")
	}
	if _, err := p.PlanDomains(context.Background(), "go", 9); err == nil {
		t.Error("count above maximum accepted")
	}
}

func TestPlanDomains_ClampsBadDifficulty(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{
			"domains": [
				{"domain_name": "A", "description": "d", "estimated_difficulty": 0},
				{"domain_name": "B", "description": "d", "estimated_difficulty": 250},
				{"domain_name": "C", "description": "d", "estimated_difficulty": 70}
			]
		}`)},
	)
	p := NewPlanner(mock, DefaultConfig())

	plans, err := p.PlanDomains(context.Background(), "go", 3)
	if err != nil {
		t.Fatalf("PlanDomains: %v", err)
	}
	if plans[0].EstimatedDifficulty != 50 || plans[1].EstimatedDifficulty != 50 {
		t.Errorf("bad difficulties not normalized: %d, %d", plans[0].EstimatedDifficulty, plans[1].EstimatedDifficulty)
	}
	if plans[2].EstimatedDifficulty != 70 {
		t.Errorf("valid difficulty altered: %d", plans[2].EstimatedDifficulty)
	}
}

func TestPlanDomains_EmptyPlanRejected(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"domains": []}`)},
	)
	p := NewPlanner(mock, DefaultConfig())

	if _, err := p.PlanDomains(context.Background(), "go", 3); err == nil {
		t.Error("empty domain list accepted")
	}
}

func TestSummarize(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{
			"title": "Knowledge Assessment Report: go",
			"knowledge_level": "Advanced",
			"strengths": ["concurrency primitives"],
			"areas_for_improvement": ["generics"],
			"recommendations": ["read the memory model"]
		}`)},
	)

	sess := threeDomainSession()
	sess.Assessments[0].QuestionsAttempted = 10
	sess.Assessments[0].QuestionsCorrect = 8

	summary, err := NewSummarizer(mock, DefaultConfig()).Summarize(context.Background(), sess)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary.KnowledgeLevel != "Advanced" {
		t.Errorf("KnowledgeLevel = %q", summary.KnowledgeLevel)
	}
	if summary.OverallScore != 80 {
		t.Errorf("OverallScore = %.1f, want 80 from recorded answers", summary.OverallScore)
	}
	if summary.DomainsAssessed != 3 {
		t.Errorf("DomainsAssessed = %d, want 3", summary.DomainsAssessed)
	}

	input := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Topic: kubernetes", "Domain: Architecture", "Accuracy: 80%"} {
		if !strings.Contains(input, want) {
			t.Errorf("summary input missing %q:\n%s", want, input)
		}
	}
}

func TestLocalSummary(t *testing.T) {
	sess := threeDomainSession()
	sess.Assessments[0].QuestionsAttempted = 10
	sess.Assessments[0].QuestionsCorrect = 9
	sess.Assessments[0].MasteryAreas = []string{"control plane components"}
	sess.Assessments[1].QuestionsAttempted = 10
	sess.Assessments[1].QuestionsCorrect = 9
	sess.Assessments[2].KnowledgeGaps = []string{"ingress controllers"}

	got := LocalSummary(sess)
	if got.KnowledgeLevel != "Expert" {
		t.Errorf("KnowledgeLevel = %q, want Expert at 90%%", got.KnowledgeLevel)
	}
	if got.OverallScore != 90 {
		t.Errorf("OverallScore = %.1f, want 90", got.OverallScore)
	}
	if len(got.Strengths) != 1 || got.Strengths[0] != "control plane components" {
		t.Errorf("Strengths = %v", got.Strengths)
	}
	if len(got.Improvements) != 1 || got.Improvements[0] != "ingress controllers" {
		t.Errorf("Improvements = %v", got.Improvements)
	}
}

// statuses must round-trip through the session snapshot encoding.
func TestSessionJSONRoundTrip(t *testing.T) {
	sess := threeDomainSession()
	sess.Assessments[0].Status = assessment.StatusMastered
	sess.Assessments[0].Progress = 100

	data, err := json.Marshal(sess)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var restored Session
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if restored.Topic != "kubernetes" || len(restored.Assessments) != 3 {
		t.Fatalf("restored session mangled: %+v", restored)
	}
	if restored.Assessments[0].Status != assessment.StatusMastered {
		t.Errorf("status = %s, want %s", restored.Assessments[0].Status, assessment.StatusMastered)
	}
}
