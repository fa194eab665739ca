package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/acumen/internal/llm"
)

// Summary is the final assessment report for a session.
type Summary struct {
	Title           string   `json:"title"`
	KnowledgeLevel  string   `json:"knowledge_level"` // Beginner, Intermediate, Advanced, Expert
	OverallScore    float64  `json:"overall_score"`
	DomainsAssessed int      `json:"domains_assessed"`
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"areas_for_improvement"`
	Recommendations []string `json:"recommendations"`
}

const summarySystemPrompt = `You are an expert knowledge assessor analyzing a user's performance across several knowledge domains.

Rules:
- Determine the overall knowledge level: Beginner (0-40% accuracy), Intermediate (41-70%), Advanced (71-85%), Expert (86-100%).
- Name the strongest domains and specific mastery areas.
- Name the domains and specific knowledge gaps that need attention.
- Give 3-5 actionable recommendations for further development.`

// summarySchema is the JSON schema for final report responses.
var summarySchema = &llm.Schema{
	Name:        "assessment-summary",
	Description: "A final report on a user's multi-domain assessment performance",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type": "string",
			},
			"knowledge_level": map[string]any{
				"type": "string",
				"enum": []any{"Beginner", "Intermediate", "Advanced", "Expert"},
			},
			"strengths": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"areas_for_improvement": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"recommendations": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []any{"title", "knowledge_level", "strengths", "areas_for_improvement", "recommendations"},
		"additionalProperties": false,
	},
}

// Summarizer produces the final report from a finished session.
type Summarizer struct {
	provider llm.Provider
	cfg      Config
}

// NewSummarizer creates a Summarizer with the given provider and config.
func NewSummarizer(provider llm.Provider, cfg Config) *Summarizer {
	return &Summarizer{provider: provider, cfg: cfg}
}

// Summarize generates a report for the session's recorded performance.
func (s *Summarizer) Summarize(ctx context.Context, sess *Session) (*Summary, error) {
	ctx = llm.WithPurpose(ctx, "summary")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: summarySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSummaryInput(sess)},
		},
		Schema:      summarySchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: 0.5,
	})
	if err != nil {
		return nil, fmt.Errorf("summarize session: %w", err)
	}

	var out Summary
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse summary: %w", err)
	}
	out.OverallScore = sess.OverallScore()
	out.DomainsAssessed = len(sess.Assessments)
	return &out, nil
}

// LocalSummary builds a report without an LLM, for offline runs.
func LocalSummary(sess *Session) *Summary {
	score := sess.OverallScore()
	level := "Beginner"
	switch {
	case score > 85:
		level = "Expert"
	case score > 70:
		level = "Advanced"
	case score > 40:
		level = "Intermediate"
	}

	var strengths, improvements []string
	for _, a := range sess.Assessments {
		strengths = append(strengths, a.MasteryAreas...)
		improvements = append(improvements, a.KnowledgeGaps...)
	}

	return &Summary{
		Title:           fmt.Sprintf("Knowledge Assessment Report: %s", sess.Topic),
		KnowledgeLevel:  level,
		OverallScore:    score,
		DomainsAssessed: len(sess.Assessments),
		Strengths:       strengths,
		Improvements:    improvements,
	}
}

// buildSummaryInput renders per-domain results for the LLM.
func buildSummaryInput(sess *Session) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", sess.Topic)
	fmt.Fprintf(&b, "Overall accuracy: %.1f%%\n", sess.OverallScore())
	fmt.Fprintf(&b, "Total time: %.1f minutes\n\n", sess.Elapsed().Minutes())

	for _, a := range sess.Assessments {
		fmt.Fprintf(&b, "Domain: %s\n", a.Domain)
		fmt.Fprintf(&b, "  Status: %s\n", a.Status)
		fmt.Fprintf(&b, "  Accuracy: %.0f%% (%d/%d)\n", a.Accuracy()*100, a.QuestionsCorrect, a.QuestionsAttempted)
		fmt.Fprintf(&b, "  Final difficulty: %.0f\n", a.CurrentDifficulty)
		if len(a.MasteryAreas) > 0 {
			fmt.Fprintf(&b, "  Mastery areas: %s\n", strings.Join(a.MasteryAreas, ", "))
		}
		if len(a.KnowledgeGaps) > 0 {
			fmt.Fprintf(&b, "  Knowledge gaps: %s\n", strings.Join(a.KnowledgeGaps, ", "))
		}
	}

	return b.String()
}
