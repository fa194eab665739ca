package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/acumen/internal/llm"
)

const plannerSystemPrompt = `You are an expert knowledge assessor. Break a subject into distinct knowledge domains for a comprehensive assessment.

Rules:
- Identify the core areas that reveal true understanding and competency.
- Cover both breadth and depth of the subject.
- Each domain gets a short name, a one-sentence description of what it assesses, and an estimated difficulty on a 1-100 scale.
- Order domains from foundational to advanced.`

// planSchema is the JSON schema for domain planning responses.
var planSchema = &llm.Schema{
	Name:        "assessment-plan",
	Description: "A list of knowledge domains to assess for a topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"domains": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"domain_name": map[string]any{
							"type":        "string",
							"description": "Short name of the knowledge domain",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "What knowledge and skills this domain assesses",
						},
						"estimated_difficulty": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"maximum":     100,
							"description": "Estimated starting difficulty for this domain",
						},
					},
					"required":             []any{"domain_name", "description", "estimated_difficulty"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"domains"},
		"additionalProperties": false,
	},
}

// Planner generates the domain breakdown for a topic using an LLM.
type Planner struct {
	provider llm.Provider
	cfg      Config
}

// NewPlanner creates a Planner with the given provider and config.
func NewPlanner(provider llm.Provider, cfg Config) *Planner {
	return &Planner{provider: provider, cfg: cfg}
}

// PlanDomains asks the LLM for count knowledge domains covering the
// topic. A count of 0 uses the configured default.
func (p *Planner) PlanDomains(ctx context.Context, topic string, count int) ([]DomainPlan, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}
	if count == 0 {
		count = p.cfg.DefaultDomains
	}
	if count < p.cfg.MinDomains || count > p.cfg.MaxDomains {
		return nil, fmt.Errorf("domain count must be between %d and %d, got %d",
			p.cfg.MinDomains, p.cfg.MaxDomains, count)
	}

	ctx = llm.WithPurpose(ctx, "domain-plan")
	resp, err := p.provider.Generate(ctx, llm.Request{
		System: plannerSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf("Topic: %s\nNumber of domains: %d", topic, count)},
		},
		Schema:      planSchema,
		MaxTokens:   p.cfg.MaxTokens,
		Temperature: p.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("plan domains for %q: %w", topic, err)
	}

	var out struct {
		Domains []DomainPlan `json:"domains"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse domain plan: %w", err)
	}
	if len(out.Domains) == 0 {
		return nil, fmt.Errorf("planner returned no domains for %q", topic)
	}

	for i := range out.Domains {
		d := out.Domains[i].EstimatedDifficulty
		if d < 1 || d > 100 {
			out.Domains[i].EstimatedDifficulty = 50
		}
	}
	return out.Domains, nil
}
