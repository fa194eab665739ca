package questiongen

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/abhisek/acumen/internal/llm"
)

// LLMGenerator implements Generator using an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	cfg      Config
}

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, cfg: cfg}
}

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correct_answer_index"`
	KnowledgeTag       string   `json:"knowledge_tag"`
	Explanation        string   `json:"explanation"`
	DifficultyLevel    int      `json:"difficulty_level"`
	EstimatedTime      int      `json:"estimated_time"`
}

// Generate produces a single validated question for the given input.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.cfg)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, &GenerationError{Reason: "LLM request failed", Err: err}
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &GenerationError{Reason: "unparseable LLM response", Err: err}
	}

	q := &Question{
		ID:               uuid.NewString(),
		Domain:           input.Domain,
		Prompt:           raw.Question,
		Options:          raw.Options,
		CorrectIndex:     raw.CorrectAnswerIndex,
		KnowledgeTag:     raw.KnowledgeTag,
		Explanation:      raw.Explanation,
		Difficulty:       raw.DifficultyLevel,
		EstimatedSeconds: raw.EstimatedTime,
	}

	if err := validateQuestion(q, g.cfg); err != nil {
		return nil, err
	}
	return q, nil
}
