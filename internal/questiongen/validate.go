package questiongen

import "fmt"

// validateQuestion checks that a generated question is well formed.
// Every failure is a *GenerationError so callers can treat malformed
// output and transport failures uniformly.
func validateQuestion(q *Question, cfg Config) error {
	if q.Prompt == "" {
		return &GenerationError{Reason: "empty question text"}
	}
	if len(q.Options) < cfg.MinOptions || len(q.Options) > cfg.MaxOptions {
		return &GenerationError{
			Reason: fmt.Sprintf("got %d options, want %d-%d", len(q.Options), cfg.MinOptions, cfg.MaxOptions),
		}
	}
	for i, opt := range q.Options {
		if opt == "" {
			return &GenerationError{Reason: fmt.Sprintf("option %d is empty", i)}
		}
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return &GenerationError{
			Reason: fmt.Sprintf("correct index %d out of range for %d options", q.CorrectIndex, len(q.Options)),
		}
	}
	if q.KnowledgeTag == "" {
		return &GenerationError{Reason: "missing knowledge tag"}
	}
	if q.Explanation == "" {
		return &GenerationError{Reason: "missing explanation"}
	}
	if q.Difficulty < 1 || q.Difficulty > 100 {
		return &GenerationError{Reason: fmt.Sprintf("difficulty %d outside 1-100", q.Difficulty)}
	}
	if q.EstimatedSeconds <= 0 {
		return &GenerationError{Reason: "estimated time must be positive"}
	}
	return nil
}
