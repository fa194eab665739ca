package questiongen

import (
	"context"
	"fmt"
)

// Generator produces assessment questions. The assessment controller
// consumes this interface only; implementations decide where questions
// actually come from (LLM, fixtures, ...).
type Generator interface {
	// Generate produces a single validated question for the given
	// input, or a *GenerationError when it cannot.
	Generate(ctx context.Context, input GenerateInput) (*Question, error)
}

// GenerationError indicates the generator could not produce a
// well-formed question. The caller's assessment state is unaffected
// and the request may be retried.
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("question generation failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("question generation failed: %s", e.Reason)
}

func (e *GenerationError) Unwrap() error { return e.Err }
