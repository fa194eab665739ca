package questiongen

import (
	"context"
	"fmt"
	"sync"
)

// MockGenerator is a deterministic Generator for offline use and
// tests. Queued questions are returned FIFO; once the queue is empty
// it synthesizes placeholder questions from the input, so a session
// can run end to end without a provider.
type MockGenerator struct {
	mu        sync.Mutex
	queue     []*Question
	errs      []error
	generated int

	// Calls records every input received, in order.
	Calls []GenerateInput
}

// NewMockGenerator creates a MockGenerator with optional canned questions.
func NewMockGenerator(questions ...*Question) *MockGenerator {
	return &MockGenerator{queue: questions}
}

// FailNext queues an error to be returned before any canned or
// synthesized question.
func (m *MockGenerator) FailNext(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs = append(m.errs, err)
}

// Generate returns the next queued question, a queued error, or a
// synthesized placeholder.
func (m *MockGenerator) Generate(_ context.Context, input GenerateInput) (*Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, input)

	if len(m.errs) > 0 {
		err := m.errs[0]
		m.errs = m.errs[1:]
		return nil, err
	}

	if len(m.queue) > 0 {
		q := m.queue[0]
		m.queue = m.queue[1:]
		return q, nil
	}

	m.generated++
	return m.synthesize(input), nil
}

// synthesize builds a placeholder question keyed to the requested
// difficulty so adaptive behavior is still visible offline.
func (m *MockGenerator) synthesize(input GenerateInput) *Question {
	tag := fmt.Sprintf("%s basics", input.Domain)
	if len(input.KnowledgeGaps) > 0 {
		tag = input.KnowledgeGaps[len(input.KnowledgeGaps)-1]
	}
	return &Question{
		ID:     fmt.Sprintf("mock-%d", m.generated),
		Domain: input.Domain,
		Prompt: fmt.Sprintf("[practice %d] Which statement about %s is accurate at difficulty %d?",
			m.generated, input.Domain, input.Difficulty),
		Options: []string{
			"A plausible but incorrect statement",
			"The accurate statement",
			"A common misconception",
			"An unrelated statement",
		},
		CorrectIndex:     1,
		KnowledgeTag:     tag,
		Explanation:      "Option B is the accurate statement; the others describe common misconceptions.",
		Difficulty:       input.Difficulty,
		EstimatedSeconds: 30,
	}
}
