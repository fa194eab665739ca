package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/acumen/internal/llm"
)

const goodOutput = `{
	"question": "Which HTTP status code indicates a permanent redirect?",
	"options": ["301", "302", "307", "308"],
	"correct_answer_index": 0,
	"knowledge_tag": "HTTP status codes",
	"explanation": "301 Moved Permanently is the classic permanent redirect.",
	"difficulty_level": 40,
	"estimated_time": 20
}`

func TestGenerate_Success(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(goodOutput)},
	)
	g := New(mock, DefaultConfig())

	q, err := g.Generate(context.Background(), GenerateInput{Domain: "web", Difficulty: 40})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if q.ID == "" {
		t.Error("question ID not assigned")
	}
	if q.Domain != "web" {
		t.Errorf("Domain = %q, want web", q.Domain)
	}
	if q.CorrectIndex != 0 || len(q.Options) != 4 {
		t.Errorf("answer key mangled: index=%d options=%d", q.CorrectIndex, len(q.Options))
	}
	if q.Difficulty != 40 || q.EstimatedSeconds != 20 {
		t.Errorf("metadata mangled: difficulty=%d time=%d", q.Difficulty, q.EstimatedSeconds)
	}
}

func TestGenerate_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(goodOutput)},
	)
	g := New(mock, DefaultConfig())

	input := GenerateInput{
		Domain:        "web",
		Difficulty:    62,
		KnowledgeGaps: []string{"caching headers", "CORS"},
	}
	if _, err := g.Generate(context.Background(), input); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema != QuestionSchema {
		t.Error("request did not carry the question schema")
	}
	if req.System == "" {
		t.Error("request missing system prompt")
	}
	user := req.Messages[0].Content
	for _, want := range []string{"Domain: web", "Difficulty: 62", "caching headers", "CORS"} {
		if !strings.Contains(user, want) {
			t.Errorf("user message missing %q:\n%s", want, user)
		}
	}
}

func TestGenerate_ProviderErrorWrapped(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrRateLimit{}},
	)
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), GenerateInput{Domain: "web", Difficulty: 40})
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("error is %T, want *GenerationError", err)
	}
	var rateLimited *llm.ErrRateLimit
	if !errors.As(err, &rateLimited) {
		t.Error("provider error not preserved in the chain")
	}
}

func TestGenerate_MalformedOutputRejected(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not JSON", "here is your question!"},
		{"out-of-range answer index", `{"question":"q","options":["a","b"],"correct_answer_index":5,"knowledge_tag":"t","explanation":"e","difficulty_level":40,"estimated_time":20}`},
		{"zero difficulty", `{"question":"q","options":["a","b"],"correct_answer_index":0,"knowledge_tag":"t","explanation":"e","difficulty_level":0,"estimated_time":20}`},
	}
	for _, tt := range tests {
		mock := llm.NewMockProvider(
			llm.MockResponse{Content: json.RawMessage(tt.content)},
		)
		g := New(mock, DefaultConfig())

		_, err := g.Generate(context.Background(), GenerateInput{Domain: "web", Difficulty: 40})
		var genErr *GenerationError
		if !errors.As(err, &genErr) {
			t.Errorf("%s: error is %T, want *GenerationError", tt.name, err)
		}
	}
}

func TestMockGenerator_QueueThenSynthesize(t *testing.T) {
	canned := validQuestion()
	m := NewMockGenerator(canned)

	got, err := m.Generate(context.Background(), GenerateInput{Domain: "networking", Difficulty: 50})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != canned {
		t.Error("queued question not returned first")
	}

	synth, err := m.Generate(context.Background(), GenerateInput{Domain: "networking", Difficulty: 50})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if err := validateQuestion(synth, DefaultConfig()); err != nil {
		t.Errorf("synthesized question invalid: %v", err)
	}
	if len(m.Calls) != 2 {
		t.Errorf("Calls = %d, want 2", len(m.Calls))
	}
}

func TestMockGenerator_FailNext(t *testing.T) {
	m := NewMockGenerator()
	wantErr := &GenerationError{Reason: "boom"}
	m.FailNext(wantErr)

	if _, err := m.Generate(context.Background(), GenerateInput{Domain: "x", Difficulty: 10}); !errors.Is(err, wantErr) {
		t.Fatalf("Generate = %v, want queued error", err)
	}
	if _, err := m.Generate(context.Background(), GenerateInput{Domain: "x", Difficulty: 10}); err != nil {
		t.Fatalf("Generate after drained error: %v", err)
	}
}
