package store

import (
	"context"
	"database/sql"
	"time"
)

// AnswerEventData records one answered question.
type AnswerEventData struct {
	Topic        string
	Domain       string
	QuestionID   string
	KnowledgeTag string
	Correct      bool
	ResponseTime float64
	Confidence   float64
	Difficulty   float64
}

// LLMRequestEventData records one LLM API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request event.
type LLMRequestEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token consumption for one purpose.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// DomainStats aggregates answer events for one (topic, domain) pair.
type DomainStats struct {
	Topic         string
	Domain        string
	Attempted     int
	Correct       int
	AvgTime       float64
	AvgConfidence float64
	LastAnswered  time.Time
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAnswer records an answered question.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendLLMRequest records an LLM API call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recent LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// DomainStats aggregates answer events per topic and domain.
	DomainStats(ctx context.Context) ([]DomainStats, error)
}

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO answer_events
		 (topic, domain, question_id, knowledge_tag, correct, response_time, confidence, difficulty)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Topic, data.Domain, data.QuestionID, data.KnowledgeTag,
		boolToInt(data.Correct), data.ResponseTime, data.Confidence, data.Difficulty)
	return err
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_request_events
		 (provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, request_body, response_body)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Provider, data.Model, data.Purpose, data.InputTokens, data.OutputTokens,
		data.LatencyMs, boolToInt(data.Success), data.ErrorMessage, data.RequestBody, data.ResponseBody)
	return err
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error) {
	q := `SELECT id, created_at, provider, model, purpose, input_tokens, output_tokens,
	             latency_ms, success, error_message, request_body, response_body
	      FROM llm_request_events ORDER BY id DESC`
	args := []any{}
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []LLMRequestEvent
	for rows.Next() {
		var e LLMRequestEvent
		var success int
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Provider, &e.Model, &e.Purpose,
			&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &success,
			&e.ErrorMessage, &e.RequestBody, &e.ResponseBody); err != nil {
			return nil, err
		}
		e.Success = success != 0
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT purpose, COUNT(*), SUM(input_tokens), SUM(output_tokens), CAST(AVG(latency_ms) AS INTEGER)
		 FROM llm_request_events GROUP BY purpose ORDER BY purpose`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usage []LLMUsage
	for rows.Next() {
		var u LLMUsage
		if err := rows.Scan(&u.Purpose, &u.Calls, &u.InputTokens, &u.OutputTokens, &u.AvgLatencyMs); err != nil {
			return nil, err
		}
		usage = append(usage, u)
	}
	return usage, rows.Err()
}

func (r *eventRepo) DomainStats(ctx context.Context) ([]DomainStats, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT topic, domain, COUNT(*), SUM(correct), AVG(response_time), AVG(confidence), MAX(created_at)
		 FROM answer_events GROUP BY topic, domain ORDER BY MAX(created_at) DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []DomainStats
	for rows.Next() {
		var s DomainStats
		if err := rows.Scan(&s.Topic, &s.Domain, &s.Attempted, &s.Correct,
			&s.AvgTime, &s.AvgConfidence, &s.LastAnswered); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
