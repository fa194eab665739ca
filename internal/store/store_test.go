package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "acumen.db"))
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.DB())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "acumen.db")
	ctx := context.Background()

	s1, err := Open(path)
	require.NoError(t, err)
	err = s1.EventRepo().AppendAnswer(ctx, AnswerEventData{
		Topic: "go", Domain: "Concurrency", QuestionID: "q1", KnowledgeTag: "channels",
		Correct: true, ResponseTime: 12, Confidence: 0.8, Difficulty: 55,
	})
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	// Reopening must run the migrations as no-ops and keep the data.
	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	stats, err := s2.EventRepo().DomainStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].Attempted)
}

func TestAnswerEventsAndDomainStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{Topic: "go", Domain: "Concurrency", QuestionID: "q1", KnowledgeTag: "channels", Correct: true, ResponseTime: 10, Confidence: 0.9, Difficulty: 50},
		{Topic: "go", Domain: "Concurrency", QuestionID: "q2", KnowledgeTag: "mutexes", Correct: false, ResponseTime: 30, Confidence: 0.5, Difficulty: 55},
		{Topic: "go", Domain: "Tooling", QuestionID: "q3", KnowledgeTag: "modules", Correct: true, ResponseTime: 20, Confidence: 0.7, Difficulty: 40},
		{Topic: "sql", Domain: "Joins", QuestionID: "q4", KnowledgeTag: "outer joins", Correct: true, ResponseTime: 25, Confidence: 0.6, Difficulty: 45},
	}
	for _, a := range answers {
		require.NoError(t, repo.AppendAnswer(ctx, a))
	}

	stats, err := repo.DomainStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 3)

	byDomain := make(map[string]DomainStats, len(stats))
	for _, st := range stats {
		byDomain[st.Topic+"/"+st.Domain] = st
	}
	conc := byDomain["go/Concurrency"]
	assert.Equal(t, 2, conc.Attempted)
	assert.Equal(t, 1, conc.Correct)
	assert.InDelta(t, 20, conc.AvgTime, 1e-9)
	assert.InDelta(t, 0.7, conc.AvgConfidence, 1e-9)
}

func TestLLMEventsAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "anthropic", Model: "claude-haiku", Purpose: "question-gen",
			InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true,
		}))
	}
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic", Model: "claude-haiku", Purpose: "summary",
		InputTokens: 300, OutputTokens: 120, LatencyMs: 400, Success: false,
		ErrorMessage: "rate limited",
	}))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	require.Len(t, events, 2)
	// Newest first.
	assert.Equal(t, "summary", events[0].Purpose)
	assert.False(t, events[0].Success)
	assert.Equal(t, "rate limited", events[0].ErrorMessage)

	usage, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, usage, 2)
	for _, u := range usage {
		switch u.Purpose {
		case "question-gen":
			assert.Equal(t, 3, u.Calls)
			assert.Equal(t, 300, u.InputTokens)
			assert.Equal(t, 150, u.OutputTokens)
		case "summary":
			assert.Equal(t, 1, u.Calls)
			assert.Equal(t, 300, u.InputTokens)
		default:
			t.Errorf("unexpected purpose %q", u.Purpose)
		}
	}
}

func TestSnapshotSaveLatestPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.Nil(t, snap, "Latest on an empty store")

	for i := 1; i <= 5; i++ {
		data := []byte(fmt.Sprintf(`{"run":%d}`, i))
		require.NoError(t, repo.Save(ctx, "go", data))
	}

	snap, err = repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, `{"run":5}`, string(snap.Data))
	assert.Equal(t, "go", snap.Topic)

	require.NoError(t, repo.Prune(ctx, 2))
	var count int
	require.NoError(t, s.DB().QueryRow(`SELECT COUNT(*) FROM session_snapshots`).Scan(&count))
	assert.Equal(t, 2, count)

	snap, err = repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, `{"run":5}`, string(snap.Data), "newest snapshot survives pruning")
}
