package store

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

func tempDB(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestInsertResponseReturnsID(t *testing.T) {
	s := tempDB(t)

	id, err := s.InsertResponse(ResponseRecord{
		Query: "reverse a string",
		Agent: "Agent-1-concise",
		Text:  "def rev(s): return s[::-1]",
	})
	if err != nil {
		t.Fatalf("InsertResponse: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty id")
	}
}

func TestDuplicateResponsesAreNotDeduplicated(t *testing.T) {
	s := tempDB(t)

	rec := ResponseRecord{Query: "q", Agent: "Agent-1-concise", Text: "t"}
	if _, err := s.InsertResponse(rec); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if _, err := s.InsertResponse(rec); err != nil {
		t.Fatalf("second insert: %v", err)
	}

	var n int
	if err := s.DB().QueryRow(`SELECT COUNT(*) FROM responses`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 rows, got %d", n)
	}
}

func TestFeedbackRejectsBadPreferred(t *testing.T) {
	s := tempDB(t)

	_, err := s.InsertFeedback(FeedbackRecord{
		Query: "q", AgentA: "a", TextA: "ta", AgentB: "b", TextB: "tb",
		Preferred: "C",
	})
	if err == nil {
		t.Fatal("expected CHECK constraint failure for preferred=C")
	}
}

func TestListRecentFeedbackOrderAndLimit(t *testing.T) {
	s := tempDB(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := s.InsertFeedback(FeedbackRecord{
			Query:     fmt.Sprintf("q%d", i),
			AgentA:    "Agent-1-concise", TextA: "ta",
			AgentB:    "Agent-2-explainer", TextB: "tb",
			Preferred: "A",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	recs, err := s.ListRecentFeedback(3)
	if err != nil {
		t.Fatalf("ListRecentFeedback: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(recs))
	}
	// Newest first
	if recs[0].Query != "q4" || recs[2].Query != "q2" {
		t.Fatalf("unexpected order: %s .. %s", recs[0].Query, recs[2].Query)
	}
}

func TestListRecentFeedbackEmpty(t *testing.T) {
	s := tempDB(t)

	recs, err := s.ListRecentFeedback(100)
	if err != nil {
		t.Fatalf("ListRecentFeedback: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected no rows, got %d", len(recs))
	}
}

func TestInsertAndListEvaluations(t *testing.T) {
	s := tempDB(t)

	_, err := s.InsertEvaluation(EvaluationRecord{
		Timestamp:      "2026-03-01 12:00:00",
		Accuracy:       83.333,
		PairsEvaluated: 12,
		KendallTau:     0.41,
		SpearmanRho:    0.52,
		Model:          "cross-encoder/ms-marco-MiniLM-L-6-v2",
	})
	if err != nil {
		t.Fatalf("InsertEvaluation: %v", err)
	}

	recs, err := s.ListRecentEvaluations(10)
	if err != nil {
		t.Fatalf("ListRecentEvaluations: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 row, got %d", len(recs))
	}
	if recs[0].PairsEvaluated != 12 {
		t.Fatalf("expected 12 pairs, got %d", recs[0].PairsEvaluated)
	}
	if recs[0].Accuracy != 83.333 {
		t.Fatalf("expected accuracy 83.333, got %f", recs[0].Accuracy)
	}
}

func TestInsertRerankerScore(t *testing.T) {
	s := tempDB(t)

	id, err := s.InsertRerankerScore(ScoreRecord{
		Query: "q", Agent: "Agent-3-optimizer", Score: 0.913, Text: "t",
	})
	if err != nil {
		t.Fatalf("InsertRerankerScore: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty id")
	}

	var score float64
	if err := s.DB().QueryRow(`SELECT score FROM reranker_scores WHERE id = ?`, id).Scan(&score); err != nil {
		t.Fatalf("query: %v", err)
	}
	if score != 0.913 {
		t.Fatalf("expected 0.913, got %f", score)
	}
}

func TestListRecentResponsesOrderAndLimit(t *testing.T) {
	s := tempDB(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		_, err := s.InsertResponse(ResponseRecord{
			Query:     fmt.Sprintf("q%d", i),
			Agent:     "Agent-1-concise",
			Text:      fmt.Sprintf("t%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	recs, err := s.ListRecentResponses(2)
	if err != nil {
		t.Fatalf("ListRecentResponses: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(recs))
	}
	if recs[0].Query != "q3" || recs[1].Query != "q2" {
		t.Fatalf("expected newest first, got %q then %q", recs[0].Query, recs[1].Query)
	}
}

func TestListRecentScores(t *testing.T) {
	s := tempDB(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	scores := []float64{0.1, 0.7}
	for i, sc := range scores {
		_, err := s.InsertRerankerScore(ScoreRecord{
			Query:     "q",
			Agent:     fmt.Sprintf("Agent-%d-concise", i+1),
			Score:     sc,
			Text:      "t",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	recs, err := s.ListRecentScores(10)
	if err != nil {
		t.Fatalf("ListRecentScores: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(recs))
	}
	if recs[0].Score != 0.7 || recs[1].Score != 0.1 {
		t.Fatalf("expected newest first, got %f then %f", recs[0].Score, recs[1].Score)
	}
}
