package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS responses (
	id          TEXT PRIMARY KEY,
	query       TEXT NOT NULL,
	agent       TEXT NOT NULL,
	text        TEXT NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS feedback (
	id          TEXT PRIMARY KEY,
	query       TEXT NOT NULL,
	agent_a     TEXT NOT NULL,
	text_a      TEXT NOT NULL,
	agent_b     TEXT NOT NULL,
	text_b      TEXT NOT NULL,
	preferred   TEXT NOT NULL CHECK (preferred IN ('A', 'B')),
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS reranker_scores (
	id          TEXT PRIMARY KEY,
	query       TEXT NOT NULL,
	agent       TEXT NOT NULL,
	score       REAL NOT NULL,
	text        TEXT NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS evaluation_results (
	id               TEXT PRIMARY KEY,
	timestamp        TEXT NOT NULL,
	accuracy         REAL NOT NULL,
	pairs_evaluated  INTEGER NOT NULL,
	kendall_tau      REAL NOT NULL,
	spearman_rho     REAL NOT NULL,
	model            TEXT NOT NULL,
	created_at       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_feedback_created ON feedback(created_at);
CREATE INDEX IF NOT EXISTS idx_responses_query ON responses(query);
`

// #endregion schema

// #region store-struct
// Store manages the four append-only collections in SQLite. Collections are
// append-only: concurrent rounds insert without coordination and nothing is
// updated in place.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for one-shot tooling.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion db-accessor

// #region insert-response
// InsertResponse appends one generated candidate and returns its id.
func (s *Store) InsertResponse(rec ResponseRecord) (string, error) {
	id := uuid.New().String()
	now := createdAt(rec.CreatedAt)
	_, err := s.db.Exec(
		`INSERT INTO responses (id, query, agent, text, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, rec.Query, rec.Agent, rec.Text, now,
	)
	if err != nil {
		return "", fmt.Errorf("insert response: %w", err)
	}
	return id, nil
}

// #endregion insert-response

// #region insert-feedback
// InsertFeedback appends one human preference and returns its id.
func (s *Store) InsertFeedback(rec FeedbackRecord) (string, error) {
	id := uuid.New().String()
	now := createdAt(rec.CreatedAt)
	_, err := s.db.Exec(
		`INSERT INTO feedback (id, query, agent_a, text_a, agent_b, text_b, preferred, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, rec.Query, rec.AgentA, rec.TextA, rec.AgentB, rec.TextB, rec.Preferred, now,
	)
	if err != nil {
		return "", fmt.Errorf("insert feedback: %w", err)
	}
	return id, nil
}

// #endregion insert-feedback

// #region insert-score
// InsertRerankerScore appends one reranker score row and returns its id.
func (s *Store) InsertRerankerScore(rec ScoreRecord) (string, error) {
	id := uuid.New().String()
	now := createdAt(rec.CreatedAt)
	_, err := s.db.Exec(
		`INSERT INTO reranker_scores (id, query, agent, score, text, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, rec.Query, rec.Agent, rec.Score, rec.Text, now,
	)
	if err != nil {
		return "", fmt.Errorf("insert reranker score: %w", err)
	}
	return id, nil
}

// #endregion insert-score

// #region insert-evaluation
// InsertEvaluation appends one alignment evaluation snapshot and returns its id.
func (s *Store) InsertEvaluation(rec EvaluationRecord) (string, error) {
	id := uuid.New().String()
	now := createdAt(rec.CreatedAt)
	_, err := s.db.Exec(
		`INSERT INTO evaluation_results (id, timestamp, accuracy, pairs_evaluated, kendall_tau, spearman_rho, model, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, rec.Timestamp, rec.Accuracy, rec.PairsEvaluated, rec.KendallTau, rec.SpearmanRho, rec.Model, now,
	)
	if err != nil {
		return "", fmt.Errorf("insert evaluation: %w", err)
	}
	return id, nil
}

// #endregion insert-evaluation

// #region list-feedback
// ListRecentFeedback returns the most recent feedback rows, newest first.
func (s *Store) ListRecentFeedback(limit int) ([]FeedbackRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, query, agent_a, text_a, agent_b, text_b, preferred, created_at
		 FROM feedback ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	var recs []FeedbackRecord
	for rows.Next() {
		var rec FeedbackRecord
		var createdStr string
		if err := rows.Scan(&rec.ID, &rec.Query, &rec.AgentA, &rec.TextA, &rec.AgentB, &rec.TextB, &rec.Preferred, &createdStr); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feedback: %w", err)
	}
	return recs, nil
}

// #endregion list-feedback

// #region list-responses
// ListRecentResponses returns the most recent generated candidates, newest first.
func (s *Store) ListRecentResponses(limit int) ([]ResponseRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, query, agent, text, created_at
		 FROM responses ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	defer rows.Close()

	var recs []ResponseRecord
	for rows.Next() {
		var rec ResponseRecord
		var createdStr string
		if err := rows.Scan(&rec.ID, &rec.Query, &rec.Agent, &rec.Text, &createdStr); err != nil {
			return nil, fmt.Errorf("scan response: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate responses: %w", err)
	}
	return recs, nil
}

// #endregion list-responses

// #region list-scores
// ListRecentScores returns the most recent reranker score rows, newest first.
func (s *Store) ListRecentScores(limit int) ([]ScoreRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, query, agent, score, text, created_at
		 FROM reranker_scores ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	defer rows.Close()

	var recs []ScoreRecord
	for rows.Next() {
		var rec ScoreRecord
		var createdStr string
		if err := rows.Scan(&rec.ID, &rec.Query, &rec.Agent, &rec.Score, &rec.Text, &createdStr); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scores: %w", err)
	}
	return recs, nil
}

// #endregion list-scores

// #region list-evaluations
// ListRecentEvaluations returns the most recent evaluation snapshots, newest first.
func (s *Store) ListRecentEvaluations(limit int) ([]EvaluationRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, timestamp, accuracy, pairs_evaluated, kendall_tau, spearman_rho, model, created_at
		 FROM evaluation_results ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	defer rows.Close()

	var recs []EvaluationRecord
	for rows.Next() {
		var rec EvaluationRecord
		var createdStr string
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &rec.Accuracy, &rec.PairsEvaluated, &rec.KendallTau, &rec.SpearmanRho, &rec.Model, &createdStr); err != nil {
			return nil, fmt.Errorf("scan evaluation: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate evaluations: %w", err)
	}
	return recs, nil
}

// #endregion list-evaluations

// #region helpers
func createdAt(t time.Time) string {
	if t.IsZero() {
		t = time.Now().UTC()
	}
	return t.Format(time.RFC3339Nano)
}

// #endregion helpers
