package store

import "time"

// #region response-record
// ResponseRecord is one generated candidate, one row in the responses table.
// Append-only; duplicate (query, agent) submissions create duplicate rows.
type ResponseRecord struct {
	ID        string
	Query     string
	Agent     string
	Text      string
	CreatedAt time.Time
}

// #endregion response-record

// #region feedback-record
// FeedbackRecord is one human A/B preference, the ground truth for training
// and evaluation. Preferred is always "A" or "B".
type FeedbackRecord struct {
	ID        string
	Query     string
	AgentA    string
	TextA     string
	AgentB    string
	TextB     string
	Preferred string
	CreatedAt time.Time
}

// #endregion feedback-record

// #region score-record
// ScoreRecord is one reranker score for one candidate, logged for offline
// analysis only; it is not authoritative ground truth.
type ScoreRecord struct {
	ID        string
	Query     string
	Agent     string
	Score     float64
	Text      string
	CreatedAt time.Time
}

// #endregion score-record

// #region evaluation-record
// EvaluationRecord is a point-in-time alignment snapshot, never recomputed.
type EvaluationRecord struct {
	ID             string
	Timestamp      string
	Accuracy       float64
	PairsEvaluated int
	KendallTau     float64
	SpearmanRho    float64
	Model          string
	CreatedAt      time.Time
}

// #endregion evaluation-record
