package reranker

import (
	"context"
	"os"
	"time"
)

// #region scorer-interface
// Scorer scores (query, candidate) relevance. Scores carry no guaranteed
// range; only relative order within one call is meaningful. Implementations
// guarantee numeric output or fail explicitly.
type Scorer interface {
	Score(ctx context.Context, query, text string) (float64, error)
	ScoreBatch(ctx context.Context, query string, texts []string) ([]float64, error)
}

// #endregion scorer-interface

// #region config
// Config holds scoring service parameters.
// Reads from env vars: RERANKER_URL, RERANKER_BASE, RERANKER_LOAD_DIR.
type Config struct {
	URL     string
	Base    string // base model identifier
	LoadDir string // fine-tuned model dir, preferred when set
	Timeout time.Duration
}

// DefaultConfig returns the default scoring configuration.
func DefaultConfig() Config {
	cfg := Config{
		URL:     "http://localhost:8601/score",
		Base:    "cross-encoder/ms-marco-MiniLM-L-6-v2",
		Timeout: 60 * time.Second,
	}
	if v := os.Getenv("RERANKER_URL"); v != "" {
		cfg.URL = v
	}
	if v := os.Getenv("RERANKER_BASE"); v != "" {
		cfg.Base = v
	}
	if v := os.Getenv("RERANKER_LOAD_DIR"); v != "" {
		cfg.LoadDir = v
	}
	return cfg
}

// Model returns the identifier of the model in use: the fine-tuned dir when
// set, the base model otherwise.
func (c Config) Model() string {
	if c.LoadDir != "" {
		return c.LoadDir
	}
	return c.Base
}

// #endregion config
