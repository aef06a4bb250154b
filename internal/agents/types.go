package agents

import (
	"context"
	"os"
	"strconv"
	"time"
)

// #region style
// Style is a labeled generation configuration producing one candidate per query.
type Style string

const (
	StyleConcise   Style = "concise"
	StyleExplainer Style = "explainer"
	StyleOptimizer Style = "optimizer"
)

// DefaultStyles returns the standard three-agent lineup, in label order.
func DefaultStyles() []Style {
	return []Style{StyleConcise, StyleExplainer, StyleOptimizer}
}

// #endregion style

// #region generator-interface
// Generator abstracts the generation service so the loop can run against the
// live endpoint or the deterministic mock. One attempt per call, no retries.
type Generator interface {
	Generate(ctx context.Context, style Style, query string) (string, error)
}

// #endregion generator-interface

// #region candidate
// Candidate is one labeled generation result. Text may be an error-marker
// string when the style's call failed.
type Candidate struct {
	Agent string
	Text  string
}

// #endregion candidate

// #region config
// Config holds generation endpoint parameters.
// Reads from env vars: HF_API_URL, HF_API_TOKEN, GEN_TIMEOUT_SECONDS.
type Config struct {
	Endpoint string
	Token    string
	Timeout  time.Duration
}

// DefaultConfig returns the default generation configuration.
func DefaultConfig() Config {
	cfg := Config{
		Timeout: 120 * time.Second,
	}
	if v := os.Getenv("HF_API_URL"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("HF_API_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("GEN_TIMEOUT_SECONDS"); v != "" {
		if sec, err := strconv.Atoi(v); err == nil && sec > 0 {
			cfg.Timeout = time.Duration(sec) * time.Second
		}
	}
	return cfg
}

// #endregion config
