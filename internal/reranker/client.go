// Package reranker is the thin client to the cross-encoder scoring service.
// Scores are never cached: every call reflects the model parameters deployed
// at call time, so alignment drift across retrains stays observable.
package reranker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// #region wire-types
type scoreRequest struct {
	Query string   `json:"query"`
	Texts []string `json:"texts"`
}

type scoreResponse struct {
	Scores []float64 `json:"scores"`
}

// #endregion wire-types

// #region client
// Client calls the scoring service over HTTP.
type Client struct {
	url   string
	model string
	httpc *http.Client
}

// NewClient builds a scoring client from config.
func NewClient(cfg Config) *Client {
	return &Client{
		url:   cfg.URL,
		model: cfg.Model(),
		httpc: &http.Client{Timeout: cfg.Timeout},
	}
}

// Model returns the identifier of the model this client scores with.
func (c *Client) Model() string {
	return c.model
}

// #endregion client

// #region score
// Score scores a single candidate.
func (c *Client) Score(ctx context.Context, query, text string) (float64, error) {
	scores, err := c.ScoreBatch(ctx, query, []string{text})
	if err != nil {
		return 0, err
	}
	return scores[0], nil
}

// ScoreBatch scores all candidates in one call. The result is positionally
// aligned with texts; a count mismatch or non-numeric payload is an error,
// never a silent zero.
func (c *Client) ScoreBatch(ctx context.Context, query string, texts []string) ([]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	body, err := json.Marshal(scoreRequest{Query: query, Texts: texts})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call scorer: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scorer status %d", resp.StatusCode)
	}

	var out scoreResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode scores: %w", err)
	}
	if len(out.Scores) != len(texts) {
		return nil, fmt.Errorf("scorer returned %d scores for %d texts", len(out.Scores), len(texts))
	}
	return out.Scores, nil
}

// #endregion score
