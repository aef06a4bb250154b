package agents

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// #region wire-types
type genParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

type genRequest struct {
	Inputs     string        `json:"inputs"`
	Parameters genParameters `json:"parameters"`
}

type genMessage struct {
	GeneratedText string `json:"generated_text"`
}

// #endregion wire-types

// #region client
// EndpointClient calls a hosted HF-style inference endpoint. One attempt per
// call; the HTTP client timeout bounds the wait.
type EndpointClient struct {
	endpoint string
	token    string
	httpc    *http.Client
}

// NewEndpointClient builds a client from config.
func NewEndpointClient(cfg Config) *EndpointClient {
	return &EndpointClient{
		endpoint: cfg.Endpoint,
		token:    cfg.Token,
		httpc:    &http.Client{Timeout: cfg.Timeout},
	}
}

// #endregion client

// #region generate
// Generate sends the style-formatted prompt and returns the generated text.
func (c *EndpointClient) Generate(ctx context.Context, style Style, query string) (string, error) {
	body, err := json.Marshal(genRequest{
		Inputs: PromptFor(style, query),
		Parameters: genParameters{
			MaxNewTokens:   900,
			Temperature:    0.35,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("call endpoint: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("endpoint status %d", resp.StatusCode)
	}

	return parseGenerated(raw)
}

// parseGenerated handles both HF response shapes: a list of messages or a
// single message object.
func parseGenerated(raw []byte) (string, error) {
	var list []genMessage
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 && list[0].GeneratedText != "" {
		return strings.TrimSpace(list[0].GeneratedText), nil
	}
	var msg genMessage
	if err := json.Unmarshal(raw, &msg); err == nil && msg.GeneratedText != "" {
		return strings.TrimSpace(msg.GeneratedText), nil
	}
	return "", fmt.Errorf("unexpected response shape: %s", truncate(string(raw), 120))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// #endregion generate
