// Package agents generates candidate responses across the configured agent
// styles. The live endpoint and the offline mock are interchangeable
// Generator implementations selected once at startup.
package agents

import (
	"context"
	"fmt"
)

// #region mock
// Mock is the deterministic offline generator.
type Mock struct{}

// Generate returns a fixed style-tagged text.
func (Mock) Generate(_ context.Context, style Style, _ string) (string, error) {
	switch style {
	case StyleConcise, StyleExplainer, StyleOptimizer:
		return fmt.Sprintf("# Mock: %s response", style), nil
	default:
		return "# Mock: generic response", nil
	}
}

// #endregion mock

// #region select
// NewGenerator picks the live endpoint client when both endpoint and token
// are configured, the mock otherwise.
func NewGenerator(cfg Config) Generator {
	if cfg.Endpoint != "" && cfg.Token != "" {
		return NewEndpointClient(cfg)
	}
	return Mock{}
}

// #endregion select

// #region fan-out
// GenerateAll invokes the generator once per style, best-effort: a failed
// style degrades to an error-marker text and never aborts the others.
// Results keep style order; labels are unique within the round.
func GenerateAll(ctx context.Context, g Generator, query string, styles []Style) []Candidate {
	out := make([]Candidate, 0, len(styles))
	for i, style := range styles {
		label := fmt.Sprintf("Agent-%d-%s", i+1, style)
		text, err := g.Generate(ctx, style, query)
		if err != nil {
			text = fmt.Sprintf("# [agent %s failed: %v]", style, err)
		}
		out = append(out, Candidate{Agent: label, Text: text})
	}
	return out
}

// #endregion fan-out
