// Package curator turns accumulated human feedback into training data for
// the offline scorer trainer: positive/negative pairs, labeled examples, and
// the two interchange files the trainer consumes.
package curator

import (
	"strings"

	"github.com/danielpatrickdp/coderank/go-ranker/internal/store"
)

// #region training-pair
// TrainingPair is one curated feedback row: the preferred text as positive,
// the other as negative.
type TrainingPair struct {
	Query    string `json:"query"`
	Pos      string `json:"pos"`
	Neg      string `json:"neg"`
	AgentPos string `json:"agent_pos"`
	AgentNeg string `json:"agent_neg"`
}

// #endregion training-pair

// #region example
// Example is one trainer input row: positive texts labeled 1.0, negative 0.0.
type Example struct {
	Query string
	Text  string
	Label float64
}

// #endregion example

// #region training-pairs
// TrainingPairs maps feedback records to training pairs. Records missing
// query, text_a, or text_b (blank after trimming) are skipped; malformed
// historical data must never abort the batch.
func TrainingPairs(records []store.FeedbackRecord) []TrainingPair {
	pairs := make([]TrainingPair, 0, len(records))
	for _, rec := range records {
		q := strings.TrimSpace(rec.Query)
		a := strings.TrimSpace(rec.TextA)
		b := strings.TrimSpace(rec.TextB)
		if q == "" || a == "" || b == "" {
			continue
		}

		p := TrainingPair{Query: q}
		if strings.ToUpper(rec.Preferred) == "B" {
			p.Pos, p.Neg = b, a
			p.AgentPos, p.AgentNeg = rec.AgentB, rec.AgentA
		} else {
			p.Pos, p.Neg = a, b
			p.AgentPos, p.AgentNeg = rec.AgentA, rec.AgentB
		}
		pairs = append(pairs, p)
	}
	return pairs
}

// #endregion training-pairs

// #region examples
// Examples expands pairs into labeled trainer examples, two per pair.
func Examples(pairs []TrainingPair) []Example {
	out := make([]Example, 0, 2*len(pairs))
	for _, p := range pairs {
		out = append(out,
			Example{Query: p.Query, Text: p.Pos, Label: 1.0},
			Example{Query: p.Query, Text: p.Neg, Label: 0.0},
		)
	}
	return out
}

// #endregion examples
