package round

import (
	"math/rand"

	"github.com/danielpatrickdp/coderank/go-ranker/internal/agents"
)

// #region distinct
// distinctAgents counts distinct agent labels. Labels match exactly; no
// case or whitespace normalization.
func distinctAgents(cands []agents.Candidate) int {
	seen := make(map[string]struct{}, len(cands))
	for _, c := range cands {
		seen[c.Agent] = struct{}{}
	}
	return len(seen)
}

// #endregion distinct

// #region pick-pair
// pickPair draws two entries with different agent labels uniformly at random
// without replacement. The caller has already guaranteed at least two
// distinct labels, so the redraw on a label collision terminates.
func pickPair(cands []agents.Candidate, rng *rand.Rand) (PairEntry, PairEntry) {
	for {
		i := rng.Intn(len(cands))
		j := rng.Intn(len(cands) - 1)
		if j >= i {
			j++
		}
		if cands[i].Agent == cands[j].Agent {
			continue
		}
		return PairEntry{Agent: cands[i].Agent, Text: cands[i].Text},
			PairEntry{Agent: cands[j].Agent, Text: cands[j].Text}
	}
}

// #endregion pick-pair
