package curator

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
)

// #region export
// Export writes the pairs to a line-delimited JSON file and a CSV file with
// header query,pos,neg,agent_pos,agent_neg. Both outputs carry the same rows
// in the same order: one pair, one line in each. Returns the row count.
func Export(pairs []TrainingPair, jsonlPath, csvPath string) (int, error) {
	jf, err := os.Create(jsonlPath)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", jsonlPath, err)
	}
	defer jf.Close()

	cf, err := os.Create(csvPath)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", csvPath, err)
	}
	defer cf.Close()

	enc := json.NewEncoder(jf)
	cw := csv.NewWriter(cf)
	if err := cw.Write([]string{"query", "pos", "neg", "agent_pos", "agent_neg"}); err != nil {
		return 0, fmt.Errorf("write csv header: %w", err)
	}

	for i, p := range pairs {
		if err := enc.Encode(p); err != nil {
			return 0, fmt.Errorf("write jsonl row %d: %w", i, err)
		}
		if err := cw.Write([]string{p.Query, p.Pos, p.Neg, p.AgentPos, p.AgentNeg}); err != nil {
			return 0, fmt.Errorf("write csv row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("flush csv: %w", err)
	}
	return len(pairs), nil
}

// #endregion export
