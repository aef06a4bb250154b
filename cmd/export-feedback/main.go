package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/danielpatrickdp/coderank/go-ranker/internal/curator"
	"github.com/danielpatrickdp/coderank/go-ranker/internal/store"
)

// #region main
func main() {
	dbPath := flag.String("db", "ranker.db", "path to the feedback database")
	limit := flag.Int("limit", 500, "maximum number of recent feedback rows to export")
	outDir := flag.String("out-dir", "training_data", "directory for pairs.jsonl and pairs.csv")
	flag.Parse()

	if err := run(*dbPath, *limit, *outDir); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export
func run(dbPath string, limit int, outDir string) error {
	st, err := store.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer st.Close()

	records, err := st.ListRecentFeedback(limit)
	if err != nil {
		return fmt.Errorf("list feedback: %w", err)
	}

	pairs := curator.TrainingPairs(records)
	if len(pairs) == 0 {
		fmt.Println("No usable feedback rows; nothing exported.")
		return nil
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	jsonlPath := filepath.Join(outDir, "pairs.jsonl")
	csvPath := filepath.Join(outDir, "pairs.csv")
	n, err := curator.Export(pairs, jsonlPath, csvPath)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	fmt.Printf("Exported %d training pairs (%d feedback rows scanned)\n", n, len(records))
	fmt.Printf("  %s\n  %s\n", jsonlPath, csvPath)
	return nil
}

// #endregion export
