package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/danielpatrickdp/coderank/go-ranker/internal/eval"
	"github.com/danielpatrickdp/coderank/go-ranker/internal/reranker"
	"github.com/danielpatrickdp/coderank/go-ranker/internal/store"
)

// #region main
func main() {
	dbPath := flag.String("db", "ranker.db", "path to the feedback database")
	limit := flag.Int("limit", 200, "maximum number of recent feedback rows to evaluate")
	flag.Parse()

	if err := run(*dbPath, *limit); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region evaluate
func run(dbPath string, limit int) error {
	st, err := store.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer st.Close()

	scorer := reranker.NewClient(reranker.DefaultConfig())
	evaluator := eval.NewEvaluator(scorer, st, st, eval.EvaluatorConfig{Model: scorer.Model()})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	report, err := evaluator.Run(ctx, limit)
	if err != nil {
		if errors.Is(err, eval.ErrNoData) {
			fmt.Println("No feedback data to evaluate.")
			return nil
		}
		return fmt.Errorf("evaluate: %w", err)
	}

	fmt.Printf("Model: %s\n", report.Model)
	fmt.Printf("Pairs evaluated: %d\n", report.PairsEvaluated)
	fmt.Printf("Accuracy: %.1f%%\n", report.Accuracy)
	if report.CorrelationMeaningful {
		fmt.Printf("Kendall tau: %.3f\n", report.KendallTau)
		fmt.Printf("Spearman rho: %.3f\n", report.SpearmanRho)
	} else {
		fmt.Println("Rank correlations not meaningful (constant scores).")
	}

	fmt.Println("\nPer-pair results:")
	for _, row := range report.Rows {
		mark := "MISS"
		if row.Match {
			mark = "OK"
		}
		fmt.Printf("  [%s] human=%s reranker=%s scoreA=%.3f scoreB=%.3f %s\n",
			mark, row.HumanPreferred, row.RerankerPreferred, row.ScoreA, row.ScoreB, truncate(row.Query, 60))
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// #endregion evaluate
