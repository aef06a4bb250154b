package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/danielpatrickdp/coderank/go-ranker/internal/agents"
	"github.com/danielpatrickdp/coderank/go-ranker/internal/reranker"
	"github.com/danielpatrickdp/coderank/go-ranker/internal/round"
	"github.com/danielpatrickdp/coderank/go-ranker/internal/store"
)

// #region main
func main() {
	dbPath := envOr("RANKER_DB", "ranker.db")

	st, err := store.NewStore(dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()

	gen := agents.NewGenerator(agents.DefaultConfig())
	scorer := reranker.NewClient(reranker.DefaultConfig())
	loop := round.NewLoop(gen, scorer, st, round.DefaultLoopConfig())

	fmt.Println("Response Ranking Loop ready.")
	fmt.Printf("  DB: %s | Scorer: %s\n", dbPath, scorer.Model())
	fmt.Println("Type a coding query (or 'quit' to exit):")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if query == "quit" || query == "exit" {
			break
		}

		if err := runRound(loop, scanner, query); err != nil {
			log.Printf("round error: %v", err)
		}
	}
}

// #endregion main

// #region round
// runRound drives one full round. Timeouts cover the generation and
// reranking calls only; the wait for human input never expires.
func runRound(loop *round.Loop, scanner *bufio.Scanner, query string) error {
	genCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	r := loop.StartRound(genCtx, query)
	cancel()

	pair, err := loop.SelectPair(r)
	if err != nil {
		if errors.Is(err, round.ErrInsufficientCandidates) {
			fmt.Println("Not enough distinct responses to compare.")
			return nil
		}
		return fmt.Errorf("select pair: %w", err)
	}

	fmt.Println("\n--- Response A ---")
	fmt.Println(pair.A.Text)
	fmt.Println("\n--- Response B ---")
	fmt.Println(pair.B.Text)

	fmt.Print("\nWhich is better? [A/b] ")
	choice := "A"
	if scanner.Scan() && strings.EqualFold(strings.TrimSpace(scanner.Text()), "B") {
		choice = "B"
	}

	if err := loop.SubmitHumanChoice(r, choice); err != nil {
		return fmt.Errorf("submit choice: %w", err)
	}

	rerankCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	ranked, err := loop.Rerank(rerankCtx, r)
	cancel()
	if err != nil {
		return fmt.Errorf("rerank: %w", err)
	}

	fmt.Println("\nTop responses:")
	for i, cand := range ranked {
		if i >= 3 {
			break
		}
		fmt.Printf("  %d. %s (%.3f)\n", i+1, cand.Agent, cand.Score)
	}
	fmt.Println()
	return nil
}

// #endregion round

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
