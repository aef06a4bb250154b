// Package round implements the human-in-the-loop ranking round: generation
// fan-out, pair selection, the human-choice suspend point, feedback
// recording, and reranking. Phases advance generating → paired →
// awaiting_human → recording → reranking → done; awaiting_human is the only
// suspend point and resumption is driven entirely by the caller.
package round

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/danielpatrickdp/coderank/go-ranker/internal/agents"
	"github.com/danielpatrickdp/coderank/go-ranker/internal/reranker"
	"github.com/danielpatrickdp/coderank/go-ranker/internal/store"
)

// #region sink-interface
// Sink is the append-only persistence surface the loop writes through.
// *store.Store satisfies it; tests inject fakes. Writes are best-effort:
// a failed append is reported and the in-memory round stays authoritative.
type Sink interface {
	InsertResponse(store.ResponseRecord) (string, error)
	InsertFeedback(store.FeedbackRecord) (string, error)
	InsertRerankerScore(store.ScoreRecord) (string, error)
}

// #endregion sink-interface

// #region config
// LoopConfig holds loop construction knobs.
type LoopConfig struct {
	Styles []agents.Style
	Rand   *rand.Rand  // pair selection source; nil seeds from wall clock
	Logger *zap.Logger // nil means no-op
}

// DefaultLoopConfig returns the standard three-style configuration.
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{Styles: agents.DefaultStyles()}
}

// #endregion config

// #region loop
// Loop owns round orchestration. It holds no per-round state: every round is
// carried by its *Round, so independent rounds may run concurrently against
// one Loop.
type Loop struct {
	gen    agents.Generator
	scorer reranker.Scorer
	sink   Sink
	config LoopConfig
}

// NewLoop wires a loop from its collaborators.
func NewLoop(gen agents.Generator, scorer reranker.Scorer, sink Sink, config LoopConfig) *Loop {
	if len(config.Styles) == 0 {
		config.Styles = agents.DefaultStyles()
	}
	if config.Rand == nil {
		config.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	return &Loop{gen: gen, scorer: scorer, sink: sink, config: config}
}

// #endregion loop

// #region start-round
// StartRound generates one candidate per configured style, best-effort: a
// failed style degrades to its error-marker text and never aborts the
// others. Every candidate is appended to the store. The round lands in
// PhasePaired, ready for pair selection.
func (l *Loop) StartRound(ctx context.Context, query string) *Round {
	r := &Round{
		ID:    uuid.New().String(),
		Query: query,
		phase: PhaseGenerating,
	}

	r.Responses = agents.GenerateAll(ctx, l.gen, query, l.config.Styles)

	for _, c := range r.Responses {
		if _, err := l.sink.InsertResponse(store.ResponseRecord{
			Query: query,
			Agent: c.Agent,
			Text:  c.Text,
		}); err != nil {
			l.config.Logger.Warn("store response failed",
				zap.String("round_id", r.ID),
				zap.String("agent", c.Agent),
				zap.Error(err))
		}
	}

	r.phase = PhasePaired
	return r
}

// #endregion start-round

// #region select-pair
// SelectPair picks two distinct-agent candidates uniformly at random without
// replacement and suspends the round on the human choice.
func (l *Loop) SelectPair(r *Round) (Pair, error) {
	if r.phase != PhasePaired {
		return Pair{}, fmt.Errorf("select pair in phase %s: %w", r.phase, ErrInvalidTransition)
	}
	if distinctAgents(r.Responses) < 2 {
		return Pair{}, fmt.Errorf("%d candidates: %w", len(r.Responses), ErrInsufficientCandidates)
	}

	a, b := pickPair(r.Responses, l.config.Rand)
	r.Pair = &Pair{A: a, B: b}
	r.phase = PhaseAwaitingHuman
	return *r.Pair, nil
}

// #endregion select-pair

// #region submit-choice
// SubmitHumanChoice resumes a suspended round with the operator's decision.
// Input is trimmed and upper-cased; anything but "A" or "B" fails with
// ErrInvalidChoice and leaves the round suspended. A second submission after
// a successful one fails with ErrInvalidTransition, so no duplicate feedback
// row is ever written. On success the round records feedback and advances
// straight to PhaseReranking.
func (l *Loop) SubmitHumanChoice(r *Round, choice string) error {
	if r.phase != PhaseAwaitingHuman {
		return fmt.Errorf("submit choice in phase %s: %w", r.phase, ErrInvalidTransition)
	}

	norm := strings.ToUpper(strings.TrimSpace(choice))
	if norm != "A" && norm != "B" {
		return fmt.Errorf("%q: %w", choice, ErrInvalidChoice)
	}

	r.HumanChoice = norm
	r.phase = PhaseRecording

	if _, err := l.sink.InsertFeedback(store.FeedbackRecord{
		Query:     r.Query,
		AgentA:    r.Pair.A.Agent,
		TextA:     r.Pair.A.Text,
		AgentB:    r.Pair.B.Agent,
		TextB:     r.Pair.B.Text,
		Preferred: norm,
	}); err != nil {
		l.config.Logger.Warn("store feedback failed",
			zap.String("round_id", r.ID),
			zap.Error(err))
	}

	r.phase = PhaseReranking
	return nil
}

// #endregion submit-choice

// #region rerank
// Rerank scores every candidate of the round in one batch call and returns
// the ranked list, highest score first, ties keeping first-seen order. One
// score row per candidate is appended for offline analysis. A scorer failure
// leaves the round in PhaseReranking so the caller may retry.
func (l *Loop) Rerank(ctx context.Context, r *Round) ([]Ranked, error) {
	if r.phase != PhaseReranking {
		return nil, fmt.Errorf("rerank in phase %s: %w", r.phase, ErrInvalidTransition)
	}

	texts := make([]string, len(r.Responses))
	for i, c := range r.Responses {
		texts[i] = c.Text
	}

	scores, err := l.scorer.ScoreBatch(ctx, r.Query, texts)
	if err != nil {
		return nil, fmt.Errorf("score candidates: %w", err)
	}

	ranked := make([]Ranked, len(r.Responses))
	for i, c := range r.Responses {
		ranked[i] = Ranked{Agent: c.Agent, Text: c.Text, Score: scores[i]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	for _, rk := range ranked {
		if _, err := l.sink.InsertRerankerScore(store.ScoreRecord{
			Query: r.Query,
			Agent: rk.Agent,
			Score: rk.Score,
			Text:  rk.Text,
		}); err != nil {
			l.config.Logger.Warn("store reranker score failed",
				zap.String("round_id", r.ID),
				zap.String("agent", rk.Agent),
				zap.Error(err))
		}
	}

	r.Ranked = ranked
	r.phase = PhaseDone
	return ranked, nil
}

// #endregion rerank
