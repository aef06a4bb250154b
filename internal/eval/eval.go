// Package eval measures how well the current reranker agrees with recorded
// human preferences and logs a point-in-time summary per run.
package eval

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/danielpatrickdp/coderank/go-ranker/internal/reranker"
	"github.com/danielpatrickdp/coderank/go-ranker/internal/store"
)

// #region interfaces
// FeedbackSource lists recent feedback records; *store.Store satisfies it.
type FeedbackSource interface {
	ListRecentFeedback(limit int) ([]store.FeedbackRecord, error)
}

// SummarySink appends evaluation summaries; *store.Store satisfies it.
type SummarySink interface {
	InsertEvaluation(store.EvaluationRecord) (string, error)
}

// #endregion interfaces

// #region evaluator
// Evaluator rescores recent feedback with the current model and compares
// the implied preference against the human one.
type Evaluator struct {
	scorer reranker.Scorer
	source FeedbackSource
	sink   SummarySink
	config EvaluatorConfig
}

// NewEvaluator wires an evaluator from its collaborators.
func NewEvaluator(scorer reranker.Scorer, source FeedbackSource, sink SummarySink, config EvaluatorConfig) *Evaluator {
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	return &Evaluator{scorer: scorer, source: source, sink: sink, config: config}
}

// #endregion evaluator

// #region run
// Run evaluates up to limit recent feedback records. A failed or empty
// listing, or a sample with no usable rows, yields ErrNoData and writes
// nothing; it is never reported as a zero-accuracy summary.
func (e *Evaluator) Run(ctx context.Context, limit int) (Report, error) {
	recs, err := e.source.ListRecentFeedback(limit)
	if err != nil {
		e.config.Logger.Warn("feedback listing failed, treating as no data", zap.Error(err))
		return Report{}, ErrNoData
	}

	var rows []Row
	for _, rec := range recs {
		if rec.Query == "" || rec.TextA == "" || rec.TextB == "" {
			continue
		}

		scores, err := e.scorer.ScoreBatch(ctx, rec.Query, []string{rec.TextA, rec.TextB})
		if err != nil {
			e.config.Logger.Warn("scoring failed, skipping record",
				zap.String("feedback_id", rec.ID),
				zap.Error(err))
			continue
		}

		row := Row{
			Query:             rec.Query,
			ScoreA:            scores[0],
			ScoreB:            scores[1],
			HumanPreferred:    rec.Preferred,
			RerankerPreferred: impliedPreference(scores[0], scores[1]),
		}
		// A Tie never equals "A" or "B": it always counts as disagreement.
		row.Match = row.RerankerPreferred == row.HumanPreferred
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return Report{}, ErrNoData
	}

	matches := 0
	scoresA := make([]float64, len(rows))
	scoresB := make([]float64, len(rows))
	for i, row := range rows {
		if row.Match {
			matches++
		}
		scoresA[i] = row.ScoreA
		scoresB[i] = row.ScoreB
	}

	report := Report{
		Accuracy:       float64(matches) / float64(len(rows)) * 100,
		PairsEvaluated: len(rows),
		Model:          e.config.Model,
		Rows:           rows,
	}
	if distinct(scoresA) > 1 || distinct(scoresB) > 1 {
		report.KendallTau = kendallTau(scoresA, scoresB)
		report.SpearmanRho = spearmanRho(scoresA, scoresB)
		report.CorrelationMeaningful = true
	}

	e.persist(report)
	return report, nil
}

// persist appends the summary, best-effort.
func (e *Evaluator) persist(report Report) {
	_, err := e.sink.InsertEvaluation(store.EvaluationRecord{
		Timestamp:      time.Now().UTC().Format("2006-01-02 15:04:05"),
		Accuracy:       round3(report.Accuracy),
		PairsEvaluated: report.PairsEvaluated,
		KendallTau:     round3(report.KendallTau),
		SpearmanRho:    round3(report.SpearmanRho),
		Model:          e.config.Model,
	})
	if err != nil {
		e.config.Logger.Warn("store evaluation summary failed", zap.Error(err))
	}
}

// #endregion run

// #region helpers
// impliedPreference derives the reranker's choice from the two scores.
func impliedPreference(scoreA, scoreB float64) string {
	switch {
	case scoreA > scoreB:
		return "A"
	case scoreB > scoreA:
		return "B"
	default:
		return "Tie"
	}
}

func distinct(xs []float64) int {
	seen := make(map[float64]struct{}, len(xs))
	for _, x := range xs {
		seen[x] = struct{}{}
	}
	return len(seen)
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}

// #endregion helpers
