package eval

import (
	"errors"

	"go.uber.org/zap"
)

// ErrNoData indicates there was nothing to evaluate: the feedback listing
// failed, was empty, or contained no usable rows. No summary is written.
var ErrNoData = errors.New("no feedback data to evaluate")

// #region config
// EvaluatorConfig holds evaluation knobs.
type EvaluatorConfig struct {
	Model  string      // identifier recorded in the summary
	Logger *zap.Logger // nil means no-op
}

// #endregion config

// #region row
// Row captures one evaluated feedback record.
type Row struct {
	Query             string
	ScoreA            float64
	ScoreB            float64
	HumanPreferred    string
	RerankerPreferred string // "A", "B", or "Tie"
	Match             bool
}

// #endregion row

// #region report
// Report is the outcome of one alignment evaluation run.
type Report struct {
	Accuracy              float64 // percent of exact matches
	PairsEvaluated        int
	KendallTau            float64
	SpearmanRho           float64
	CorrelationMeaningful bool // false when both score columns are constant
	Model                 string
	Rows                  []Row
}

// #endregion report
