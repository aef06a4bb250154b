package round

import (
	"errors"

	"github.com/danielpatrickdp/coderank/go-ranker/internal/agents"
)

// #region phase
// Phase is the feedback loop's position within one round.
type Phase string

const (
	PhaseGenerating    Phase = "generating"
	PhasePaired        Phase = "paired"
	PhaseAwaitingHuman Phase = "awaiting_human"
	PhaseRecording     Phase = "recording"
	PhaseReranking     Phase = "reranking"
	PhaseDone          Phase = "done"
)

// #endregion phase

// #region errors
var (
	// ErrInsufficientCandidates indicates fewer than two distinct-agent
	// candidates exist, so no comparison pair can be formed.
	ErrInsufficientCandidates = errors.New("fewer than two distinct-agent candidates")

	// ErrInvalidChoice indicates human input outside {"A", "B"}. The round
	// stays suspended and resumable.
	ErrInvalidChoice = errors.New(`choice must be "A" or "B"`)

	// ErrInvalidTransition indicates an operation invoked outside its
	// required phase. Surfaced to the caller, never silently absorbed.
	ErrInvalidTransition = errors.New("operation invalid in current phase")
)

// #endregion errors

// #region pair
// PairEntry is one side of a comparison pair.
type PairEntry struct {
	Agent string
	Text  string
}

// Pair is the round's A/B comparison. A and B always carry different agent
// labels.
type Pair struct {
	A PairEntry
	B PairEntry
}

// #endregion pair

// #region ranked
// Ranked is one candidate with its reranker score, in final rank order.
type Ranked struct {
	Agent string
	Text  string
	Score float64
}

// #endregion ranked

// #region round
// Round is the transient state of one in-flight round. It is owned by the
// caller that started it and shares nothing with other rounds; only
// FeedbackRecord and ScoreRecord rows survive it.
type Round struct {
	ID          string
	Query       string
	Responses   []agents.Candidate // first-seen order, one per configured style
	Pair        *Pair
	HumanChoice string // "" until a valid choice was submitted
	Ranked      []Ranked

	phase Phase
}

// Phase reports the round's current phase.
func (r *Round) Phase() Phase {
	return r.phase
}

// AwaitingHuman reports whether the round is suspended on a human choice.
// The suspension is inert state: nothing times out and nothing polls; the
// round resumes only when the caller submits a choice.
func (r *Round) AwaitingHuman() bool {
	return r.phase == PhaseAwaitingHuman
}

// #endregion round
