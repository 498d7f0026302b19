package evaluator

import "github.com/azul-practice/core/pkg/model"

// Features are a candidate's accumulated per-rollout signals.
// FloorPenalty, PatternLineCompletions, and TilesWasted are means
// across the candidate's samples; TookFirstPlayerToken and TilesAcquired
// are static properties of the action itself, identical across samples.
type Features struct {
	FloorPenalty           float64 `json:"floor_penalty"`
	PatternLineCompletions float64 `json:"pattern_line_completions"`
	TilesWasted            float64 `json:"tiles_wasted"`
	TookFirstPlayerToken   bool    `json:"took_first_player_token"`
	TilesAcquired          int     `json:"tiles_acquired"`
}

// Candidate is one shortlisted action's rollout-sampling outcome.
type Candidate struct {
	Action  model.DraftAction `json:"action"`
	MeanEV  float64           `json:"mean_ev"`
	Samples int               `json:"samples"`
	Features Features         `json:"features"`
}

// Metadata reports how the evaluation itself ran.
type Metadata struct {
	ElapsedMs             int64 `json:"elapsed_ms,omitempty"`
	RolloutsRun           int   `json:"rollouts_run"`
	CandidatesEvaluated   int   `json:"candidates_evaluated"`
	TotalLegalActions     int   `json:"total_legal_actions"`
	Seed                  int64 `json:"seed"`
	CompletedWithinBudget bool  `json:"completed_within_budget"`
}

// Result is evaluate_best_move's return value.
type Result struct {
	BestAction   model.DraftAction `json:"best_action"`
	BestActionEV float64           `json:"best_action_ev"`
	Candidates   []Candidate       `json:"candidates"`
	Metadata     Metadata          `json:"metadata"`
}

// Grade classifies how close a user's action was to the best one found.
type Grade string

const (
	GradeExcellent Grade = "EXCELLENT"
	GradeGood      Grade = "GOOD"
	GradeOkay      Grade = "OKAY"
	GradeMiss      Grade = "MISS"
)

// GradeResult is grade_user_action's return value: the evaluate_best_move
// result plus the user's action, its EV, the delta, a Grade, and feedback
// bullets.
type GradeResult struct {
	Result
	UserAction      model.DraftAction `json:"user_action"`
	UserActionEV    float64           `json:"user_action_ev"`
	DeltaEV         float64           `json:"delta_ev"`
	Grade           Grade             `json:"grade"`
	FeedbackBullets []string          `json:"feedback_bullets"`
}

// gradeFromDelta classifies |deltaEV| against a fixed set of thresholds.
func gradeFromDelta(deltaEV float64) Grade {
	abs := deltaEV
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs <= 0.25:
		return GradeExcellent
	case abs <= 1.0:
		return GradeGood
	case abs <= 2.5:
		return GradeOkay
	default:
		return GradeMiss
	}
}
