package rollout

import (
	"context"

	"github.com/azul-practice/core/pkg/model"
	"github.com/azul-practice/core/pkg/policy"
	"github.com/azul-practice/core/pkg/rng"
	"github.com/azul-practice/core/pkg/rules"
)

// DefaultMaxActions is the rollout safety bound used when Config.MaxActions
// is left zero.
const DefaultMaxActions = 300

// PolicyPair names the active-player policy and the opponent policy for a
// rollout.
type PolicyPair struct {
	ActivePlayerPolicy policy.Policy
	OpponentPolicy     policy.Policy
}

// Config controls one Rollout call.
type Config struct {
	Pair PolicyPair

	// MaxActions bounds the number of apply_action calls before the rollout
	// gives up. Zero means DefaultMaxActions.
	MaxActions int

	// StopAtFirstResolve ends the rollout immediately after the first
	// resolve_end_of_round call instead of continuing to game end. The
	// evaluator sets this so a candidate's utility reflects the nearest
	// round outcome rather than a full game simulated under self-play
	// policies; a generic full-game simulation leaves this false.
	StopAtFirstResolve bool
}

// Features are the dynamic per-candidate signals the evaluator accumulates
// across rollout samples. TookFirstPlayerToken and TilesAcquired are static
// properties of the candidate action itself and are filled in by the
// evaluator, not by Rollout.
type Features struct {
	FloorPenalty           int `json:"floor_penalty"`
	PatternLineCompletions int `json:"pattern_line_completions"`
	TilesWasted            int `json:"tiles_wasted"`
}

// Result is everything a Rollout call produces.
type Result struct {
	FinalState  *model.State
	Actions     []model.DraftAction
	FinalScores [model.NumPlayers]int
	Features    Features

	// Resolved reports whether at least one resolve_end_of_round ran. If
	// false, MaxActions was exhausted mid-round and Features is zero-valued.
	Resolved bool
}

// Rollout simulates forward from state using cfg.Pair, tracking Features
// for subjectPlayer, until the game ends, MaxActions is exhausted, or (when
// StopAtFirstResolve is set) the first end-of-round resolution completes.
// state is never mutated; Rollout is deterministic given (state,
// subjectPlayer, cfg, r) — reusing the same *rng.RNG sequence twice
// reproduces the same action sequence and final state.
func Rollout(ctx context.Context, state *model.State, subjectPlayer int, cfg Config, r *rng.RNG) (*Result, error) {
	maxActions := cfg.MaxActions
	if maxActions <= 0 {
		maxActions = DefaultMaxActions
	}

	working := state.Clone()
	result := &Result{}

	for i := 0; i < maxActions; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if working.GameEnded() {
			break
		}

		if working.DraftingComplete() {
			result.Features = snapshotFeatures(working, subjectPlayer)
			next, err := rules.ResolveEndOfRound(working)
			if err != nil {
				return nil, err
			}
			working = next
			result.Resolved = true
			if cfg.StopAtFirstResolve {
				break
			}
			continue
		}

		chooser := cfg.Pair.OpponentPolicy
		if working.ActivePlayerID == subjectPlayer {
			chooser = cfg.Pair.ActivePlayerPolicy
		}

		legal, err := rules.LegalActions(working, working.ActivePlayerID)
		if err != nil {
			return nil, err
		}
		action := chooser.Choose(working, legal, r)

		next, err := rules.Apply(working, action)
		if err != nil {
			return nil, err
		}
		working = next
		result.Actions = append(result.Actions, action)
	}

	result.FinalState = working
	for i, p := range working.Players {
		result.FinalScores[i] = p.Score
	}
	return result, nil
}

// snapshotFeatures reads the dynamic per-round signals for playerID right
// before an end-of-round resolution consumes them (the floor line and
// pattern-line completion state are both cleared by resolve, so this must
// run beforehand).
func snapshotFeatures(state *model.State, playerID int) Features {
	player := state.Players[playerID]

	n := player.FloorLine.Len()
	if n > len(model.FloorPenalty) {
		n = len(model.FloorPenalty)
	}
	penalty := 0
	for i := 0; i < n; i++ {
		penalty += -model.FloorPenalty[i]
	}

	completions := 0
	for _, line := range player.PatternLines {
		if line.IsComplete() {
			completions++
		}
	}

	return Features{
		FloorPenalty:           penalty,
		PatternLineCompletions: completions,
		TilesWasted:            len(player.FloorLine.Tiles),
	}
}
