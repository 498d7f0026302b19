package generator

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/azul-practice/core/pkg/genconfig"
	"github.com/azul-practice/core/pkg/model"
	"github.com/azul-practice/core/pkg/quality"
	"github.com/azul-practice/core/pkg/rng"
	"github.com/azul-practice/core/pkg/rollout"
	"github.com/azul-practice/core/pkg/rules"
)

const (
	maxRoundsPerAttempt  = 10
	overshootTolerance   = 10
	maxSeedAttempts      = 500
	snapshotSampleStride = 3
)

// GenerateScenario builds a practice scenario by self-play, retrying across
// seeds until a sampled snapshot matches any requested stage targets and
// passes cfg.FilterConfig. It never mutates anything the caller holds;
// every intermediate state is its own clone.
func GenerateScenario(ctx context.Context, cfg genconfig.GeneratorConfig) (*model.State, error) {
	activePolicy, err := cfg.PolicyMix.Resolve()
	if err != nil {
		return nil, err
	}
	pair := rollout.PolicyPair{ActivePlayerPolicy: activePolicy, OpponentPolicy: activePolicy}

	baseSeed := cfg.Seed
	if baseSeed == "" {
		baseSeed = randomSeedString()
	}
	hash := configHash(cfg)

	for attempt := 0; attempt < maxSeedAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		attemptSeed := fmt.Sprintf("%s#%d", baseSeed, attempt)
		r := rng.NewRNG(seedFromString(attemptSeed), "generator.round", hash)

		state := model.NewRoundStartState()
		state.ScenarioSeed = attemptSeed
		rules.RefillFactories(state, r)

		accepted, err := runAttempt(ctx, state, pair, r, cfg)
		if err != nil {
			return nil, err
		}
		if accepted != nil {
			return accepted, nil
		}
	}

	return nil, model.Errorf(model.ErrGenerationExhausted,
		"exhausted %d seed attempts without a snapshot matching the requested stage and filters", maxSeedAttempts).
		WithContext("target_game_stage", cfg.TargetGameStage).
		WithContext("target_round_stage", cfg.TargetRoundStage).
		WithContext("attempts", maxSeedAttempts)
}

// runAttempt plays full rounds until the across-game stage reaches
// cfg.TargetGameStage, then samples the round that reaches it for an
// accepted snapshot. It returns (nil, nil) when this seed should be
// abandoned in favor of the next one.
func runAttempt(ctx context.Context, state *model.State, pair rollout.PolicyPair, r *rng.RNG, cfg genconfig.GeneratorConfig) (*model.State, error) {
	roundsCompleted := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		stage := model.GameStageForFilledCells(state.FilledWallCells())
		if reachedTarget(stage, cfg.TargetGameStage) {
			snapshots, err := sampleFinalRound(ctx, state, pair, r)
			if err != nil {
				return nil, err
			}
			return pickBest(snapshots, cfg), nil
		}

		result, err := rollout.Rollout(ctx, state, 0, rollout.Config{Pair: pair, StopAtFirstResolve: true}, r)
		if err != nil {
			return nil, err
		}
		if !result.Resolved {
			return nil, nil
		}
		state = result.FinalState
		roundsCompleted++
		if roundsCompleted > maxRoundsPerAttempt {
			return nil, nil
		}
		if overshot(state.FilledWallCells(), cfg.TargetGameStage) {
			return nil, nil
		}
	}
}

// reachedTarget reports whether stage satisfies target, treating an absent
// target as always satisfied by the current stage.
func reachedTarget(stage model.GameStage, target model.GameStage) bool {
	return target == "" || stage == target
}

// stageUpperBound returns the inclusive filled-wall-cell upper bound for a
// game stage and whether one exists; LATE has no upper bound.
func stageUpperBound(stage model.GameStage) (int, bool) {
	switch stage {
	case model.GameEarly:
		return 8, true
	case model.GameMid:
		return 17, true
	default:
		return 0, false
	}
}

// overshot reports whether filled exceeds target's upper bound by more than
// overshootTolerance.
func overshot(filled int, target model.GameStage) bool {
	if target == "" {
		return false
	}
	upper, ok := stageUpperBound(target)
	if !ok {
		return false
	}
	return filled > upper+overshootTolerance
}

// sampleFinalRound drafts the round currently at the target stage, recording
// a snapshot every snapshotSampleStride actions plus the state left by the
// final action (or the starting state if no action was taken), without
// resolving the round. state is cloned
// before use; the caller's value is untouched.
func sampleFinalRound(ctx context.Context, state *model.State, pair rollout.PolicyPair, r *rng.RNG) ([]*model.State, error) {
	working := state.Clone()
	var snapshots []*model.State
	actionCount := 0

	for !working.DraftingComplete() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		legal, err := rules.LegalActions(working, working.ActivePlayerID)
		if err != nil {
			return nil, err
		}
		if len(legal) == 0 {
			break
		}

		chooser := pair.OpponentPolicy
		if working.ActivePlayerID == 0 {
			chooser = pair.ActivePlayerPolicy
		}
		action := chooser.Choose(working, legal, r)

		next, err := rules.Apply(working, action)
		if err != nil {
			return nil, err
		}
		working = next
		actionCount++

		if actionCount%snapshotSampleStride == 0 {
			snapshots = append(snapshots, snapshotOf(working))
		}
	}

	if actionCount == 0 || actionCount%snapshotSampleStride != 0 {
		snapshots = append(snapshots, snapshotOf(working))
	}
	return snapshots, nil
}

func snapshotOf(state *model.State) *model.State {
	snap := state.Clone()
	snap.ScenarioGameStage = model.GameStageForFilledCells(snap.FilledWallCells())
	return snap
}

// pickBest selects the snapshot with the richest legal-action branching
// among those matching cfg.TargetRoundStage (when requested) and passing
// cfg.FilterConfig, or nil if none qualify.
func pickBest(snapshots []*model.State, cfg genconfig.GeneratorConfig) *model.State {
	var best *model.State
	bestLegalCount := -1

	for _, snap := range snapshots {
		if cfg.TargetRoundStage != "" && snap.DraftPhaseProgress != cfg.TargetRoundStage {
			continue
		}
		legal, err := rules.LegalActions(snap, snap.ActivePlayerID)
		if err != nil {
			continue
		}
		report := quality.Evaluate(legal, cfg.FilterConfig)
		if !report.Passed {
			continue
		}
		if len(legal) > bestLegalCount {
			bestLegalCount = len(legal)
			best = snap
		}
	}
	return best
}

// configHash summarizes cfg's stage targets, policy mix, and filter
// thresholds for use as the rng.NewRNG configHash parameter.
func configHash(cfg genconfig.GeneratorConfig) []byte {
	data, err := json.Marshal(cfg)
	if err != nil {
		h := sha256.Sum256([]byte(cfg.Seed))
		return h[:]
	}
	h := sha256.Sum256(data)
	return h[:]
}

// seedFromString derives a uint64 master seed from an arbitrary seed string,
// the same sha256-then-truncate convention pkg/rules.RefillRNG uses.
func seedFromString(s string) uint64 {
	h := sha256.Sum256([]byte(s))
	return binary.BigEndian.Uint64(h[:8])
}

// randomSeedString auto-generates a seed when the caller supplies none,
// from the current time.
func randomSeedString() string {
	now := time.Now().UnixNano()
	if now < 0 {
		now = -now
	}
	if now == 0 {
		now = 1
	}
	return fmt.Sprintf("auto-%x", uint64(now))
}
