package evaluator

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/azul-practice/core/pkg/genconfig"
	"github.com/azul-practice/core/pkg/model"
	"github.com/azul-practice/core/pkg/rng"
	"github.com/azul-practice/core/pkg/rollout"
	"github.com/azul-practice/core/pkg/rules"
)

// maxCandidateConcurrency bounds how many shortlisted actions sample
// their rollouts at once. Candidate work is independent (each owns its
// own state clone and its own *rng.RNG sub-seed, with no shared mutable
// state across goroutines), so the cap only exists to bound CPU and
// goroutine count, not for correctness.
func maxCandidateConcurrency() int {
	if n := runtime.NumCPU(); n > 1 {
		return n
	}
	return 1
}

// EvaluateBestMove ranks playerID's legal actions in state by Monte-Carlo
// rollout sampling.
func EvaluateBestMove(state *model.State, playerID int, cfg genconfig.EvaluatorConfig) (*Result, error) {
	legal, err := rules.LegalActions(state, playerID)
	if err != nil {
		return nil, err
	}
	if len(legal) == 0 {
		return nil, model.NewError(model.ErrInvalidState, "no legal actions available for the active player")
	}

	shortlist := shortlistActions(legal, state, cfg.ShortlistSize)
	sampling, err := sampleCandidates(state, playerID, shortlist, cfg)
	if err != nil {
		return nil, err
	}

	best := argmaxEV(sampling.candidates)
	return &Result{
		BestAction:   best.Action,
		BestActionEV: best.MeanEV,
		Candidates:   sampling.candidates,
		Metadata: Metadata{
			ElapsedMs:             sampling.elapsedMs,
			RolloutsRun:           sampling.rolloutsRun,
			CandidatesEvaluated:   len(sampling.candidates),
			TotalLegalActions:     len(legal),
			Seed:                  cfg.EvaluatorSeed,
			CompletedWithinBudget: sampling.completedWithinBudget,
		},
	}, nil
}

// GradeUserAction runs its own shortlist-and-rollout pass, with userAction
// added to the candidates, then grades userAction against the best action
// found.
func GradeUserAction(state *model.State, playerID int, userAction model.DraftAction, cfg genconfig.EvaluatorConfig) (*GradeResult, error) {
	legal, err := rules.LegalActions(state, playerID)
	if err != nil {
		return nil, err
	}
	if len(legal) == 0 {
		return nil, model.NewError(model.ErrInvalidState, "no legal actions available for the active player")
	}

	shortlist := shortlistActions(legal, state, cfg.ShortlistSize)
	candidateActions := includeUserAction(shortlist, userAction)

	sampling, err := sampleCandidates(state, playerID, candidateActions, cfg)
	if err != nil {
		return nil, err
	}

	best := argmaxEV(sampling.candidates)
	userCandidate := findCandidate(sampling.candidates, userAction)
	if userCandidate == nil {
		return nil, model.NewError(model.ErrInternal, "user_action produced no rollout sample")
	}

	deltaEV := userCandidate.MeanEV - best.MeanEV
	return &GradeResult{
		Result: Result{
			BestAction:   best.Action,
			BestActionEV: best.MeanEV,
			Candidates:   sampling.candidates,
			Metadata: Metadata{
				ElapsedMs:             sampling.elapsedMs,
				RolloutsRun:           sampling.rolloutsRun,
				CandidatesEvaluated:   len(sampling.candidates),
				TotalLegalActions:     len(legal),
				Seed:                  cfg.EvaluatorSeed,
				CompletedWithinBudget: sampling.completedWithinBudget,
			},
		},
		UserAction:      userAction,
		UserActionEV:    userCandidate.MeanEV,
		DeltaEV:         deltaEV,
		Grade:           gradeFromDelta(deltaEV),
		FeedbackBullets: feedbackBullets(best.Features, userCandidate.Features),
	}, nil
}

func argmaxEV(candidates []Candidate) Candidate {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.MeanEV > best.MeanEV {
			best = c
		}
	}
	return best
}

func findCandidate(candidates []Candidate, action model.DraftAction) *Candidate {
	for i := range candidates {
		if candidates[i].Action.Equal(action) {
			return &candidates[i]
		}
	}
	return nil
}

type samplingOutcome struct {
	candidates            []Candidate
	rolloutsRun           int
	elapsedMs             int64
	completedWithinBudget bool
}

// sampleCandidates applies each candidate action, then rolls it out to the
// nearest end-of-round up to cfg.RolloutsPerAction times, recording the mean
// score differential as the candidate's utility. It stops early once
// cfg.TimeBudgetMs elapses, when one is set.
func sampleCandidates(state *model.State, playerID int, actions []model.DraftAction, cfg genconfig.EvaluatorConfig) (*samplingOutcome, error) {
	opponent := 1 - playerID

	activePolicy, err := cfg.RolloutConfig.ActivePlayerPolicy.Resolve()
	if err != nil {
		return nil, err
	}
	opponentPolicy, err := cfg.RolloutConfig.OpponentPolicy.Resolve()
	if err != nil {
		return nil, err
	}
	pair := rollout.PolicyPair{ActivePlayerPolicy: activePolicy, OpponentPolicy: opponentPolicy}

	hash := candidateConfigHash(state, playerID, cfg)
	masterSeed := uint64(cfg.EvaluatorSeed)

	start := time.Now()
	var deadline time.Time
	hasDeadline := cfg.TimeBudgetMs > 0
	if hasDeadline {
		deadline = start.Add(time.Duration(cfg.TimeBudgetMs) * time.Millisecond)
	}

	// Each action's rollouts are independent (own state clone, own RNG
	// sub-seed), so they fan out across a bounded worker pool rather than
	// running strictly in sequence. slots holds each candidate's outcome
	// at its own index, written by exactly one goroutine, so no lock is
	// needed to read it back after wg.Wait().
	slots := make([]*Candidate, len(actions))
	rolloutCounts := make([]int, len(actions))

	var mu sync.Mutex
	var firstErr error
	var budgetExpired atomic.Bool

	sem := make(chan struct{}, maxCandidateConcurrency())
	var wg sync.WaitGroup

	for i, action := range actions {
		if budgetExpired.Load() {
			break
		}
		i, action := i, action
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			r := rng.NewRNG(masterSeed, fmt.Sprintf("evaluator.candidate.%d", i), hash)

			after, err := rules.Apply(state, action)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			tookToken, tilesAcquired := staticFeatures(state, action)

			var utilitySum, floorSum, completionSum, wasteSum float64
			samples := 0

			for s := 0; s < cfg.RolloutsPerAction; s++ {
				if hasDeadline && time.Now().After(deadline) {
					budgetExpired.Store(true)
					break
				}
				result, err := rollout.Rollout(context.Background(), after, playerID, rollout.Config{Pair: pair, StopAtFirstResolve: true}, r)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					return
				}
				utilitySum += float64(result.FinalScores[playerID] - result.FinalScores[opponent])
				floorSum += float64(result.Features.FloorPenalty)
				completionSum += float64(result.Features.PatternLineCompletions)
				wasteSum += float64(result.Features.TilesWasted)
				samples++
			}
			rolloutCounts[i] = samples

			if samples == 0 {
				return
			}
			slots[i] = &Candidate{
				Action:  action,
				MeanEV:  utilitySum / float64(samples),
				Samples: samples,
				Features: Features{
					FloorPenalty:           floorSum / float64(samples),
					PatternLineCompletions: completionSum / float64(samples),
					TilesWasted:            wasteSum / float64(samples),
					TookFirstPlayerToken:   tookToken,
					TilesAcquired:          tilesAcquired,
				},
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	var candidates []Candidate
	rolloutsRun := 0
	for i, c := range slots {
		rolloutsRun += rolloutCounts[i]
		if c != nil {
			candidates = append(candidates, *c)
		}
	}

	if len(candidates) == 0 {
		return nil, model.NewError(model.ErrInvalidParameter, "time_budget_ms elapsed before any candidate produced a rollout sample")
	}

	return &samplingOutcome{
		candidates:            candidates,
		rolloutsRun:           rolloutsRun,
		elapsedMs:             time.Since(start).Milliseconds(),
		completedWithinBudget: !budgetExpired.Load(),
	}, nil
}

// staticFeatures reads the two per-action signals that are fixed properties
// of the action itself rather than rollout outcomes: whether the action
// claims the first-player token, and how many tiles it draws from its
// source, both read from state before action is applied.
func staticFeatures(state *model.State, action model.DraftAction) (tookToken bool, tilesAcquired int) {
	if action.Source.Kind == model.SourceCenter {
		tookToken = state.Center.HasFirstPlayerToken
		tilesAcquired = state.Center.Tiles.Count(action.Color)
		return tookToken, tilesAcquired
	}
	return false, state.Factories[action.Source.FactoryIndex].Count(action.Color)
}

// candidateConfigHash summarizes the state, player, and rollout parameters
// candidates are sampled under, so identical (state, params) pairs always
// reproduce the same rollout sequences and distinct ones diverge, following
// pkg/rng's hash-the-config-into-the-seed convention.
func candidateConfigHash(state *model.State, playerID int, cfg genconfig.EvaluatorConfig) []byte {
	data, err := json.Marshal(struct {
		State             *model.State          `json:"state"`
		PlayerID          int                    `json:"player_id"`
		RolloutsPerAction int                    `json:"rollouts_per_action"`
		RolloutConfig     genconfig.RolloutConfig `json:"rollout_config"`
	}{state, playerID, cfg.RolloutsPerAction, cfg.RolloutConfig})
	if err != nil {
		h := sha256.Sum256([]byte(state.ScenarioSeed))
		return h[:]
	}
	h := sha256.Sum256(data)
	return h[:]
}
