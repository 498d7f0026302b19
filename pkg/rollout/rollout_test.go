package rollout_test

import (
	"context"
	"testing"

	"github.com/azul-practice/core/pkg/model"
	"github.com/azul-practice/core/pkg/policy"
	"github.com/azul-practice/core/pkg/rng"
	"github.com/azul-practice/core/pkg/rollout"
	"github.com/azul-practice/core/pkg/rules"
)

func freshlyRefilledState() *model.State {
	s := model.NewRoundStartState()
	rules.RefillFactories(s, rules.RefillRNG(s))
	return s
}

func defaultPair() rollout.PolicyPair {
	return rollout.PolicyPair{
		ActivePlayerPolicy: policy.Get("random"),
		OpponentPolicy:     policy.Get("random"),
	}
}

func TestRolloutReachesAResolve(t *testing.T) {
	s := freshlyRefilledState()
	cfg := rollout.Config{Pair: defaultPair()}
	r := rng.NewRNG(1, "test.rollout", nil)

	result, err := rollout.Rollout(context.Background(), s, s.ActivePlayerID, cfg, r)
	if err != nil {
		t.Fatalf("rollout: %v", err)
	}
	if !result.Resolved {
		t.Fatal("expected at least one end-of-round resolution within default max actions")
	}
	if result.FinalState.TotalTiles() != 100 {
		t.Fatalf("expected tile conservation, got %d", result.FinalState.TotalTiles())
	}
}

func TestRolloutStopAtFirstResolve(t *testing.T) {
	s := freshlyRefilledState()
	cfg := rollout.Config{Pair: defaultPair(), StopAtFirstResolve: true}
	r := rng.NewRNG(2, "test.rollout", nil)

	result, err := rollout.Rollout(context.Background(), s, s.ActivePlayerID, cfg, r)
	if err != nil {
		t.Fatalf("rollout: %v", err)
	}
	if !result.Resolved {
		t.Fatal("expected the rollout to resolve at least one round")
	}
	if result.FinalState.RoundNumber != 2 {
		t.Fatalf("expected round number advanced to 2 after stopping at the first resolve, got %d", result.FinalState.RoundNumber)
	}
}

func TestRolloutDeterministicGivenSameSeed(t *testing.T) {
	s := freshlyRefilledState()
	cfg := rollout.Config{Pair: defaultPair()}

	r1 := rng.NewRNG(99, "test.rollout.determinism", nil)
	r2 := rng.NewRNG(99, "test.rollout.determinism", nil)

	res1, err := rollout.Rollout(context.Background(), s, s.ActivePlayerID, cfg, r1)
	if err != nil {
		t.Fatalf("rollout 1: %v", err)
	}
	res2, err := rollout.Rollout(context.Background(), s, s.ActivePlayerID, cfg, r2)
	if err != nil {
		t.Fatalf("rollout 2: %v", err)
	}

	if len(res1.Actions) != len(res2.Actions) {
		t.Fatalf("expected identical action counts, got %d vs %d", len(res1.Actions), len(res2.Actions))
	}
	for i := range res1.Actions {
		if !res1.Actions[i].Equal(res2.Actions[i]) {
			t.Fatalf("action %d diverged: %v vs %v", i, res1.Actions[i], res2.Actions[i])
		}
	}
	if res1.FinalScores != res2.FinalScores {
		t.Fatalf("expected identical final scores, got %v vs %v", res1.FinalScores, res2.FinalScores)
	}
}

func TestRolloutRespectsContextCancellation(t *testing.T) {
	s := freshlyRefilledState()
	cfg := rollout.Config{Pair: defaultPair()}
	r := rng.NewRNG(3, "test.rollout.cancel", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := rollout.Rollout(ctx, s, s.ActivePlayerID, cfg, r)
	if err == nil {
		t.Fatal("expected context cancellation error")
	}
}

func TestRolloutHonorsMaxActionsBound(t *testing.T) {
	s := freshlyRefilledState()
	cfg := rollout.Config{Pair: defaultPair(), MaxActions: 1}
	r := rng.NewRNG(4, "test.rollout.bound", nil)

	result, err := rollout.Rollout(context.Background(), s, s.ActivePlayerID, cfg, r)
	if err != nil {
		t.Fatalf("rollout: %v", err)
	}
	if len(result.Actions) > 1 {
		t.Fatalf("expected at most 1 action taken, got %d", len(result.Actions))
	}
}
