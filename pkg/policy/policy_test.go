package policy_test

import (
	"testing"

	"github.com/azul-practice/core/pkg/model"
	"github.com/azul-practice/core/pkg/policy"
	"github.com/azul-practice/core/pkg/rng"
)

func TestRegistryHasBuiltins(t *testing.T) {
	names := policy.List()
	want := map[string]bool{"random": false, "greedy": false}
	for _, n := range names {
		if _, ok := want[n]; ok {
			want[n] = true
		}
	}
	for n, found := range want {
		if !found {
			t.Fatalf("expected policy %q to be registered, got %v", n, names)
		}
	}
}

func TestGetUnknownReturnsNil(t *testing.T) {
	if policy.Get("does-not-exist") != nil {
		t.Fatal("expected nil for unregistered policy name")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate registration")
		}
	}()
	policy.Register("random", policy.Random{})
}

func sampleState() (*model.State, []model.DraftAction) {
	s := model.NewRoundStartState()
	s.Factories[0].Add(model.Blue, 2)
	s.Factories[1].Add(model.Red, 3)
	actions, err := legalActionsDirect(s)
	if err != nil {
		panic(err)
	}
	return s, actions
}

// legalActionsDirect avoids importing pkg/rules from pkg/policy's test
// package to keep the dependency direction one-way; it hand-enumerates the
// factory actions (floor plus every pattern line) that pkg/rules.LegalActions
// would produce for these empty-board fixtures.
func legalActionsDirect(s *model.State) ([]model.DraftAction, error) {
	var actions []model.DraftAction
	for i, f := range s.Factories {
		for _, c := range model.AllColors {
			if f.Count(c) == 0 {
				continue
			}
			actions = append(actions, model.DraftAction{Source: model.FactorySource(i), Color: c, Destination: model.FloorDestination()})
			for r := 0; r < model.NumPatternLines; r++ {
				actions = append(actions, model.DraftAction{Source: model.FactorySource(i), Color: c, Destination: model.PatternLineDestination(r)})
			}
		}
	}
	return actions, nil
}

func TestRandomPolicyIsDeterministic(t *testing.T) {
	s, actions := sampleState()
	r1 := rng.NewRNG(42, "test.random", nil)
	r2 := rng.NewRNG(42, "test.random", nil)

	a1 := policy.Random{}.Choose(s, actions, r1)
	a2 := policy.Random{}.Choose(s, actions, r2)
	if !a1.Equal(a2) {
		t.Fatalf("expected identical choice for identical seed, got %v vs %v", a1, a2)
	}
}

func TestGreedyPrefersCleanFitOverFloor(t *testing.T) {
	s := model.NewRoundStartState()
	s.Factories[0].Add(model.Blue, 1)

	actions := []model.DraftAction{
		{Source: model.FactorySource(0), Color: model.Blue, Destination: model.FloorDestination()},
		{Source: model.FactorySource(0), Color: model.Blue, Destination: model.PatternLineDestination(0)},
	}

	r := rng.NewRNG(7, "test.greedy", nil)
	chosen := policy.Greedy{}.Choose(s, actions, r)
	if chosen.Destination.Kind != model.DestPatternLine {
		t.Fatalf("expected greedy to prefer the clean pattern-line fit, got %v", chosen)
	}
}

func TestMixedRespectsGreedyRatioBounds(t *testing.T) {
	m := policy.NewMixed(1.5)
	if m.GreedyRatio != 1 {
		t.Fatalf("expected ratio clamped to 1, got %f", m.GreedyRatio)
	}
	m = policy.NewMixed(-0.5)
	if m.GreedyRatio != 0 {
		t.Fatalf("expected ratio clamped to 0, got %f", m.GreedyRatio)
	}
}

func TestMixedAlwaysGreedyMatchesGreedyChoice(t *testing.T) {
	s := model.NewRoundStartState()
	s.Factories[0].Add(model.Blue, 1)
	actions := []model.DraftAction{
		{Source: model.FactorySource(0), Color: model.Blue, Destination: model.FloorDestination()},
		{Source: model.FactorySource(0), Color: model.Blue, Destination: model.PatternLineDestination(0)},
	}

	mixed := policy.NewMixed(1.0)
	greedy := policy.Greedy{}

	r1 := rng.NewRNG(11, "test.mixed", nil)
	r2 := rng.NewRNG(11, "test.mixed", nil)

	a1 := mixed.Choose(s, actions, r1)
	_ = r2.Float64() // consume the same ratio draw greedy-ratio=1 would consume
	a2 := greedy.Choose(s, actions, r2)
	if !a1.Equal(a2) {
		t.Fatalf("expected greedy_ratio=1 to always act like Greedy, got %v vs %v", a1, a2)
	}
}
