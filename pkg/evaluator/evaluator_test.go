package evaluator_test

import (
	"testing"

	"github.com/azul-practice/core/pkg/evaluator"
	"github.com/azul-practice/core/pkg/genconfig"
	"github.com/azul-practice/core/pkg/model"
	"github.com/azul-practice/core/pkg/rules"
)

func freshDraftState() *model.State {
	s := model.NewRoundStartState()
	rules.RefillFactories(s, rules.RefillRNG(s))
	return s
}

func smallEvaluatorConfig(seed int64) genconfig.EvaluatorConfig {
	cfg := genconfig.DefaultEvaluatorConfig()
	cfg.EvaluatorSeed = seed
	cfg.MarkSeedGiven()
	cfg.RolloutsPerAction = 4
	cfg.ShortlistSize = 5
	return cfg
}

func TestEvaluateBestMoveReturnsARankedCandidateList(t *testing.T) {
	s := freshDraftState()
	result, err := evaluator.EvaluateBestMove(s, s.ActivePlayerID, smallEvaluatorConfig(1))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(result.Candidates) == 0 {
		t.Fatal("expected at least one candidate")
	}
	for _, c := range result.Candidates {
		if c.MeanEV > result.BestActionEV {
			t.Fatalf("best_action_ev %f is not the maximum (candidate %v has %f)", result.BestActionEV, c.Action, c.MeanEV)
		}
	}
	if result.Metadata.Seed != 1 {
		t.Fatalf("expected metadata.seed to echo evaluator_seed, got %d", result.Metadata.Seed)
	}
}

func TestEvaluateBestMoveIsDeterministicGivenSameSeed(t *testing.T) {
	s := freshDraftState()
	cfg := smallEvaluatorConfig(42)

	r1, err := evaluator.EvaluateBestMove(s, s.ActivePlayerID, cfg)
	if err != nil {
		t.Fatalf("evaluate 1: %v", err)
	}
	r2, err := evaluator.EvaluateBestMove(s, s.ActivePlayerID, cfg)
	if err != nil {
		t.Fatalf("evaluate 2: %v", err)
	}
	if !r1.BestAction.Equal(r2.BestAction) || r1.BestActionEV != r2.BestActionEV {
		t.Fatalf("expected identical results for identical seed, got %v/%f vs %v/%f",
			r1.BestAction, r1.BestActionEV, r2.BestAction, r2.BestActionEV)
	}
}

func TestGradeUserActionAlwaysIncludesUserActionAsCandidate(t *testing.T) {
	s := freshDraftState()
	legal, err := rules.LegalActions(s, s.ActivePlayerID)
	if err != nil {
		t.Fatalf("legal actions: %v", err)
	}
	userAction := legal[len(legal)-1]

	grade, err := evaluator.GradeUserAction(s, s.ActivePlayerID, userAction, smallEvaluatorConfig(7))
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if !grade.UserAction.Equal(userAction) {
		t.Fatalf("expected user_action echoed back, got %v", grade.UserAction)
	}
	found := false
	for _, c := range grade.Candidates {
		if c.Action.Equal(userAction) {
			found = true
		}
	}
	if !found {
		t.Fatal("expected user_action to appear among candidates")
	}
}

func TestGradeUserActionMatchingBestIsExcellent(t *testing.T) {
	s := freshDraftState()
	best, err := evaluator.EvaluateBestMove(s, s.ActivePlayerID, smallEvaluatorConfig(9))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	grade, err := evaluator.GradeUserAction(s, s.ActivePlayerID, best.BestAction, smallEvaluatorConfig(9))
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if grade.DeltaEV > 0 {
		t.Fatalf("expected delta_ev <= 0 when grading the best action found against itself, got %f", grade.DeltaEV)
	}
	if grade.Grade != evaluator.GradeExcellent {
		t.Fatalf("expected EXCELLENT when the user's action equals the best found, got %s (delta %f)", grade.Grade, grade.DeltaEV)
	}
}

func TestGradeUserActionRejectsIllegalAction(t *testing.T) {
	s := freshDraftState()
	illegal := model.DraftAction{
		Source:      model.FactorySource(0),
		Color:       model.Blue,
		Destination: model.FloorDestination(),
	}
	// Ensure factory 0 truly has no Blue tiles for this fixture by
	// selecting a color the factory doesn't hold, if it happens to.
	if s.Factories[0].Count(model.Blue) > 0 {
		illegal.Color = model.Yellow
		if s.Factories[0].Count(model.Yellow) > 0 {
			illegal.Color = model.Red
			if s.Factories[0].Count(model.Red) > 0 {
				illegal.Color = model.Black
				if s.Factories[0].Count(model.Black) > 0 {
					illegal.Color = model.White
				}
			}
		}
	}
	if s.Factories[0].Count(illegal.Color) > 0 {
		t.Skip("fixture factory holds every color; cannot construct an empty-color action")
	}

	_, err := evaluator.GradeUserAction(s, s.ActivePlayerID, illegal, smallEvaluatorConfig(3))
	if err == nil {
		t.Fatal("expected an error for an illegal user_action")
	}
	coreErr, ok := err.(*model.Error)
	if !ok || coreErr.Code != model.ErrSourceEmpty {
		t.Fatalf("expected SOURCE_EMPTY, got %v", err)
	}
}
