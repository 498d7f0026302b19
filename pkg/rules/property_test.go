package rules_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/azul-practice/core/pkg/model"
	"github.com/azul-practice/core/pkg/rules"
)

// TestTileConservationUnderRandomLegalPlay is driven by randomly chosen
// legal actions across many rounds: after every apply and every
// end-of-round resolution, the total tile count must stay at 100.
func TestTileConservationUnderRandomLegalPlay(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		steps := rapid.IntRange(1, 40).Draw(rt, "steps")

		s := model.NewRoundStartState()
		rules.RefillFactories(s, rules.RefillRNG(s))

		for i := 0; i < steps; i++ {
			if s.GameEnded() {
				return
			}
			if s.DraftingComplete() {
				next, err := rules.ResolveEndOfRound(s)
				if err != nil {
					rt.Fatalf("resolve: %v", err)
				}
				if next.TotalTiles() != 100 {
					rt.Fatalf("tile conservation violated after resolve: %d", next.TotalTiles())
				}
				s = next
				continue
			}

			actions, err := rules.LegalActions(s, s.ActivePlayerID)
			if err != nil {
				rt.Fatalf("legal actions: %v", err)
			}
			if len(actions) == 0 {
				rt.Fatal("expected at least one legal action while drafting")
			}
			choice := rapid.IntRange(0, len(actions)-1).Draw(rt, "choice")

			next, err := rules.Apply(s, actions[choice])
			if err != nil {
				rt.Fatalf("apply: %v", err)
			}
			if next.TotalTiles() != 100 {
				rt.Fatalf("tile conservation violated after apply: %d", next.TotalTiles())
			}
			s = next
		}
	})
}

// TestPatternLineInvariantUnderRandomLegalPlay is exercised the same way: count_filled
// must never exceed capacity, and a line with tiles must always have its
// color set.
func TestPatternLineInvariantUnderRandomLegalPlay(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		steps := rapid.IntRange(1, 30).Draw(rt, "steps")

		s := model.NewRoundStartState()
		rules.RefillFactories(s, rules.RefillRNG(s))

		for i := 0; i < steps; i++ {
			if s.GameEnded() {
				return
			}
			if s.DraftingComplete() {
				next, err := rules.ResolveEndOfRound(s)
				if err != nil {
					rt.Fatalf("resolve: %v", err)
				}
				s = next
				continue
			}

			actions, err := rules.LegalActions(s, s.ActivePlayerID)
			if err != nil || len(actions) == 0 {
				rt.Fatalf("legal actions: %v", err)
			}
			choice := rapid.IntRange(0, len(actions)-1).Draw(rt, "choice")
			next, err := rules.Apply(s, actions[choice])
			if err != nil {
				rt.Fatalf("apply: %v", err)
			}
			s = next

			for _, p := range s.Players {
				for _, line := range p.PatternLines {
					if line.CountFilled > line.Capacity {
						rt.Fatalf("pattern line overfilled: %+v", line)
					}
					if line.CountFilled > 0 && line.Color == nil {
						rt.Fatalf("pattern line has tiles but no color: %+v", line)
					}
				}
			}
		}
	})
}
