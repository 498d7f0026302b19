package policy

import (
	"github.com/azul-practice/core/pkg/model"
	"github.com/azul-practice/core/pkg/rng"
)

// Greedy weights, hand-tuned: reward exact-fit completions highest, reward
// clean (no-overflow) placement next, penalize every tile that overflows to
// the floor, and slightly penalize dumping to the floor in the first place.
// Exact weights are hand-tuned; determinism is the only hard requirement.
const (
	weightCompletesLine = 5.0
	weightCleanFit      = 2.0
	weightOverflowTile  = -2.0
	weightFloorTile     = -1.5
)

// Greedy scores every legal action with HeuristicScore and picks the
// highest, breaking ties uniformly at random via the supplied RNG.
type Greedy struct{}

func (Greedy) Name() string { return "greedy" }

func (Greedy) Choose(state *model.State, legal []model.DraftAction, r *rng.RNG) model.DraftAction {
	return chooseGreedy(state, legal, r)
}

func chooseGreedy(state *model.State, legal []model.DraftAction, r *rng.RNG) model.DraftAction {
	best := HeuristicScore(state, legal[0])
	bestIdx := []int{0}

	for i := 1; i < len(legal); i++ {
		score := HeuristicScore(state, legal[i])
		switch {
		case score > best:
			best = score
			bestIdx = []int{i}
		case score == best:
			bestIdx = append(bestIdx, i)
		}
	}

	return legal[bestIdx[r.Intn(len(bestIdx))]]
}

// HeuristicScore rates how favorable action a is for the active player:
// completing a pattern line this round scores highest, fitting without
// overflow scores next, and every tile that spills to the floor (whether by
// explicit choice or by overflow) costs points. The evaluator's shortlisting
// pass reuses this same scoring family to rank candidates before rollout
// sampling.
func HeuristicScore(state *model.State, a model.DraftAction) float64 {
	n := sourceCount(state, a.Source, a.Color)

	if a.Destination.Kind == model.DestFloor {
		return weightFloorTile * float64(n)
	}

	player := state.Players[state.ActivePlayerID]
	line := player.PatternLines[a.Destination.Row]
	space := line.Capacity - line.CountFilled
	overflow := n - space
	if overflow < 0 {
		overflow = 0
	}

	score := 0.0
	switch {
	case overflow == 0 && n == space:
		score += weightCompletesLine
	case overflow == 0:
		score += weightCleanFit
	}
	score += weightOverflowTile * float64(overflow)
	return score
}

// sourceCount returns how many tiles of color sit at src in state.
func sourceCount(state *model.State, src model.Source, color model.Color) int {
	if src.Kind == model.SourceCenter {
		return state.Center.Tiles.Count(color)
	}
	return state.Factories[src.FactoryIndex].Count(color)
}
