package policy

import (
	"github.com/azul-practice/core/pkg/model"
	"github.com/azul-practice/core/pkg/rng"
)

// Mixed chooses greedily with probability GreedyRatio, else uniformly at
// random. It is not registered under a fixed name because it
// is parameterized; callers construct it with NewMixed.
type Mixed struct {
	GreedyRatio float64
}

// NewMixed returns a Mixed policy with the given greedy ratio, clamped to
// [0,1].
func NewMixed(greedyRatio float64) Mixed {
	if greedyRatio < 0 {
		greedyRatio = 0
	}
	if greedyRatio > 1 {
		greedyRatio = 1
	}
	return Mixed{GreedyRatio: greedyRatio}
}

func (Mixed) Name() string { return "mixed" }

func (m Mixed) Choose(state *model.State, legal []model.DraftAction, r *rng.RNG) model.DraftAction {
	if r.Float64() < m.GreedyRatio {
		return chooseGreedy(state, legal, r)
	}
	return legal[r.Intn(len(legal))]
}
