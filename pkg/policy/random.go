package policy

import (
	"github.com/azul-practice/core/pkg/model"
	"github.com/azul-practice/core/pkg/rng"
)

// Random chooses uniformly among the legal actions.
type Random struct{}

func (Random) Name() string { return "random" }

func (Random) Choose(_ *model.State, legal []model.DraftAction, r *rng.RNG) model.DraftAction {
	return legal[r.Intn(len(legal))]
}
