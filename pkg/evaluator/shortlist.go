package evaluator

import (
	"sort"

	"github.com/azul-practice/core/pkg/model"
	"github.com/azul-practice/core/pkg/policy"
)

// shortlistActions scores legal by policy.HeuristicScore (the same family
// the greedy policy uses) and keeps the top size. Ties keep their original
// enumeration order, since HeuristicScore is deterministic and a stable
// sort is all that's required.
func shortlistActions(legal []model.DraftAction, state *model.State, size int) []model.DraftAction {
	if size <= 0 || len(legal) <= size {
		out := make([]model.DraftAction, len(legal))
		copy(out, legal)
		return out
	}

	type scoredAction struct {
		action model.DraftAction
		score  float64
	}
	scored := make([]scoredAction, len(legal))
	for i, a := range legal {
		scored[i] = scoredAction{action: a, score: policy.HeuristicScore(state, a)}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	out := make([]model.DraftAction, size)
	for i := 0; i < size; i++ {
		out[i] = scored[i].action
	}
	return out
}

// includeUserAction appends userAction to shortlist when it is not already
// present, so grade_user_action always has a candidate for the user's move.
func includeUserAction(shortlist []model.DraftAction, userAction model.DraftAction) []model.DraftAction {
	for _, a := range shortlist {
		if a.Equal(userAction) {
			return shortlist
		}
	}
	return append(shortlist, userAction)
}
