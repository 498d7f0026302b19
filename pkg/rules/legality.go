package rules

import (
	"github.com/azul-practice/core/pkg/model"
)

// LegalActions enumerates every DraftAction available to player_id in the
// current state. The ordering is deterministic (factories in index order,
// then center; colors in ordinal order; Floor before pattern-line rows) but
// is not part of the contract — callers must treat the result as a set.
func LegalActions(state *model.State, playerID int) ([]model.DraftAction, error) {
	if playerID != 0 && playerID != 1 {
		return nil, model.Errorf(model.ErrInvalidPlayer, "player_id must be 0 or 1, got %d", playerID)
	}
	if playerID != state.ActivePlayerID {
		return nil, model.Errorf(model.ErrNotActivePlayer, "player %d is not the active player", playerID)
	}

	player := state.Players[playerID]
	var actions []model.DraftAction

	for _, src := range sources(state) {
		tiles := sourceTiles(state, src)
		for _, c := range model.AllColors {
			if tiles.Count(c) == 0 {
				continue
			}
			actions = append(actions, model.DraftAction{Source: src, Color: c, Destination: model.FloorDestination()})
			for r := 0; r < model.NumPatternLines; r++ {
				line := player.PatternLines[r]
				if line.CountFilled >= line.Capacity {
					continue
				}
				if line.Color != nil && *line.Color != c {
					continue
				}
				if player.Wall[r][model.WallColumnFor(r, c)] {
					continue
				}
				actions = append(actions, model.DraftAction{Source: src, Color: c, Destination: model.PatternLineDestination(r)})
			}
		}
	}

	return actions, nil
}

// sources lists every draw source in a fixed order: each factory, then the
// center.
func sources(state *model.State) []model.Source {
	out := make([]model.Source, 0, model.NumFactories+1)
	for i := range state.Factories {
		out = append(out, model.FactorySource(i))
	}
	return append(out, model.CenterSource())
}

// sourceTiles returns the multiset a Source currently holds.
func sourceTiles(state *model.State, src model.Source) model.Multiset {
	if src.Kind == model.SourceCenter {
		return state.Center.Tiles
	}
	return state.Factories[src.FactoryIndex]
}
