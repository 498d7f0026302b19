package rules

import (
	"github.com/azul-practice/core/pkg/model"
)

// Apply runs one DraftAction against state and returns the resulting state.
// The input state is never mutated; on error the returned state is nil and
// the caller's state remains valid and untouched.
func Apply(state *model.State, action model.DraftAction) (*model.State, error) {
	if err := validateSource(action.Source); err != nil {
		return nil, err
	}
	if err := validateDestination(action.Destination); err != nil {
		return nil, err
	}

	working := state.Clone()
	playerID := working.ActivePlayerID
	player := &working.Players[playerID]

	n, err := takeFromSource(working, player, action.Source, action.Color)
	if err != nil {
		return nil, err
	}

	if err := deposit(player, action.Destination, action.Color, n); err != nil {
		return nil, err
	}

	working.ActivePlayerID = 1 - playerID
	working.DraftPhaseProgress = roundStageFor(working.TotalFactoryAndCenterTiles())
	return working, nil
}

func validateSource(s model.Source) error {
	switch s.Kind {
	case model.SourceFactory:
		if s.FactoryIndex < 0 || s.FactoryIndex >= model.NumFactories {
			return model.Errorf(model.ErrInvalidSource, "factory index %d out of range", s.FactoryIndex).
				WithContext("factory_index", s.FactoryIndex)
		}
	case model.SourceCenter:
	default:
		return model.NewError(model.ErrInvalidSource, "unrecognized source kind")
	}
	return nil
}

func validateDestination(d model.Destination) error {
	switch d.Kind {
	case model.DestPatternLine:
		if d.Row < 0 || d.Row >= model.NumPatternLines {
			return model.Errorf(model.ErrInvalidDestination, "pattern line row %d out of range", d.Row).
				WithContext("row", d.Row)
		}
	case model.DestFloor:
	default:
		return model.NewError(model.ErrInvalidDestination, "unrecognized destination kind")
	}
	return nil
}

// takeFromSource removes all tiles of color from src, moving a factory's
// leftovers to the center or transferring the first-player token from the
// center to player's floor line, and returns the count taken.
func takeFromSource(state *model.State, player *model.Player, src model.Source, color model.Color) (int, error) {
	switch src.Kind {
	case model.SourceFactory:
		factory := &state.Factories[src.FactoryIndex]
		n := factory.TakeAll(color)
		if n == 0 {
			return 0, model.NewError(model.ErrSourceEmpty, "source has no tiles of this color")
		}
		state.Center.Tiles.Merge(*factory)
		*factory = model.Multiset{}
		return n, nil
	case model.SourceCenter:
		n := state.Center.Tiles.TakeAll(color)
		if n == 0 {
			return 0, model.NewError(model.ErrSourceEmpty, "source has no tiles of this color")
		}
		if state.Center.HasFirstPlayerToken {
			state.Center.HasFirstPlayerToken = false
			player.FloorLine.HasFirstPlayerToken = true
		}
		return n, nil
	default:
		return 0, model.NewError(model.ErrInvalidSource, "unrecognized source kind")
	}
}

// deposit places n tiles of color into the destination, overflowing any
// excess above a pattern line's remaining capacity onto the floor.
func deposit(player *model.Player, dest model.Destination, color model.Color, n int) error {
	if dest.Kind == model.DestFloor {
		addToFloor(player, color, n)
		return nil
	}

	line := &player.PatternLines[dest.Row]
	if line.CountFilled >= line.Capacity {
		return model.Errorf(model.ErrPatternLineComplete, "pattern line %d is already complete", dest.Row).
			WithContext("row", dest.Row)
	}
	if line.Color != nil && *line.Color != color {
		return model.Errorf(model.ErrColorMismatch, "pattern line %d already holds a different color", dest.Row).
			WithContext("row", dest.Row)
	}
	col := model.WallColumnFor(dest.Row, color)
	if player.Wall[dest.Row][col] {
		return model.Errorf(model.ErrWallConflict, "wall column for row %d is already filled", dest.Row).
			WithContext("row", dest.Row)
	}

	space := line.Capacity - line.CountFilled
	placed := n
	if placed > space {
		placed = space
	}
	if line.Color == nil {
		c := color
		line.Color = &c
	}
	line.CountFilled += placed
	addToFloor(player, color, n-placed)
	return nil
}

func addToFloor(player *model.Player, color model.Color, n int) {
	for i := 0; i < n; i++ {
		player.FloorLine.Tiles = append(player.FloorLine.Tiles, color)
	}
}
