package rules

import "github.com/azul-practice/core/pkg/model"

// ResolveEndOfRound performs wall-tiling, floor-penalty scoring, floor
// discard, the game-end test, and (if the game continues) factory refill
// for both players, in that order. Callers must only invoke this once
// state.DraftingComplete() is true.
func ResolveEndOfRound(state *model.State) (*model.State, error) {
	working := state.Clone()
	tokenPlayer := -1

	for i := range working.Players {
		player := &working.Players[i]
		tileWall(player, working)
		applyFloorPenalty(player)
		if player.FloorLine.HasFirstPlayerToken {
			tokenPlayer = i
		}
		discardFloor(player, working)
	}

	if tokenPlayer >= 0 {
		working.Center.HasFirstPlayerToken = true
		working.ActivePlayerID = tokenPlayer
	}

	working.ScenarioGameStage = model.GameStageForFilledCells(working.FilledWallCells())

	if working.GameEnded() {
		return working, nil
	}

	RefillFactories(working, RefillRNG(working))
	working.DraftPhaseProgress = model.RoundStart
	working.RoundNumber++
	return working, nil
}

// tileWall moves every completed pattern line onto the wall, scoring its
// adjacency and discarding the line's leftover tiles to the lid.
func tileWall(player *model.Player, state *model.State) {
	for r := range player.PatternLines {
		line := &player.PatternLines[r]
		if line.Color == nil || line.CountFilled != line.Capacity {
			continue
		}

		color := *line.Color
		col := model.WallColumnFor(r, color)
		if !player.Wall[r][col] {
			player.Wall[r][col] = true
			player.Score += adjacencyScore(player.Wall, r, col)
		}

		state.Lid.Add(color, line.Capacity-1)
		line.Color = nil
		line.CountFilled = 0
	}
}

// applyFloorPenalty subtracts the penalty for the player's occupied floor
// slots (token counts as the leftmost slot) and clamps the score at 0.
func applyFloorPenalty(player *model.Player) {
	n := player.FloorLine.Len()
	if n > len(model.FloorPenalty) {
		n = len(model.FloorPenalty)
	}
	for i := 0; i < n; i++ {
		player.Score += model.FloorPenalty[i]
	}
	if player.Score < 0 {
		player.Score = 0
	}
}

// discardFloor moves the floor line's tiles to the lid and clears the line,
// including the token marker (the caller reads it beforehand to learn which
// player, if any, gets the token back for next round).
func discardFloor(player *model.Player, state *model.State) {
	for _, c := range player.FloorLine.Tiles {
		state.Lid.Add(c, 1)
	}
	player.FloorLine.Tiles = nil
	player.FloorLine.HasFirstPlayerToken = false
}
