package rules

import "github.com/azul-practice/core/pkg/model"

// adjacencyScore computes the score contribution of placing a tile at wall
// position (r, c), given the wall state after that cell has been set
// true. A tile with no filled neighbor in either direction
// scores 1 (isolated); otherwise horizontal and vertical run lengths are
// summed.
func adjacencyScore(wall model.Wall, r, c int) int {
	horizontal := runLength(wall, r, c, 0, 1) + runLength(wall, r, c, 0, -1) + 1
	vertical := runLength(wall, r, c, 1, 0) + runLength(wall, r, c, -1, 0) + 1

	if horizontal == 1 && vertical == 1 {
		return 1
	}

	score := 0
	if horizontal > 1 {
		score += horizontal
	}
	if vertical > 1 {
		score += vertical
	}
	return score
}

// runLength counts filled cells starting one step from (r, c) in direction
// (dr, dc), stopping at the wall edge or the first empty cell.
func runLength(wall model.Wall, r, c, dr, dc int) int {
	n := 0
	r, c = r+dr, c+dc
	for r >= 0 && r < model.WallSize && c >= 0 && c < model.WallSize && wall[r][c] {
		n++
		r, c = r+dr, c+dc
	}
	return n
}
