package evaluator

import (
	"fmt"
	"sort"
)

// significanceThreshold suppresses bullets for deltas too small to matter.
const significanceThreshold = 0.1

// maxBullets caps feedback at 3 bullets.
const maxBullets = 3

type feature struct {
	name  string
	delta float64
	emit  func(delta float64) string
}

// feedbackBullets compares best and user feature sets and emits up to
// maxBullets bullets, ordered by descending |delta|, from a fixed set of
// feature templates. Deltas are computed user − best, so a
// positive floor-penalty delta means the user's move wastes more than the
// best move.
func feedbackBullets(best, user Features) []string {
	candidates := []feature{
		{
			name:  "floor_penalty",
			delta: user.FloorPenalty - best.FloorPenalty,
			emit: func(delta float64) string {
				return fmt.Sprintf("Best move reduces expected floor penalty by ~%.1f", delta)
			},
		},
		{
			name:  "line_completion",
			delta: user.PatternLineCompletions - best.PatternLineCompletions,
			emit: func(float64) string {
				return "Best move is more likely to complete a pattern line"
			},
		},
		{
			name:  "wasted_tiles",
			delta: user.TilesWasted - best.TilesWasted,
			emit: func(delta float64) string {
				return fmt.Sprintf("Your move sends ~%.1f more tiles to the floor", delta)
			},
		},
	}
	if best.TookFirstPlayerToken != user.TookFirstPlayerToken {
		candidates = append(candidates, feature{
			name:  "first_player_token",
			delta: 1,
			emit: func(float64) string {
				return "Best move differs in how it handles the first-player token"
			},
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return absf(candidates[i].delta) > absf(candidates[j].delta)
	})

	var bullets []string
	for _, f := range candidates {
		if len(bullets) >= maxBullets {
			break
		}
		if absf(f.delta) < significanceThreshold {
			continue
		}
		bullets = append(bullets, f.emit(f.delta))
	}
	return bullets
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
