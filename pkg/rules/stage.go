package rules

import "github.com/azul-practice/core/pkg/model"

// roundStartTotal is the number of tiles on the table right after a refill:
// NumFactories * TilesPerFactory (the center starts each round empty).
const roundStartTotal = model.NumFactories * model.TilesPerFactory

// roundEndThreshold is the remaining-tile count at or below which the round
// is labeled END. The label is informational only and any monotone
// mapping is acceptable; this threshold is one factory's worth of tiles.
// A final take from the center can remove more than TilesPerFactory tiles,
// so the state before the last action of a round is not always END.
const roundEndThreshold = model.TilesPerFactory

// roundStageFor labels the within-round draft progress from the number of
// tiles remaining across factories and the center. The mapping is monotone:
// as remaining drains from roundStartTotal to 0 the label only advances
// START -> MID -> END.
func roundStageFor(remaining int) model.RoundStage {
	switch {
	case remaining >= roundStartTotal:
		return model.RoundStart
	case remaining <= roundEndThreshold:
		return model.RoundEnd
	default:
		return model.RoundMid
	}
}
