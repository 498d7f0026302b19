package model

// Ruleset identifies the fixed set of game constants this module implements.
// Consumers must reject a serialized State whose RulesetID differs.
const Ruleset = "azul_v1_2p"

// StateSchemaVersion is the current State wire-format version.
const StateSchemaVersion = 1

// NumPlayers, NumFactories, TilesPerColor, TilesPerFactory, and WallSize are
// fixed by ruleset azul_v1_2p.
const (
	NumPlayers      = 2
	NumFactories    = 5
	TilesPerColor   = 20
	TilesPerFactory = 4
	WallSize        = NumColors
	NumPatternLines = NumColors
)

// PatternLineCapacity returns the fixed capacity of pattern line row r
// (capacities 1,2,3,4,5 for rows 0..4).
func PatternLineCapacity(row int) int {
	return row + 1
}

// FloorPenalty is the per-slot penalty vector applied to the first
// len(FloorPenalty) floor-line entries at end-of-round.
var FloorPenalty = [...]int{-1, -1, -2, -2, -2, -3, -3}

// WallColorAt returns the fixed color held by wall cell (row, col) under the
// standard Azul wall pattern: row r position c holds color (c-r) mod 5, so
// row 0 reads Blue, Yellow, Red, Black, White and each later row shifts one
// column to the right.
func WallColorAt(row, col int) Color {
	return Color(((col-row)%NumColors + NumColors) % NumColors)
}

// WallColumnFor returns the wall column that row r uses for color, the
// inverse of WallColorAt: (row + int(color)) mod NumColors.
func WallColumnFor(row int, color Color) int {
	return (row + int(color)) % NumColors
}

// RoundStage is the within-round draft-phase-progress label.
// It is informational only — never consulted for game-legality decisions.
type RoundStage string

const (
	RoundStart RoundStage = "START"
	RoundMid   RoundStage = "MID"
	RoundEnd   RoundStage = "END"
)

// GameStage is the across-game stage label, derived from the
// total number of filled wall cells across both players.
type GameStage string

const (
	GameEarly GameStage = "EARLY"
	GameMid   GameStage = "MID"
	GameLate  GameStage = "LATE"
)

// GameStageForFilledCells classifies a total filled-wall-cell count into a
// GameStage: EARLY <= 8, MID 9..17, LATE >= 18.
func GameStageForFilledCells(filled int) GameStage {
	switch {
	case filled <= 8:
		return GameEarly
	case filled <= 17:
		return GameMid
	default:
		return GameLate
	}
}
