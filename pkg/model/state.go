package model

// State is the single value passed across the core's public boundary. Every
// public function takes a State by value conceptually (Go passes the
// pointer, but callers must treat it as immutable — see pkg/rules for the
// clone-then-transform discipline that upholds this).
type State struct {
	StateVersion int    `json:"state_version"`
	RulesetID    string `json:"ruleset_id"`
	ScenarioSeed string `json:"scenario_seed,omitempty"`

	ActivePlayerID     int        `json:"active_player_id"`
	RoundNumber        int        `json:"round_number"`
	DraftPhaseProgress RoundStage `json:"draft_phase_progress"`
	ScenarioGameStage  GameStage  `json:"scenario_game_stage,omitempty"`

	Bag       Multiset               `json:"bag"`
	Lid       Multiset               `json:"lid"`
	Factories [NumFactories]Multiset `json:"factories"`
	Center    Center                 `json:"center"`
	Players   [NumPlayers]Player     `json:"players"`
}

// NewRoundStartState builds a fresh round-start state: a full bag (100
// tiles, TilesPerColor per color), empty boards, and the first-player token
// in the center. It does not fill factories — callers refill via
// pkg/rules.RefillFactories once the state is otherwise ready.
func NewRoundStartState() *State {
	s := &State{
		StateVersion:       StateSchemaVersion,
		RulesetID:          Ruleset,
		RoundNumber:        1,
		DraftPhaseProgress: RoundStart,
	}
	for _, c := range AllColors {
		s.Bag.Add(c, TilesPerColor)
	}
	s.Center.HasFirstPlayerToken = true
	for i := range s.Players {
		s.Players[i] = NewPlayer()
	}
	return s
}

// Clone returns a deep independent copy of the state. The rules engine
// clones the caller's state before applying any transition, so the caller's
// value is never mutated by apply/resolve-end-of-round.
func (s *State) Clone() *State {
	out := *s
	out.Bag = s.Bag.Clone()
	out.Lid = s.Lid.Clone()
	for i := range s.Factories {
		out.Factories[i] = s.Factories[i].Clone()
	}
	out.Center = s.Center.Clone()
	for i := range s.Players {
		out.Players[i] = s.Players[i].Clone()
	}
	return &out
}

// TotalTiles sums tiles across every location the tile-conservation
// invariant quantifies over: bag,
// lid, factories, center, pattern lines, walls, and floor lines. Tokens are
// excluded since they are not tiles.
func (s *State) TotalTiles() int {
	total := s.Bag.Total() + s.Lid.Total() + s.Center.Tiles.Total()
	for _, f := range s.Factories {
		total += f.Total()
	}
	for _, p := range s.Players {
		for _, line := range p.PatternLines {
			total += line.CountFilled
		}
		total += p.Wall.FilledCount()
		total += len(p.FloorLine.Tiles)
	}
	return total
}

// TokenLocations reports every place that holds the first-player token:
// center is true if the center holds it, and playerFloors lists the players
// whose floor line holds it. Callers use it to check the single-location
// invariant.
func (s *State) TokenLocations() (center bool, playerFloors []int) {
	if s.Center.HasFirstPlayerToken {
		center = true
	}
	for i, p := range s.Players {
		if p.FloorLine.HasFirstPlayerToken {
			playerFloors = append(playerFloors, i)
		}
	}
	return center, playerFloors
}

// FilledWallCells sums filled wall cells across both players, the input to
// GameStageForFilledCells.
func (s *State) FilledWallCells() int {
	total := 0
	for _, p := range s.Players {
		total += p.Wall.FilledCount()
	}
	return total
}

// TotalFactoryAndCenterTiles sums the tiles remaining on the table, the
// input to the within-round stage label and to the
// drafting-complete test used by resolve_end_of_round's caller.
func (s *State) TotalFactoryAndCenterTiles() int {
	total := s.Center.Tiles.Total()
	for _, f := range s.Factories {
		total += f.Total()
	}
	return total
}

// DraftingComplete reports whether every factory and the center hold no
// tiles (the token may still be on a floor line). This is the trigger
// condition for resolve_end_of_round.
func (s *State) DraftingComplete() bool {
	return s.TotalFactoryAndCenterTiles() == 0
}

// GameEnded reports whether any player has completed a horizontal wall row,
// the game-end test run during resolve_end_of_round.
func (s *State) GameEnded() bool {
	for _, p := range s.Players {
		if p.Wall.HasCompleteRow() {
			return true
		}
	}
	return false
}
