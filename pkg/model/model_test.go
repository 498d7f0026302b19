package model_test

import (
	"encoding/json"
	"testing"

	"github.com/azul-practice/core/pkg/model"
)

func TestColorJSONRoundTrip(t *testing.T) {
	for _, c := range model.AllColors {
		data, err := json.Marshal(c)
		if err != nil {
			t.Fatalf("marshal %v: %v", c, err)
		}
		var got model.Color
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if got != c {
			t.Fatalf("round trip changed color: %v -> %s -> %v", c, data, got)
		}
	}
}

func TestParseColorRejectsUnknown(t *testing.T) {
	if _, err := model.ParseColor("Purple"); err == nil {
		t.Fatal("expected error for unknown color name")
	}
}

func TestMultisetSparseJSON(t *testing.T) {
	var m model.Multiset
	m.Add(model.Blue, 3)
	m.Add(model.Red, 2)

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}
	if len(raw) != 2 {
		t.Fatalf("expected 2 keys in sparse encoding, got %v", raw)
	}

	var got model.Multiset
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != m {
		t.Fatalf("round trip changed multiset: %v -> %s -> %v", m, data, got)
	}
}

func TestMultisetEmptyEncodesAsObject(t *testing.T) {
	var m model.Multiset
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "{}" {
		t.Fatalf("expected empty multiset to encode as {}, got %s", data)
	}
}

func TestMultisetUnknownColorRejected(t *testing.T) {
	var m model.Multiset
	err := json.Unmarshal([]byte(`{"Purple":1}`), &m)
	if err == nil {
		t.Fatal("expected error for unknown color key")
	}
}

func TestMultisetTakeAll(t *testing.T) {
	var m model.Multiset
	m.Add(model.White, 4)
	n := m.TakeAll(model.White)
	if n != 4 {
		t.Fatalf("expected TakeAll to return 4, got %d", n)
	}
	if m.Count(model.White) != 0 {
		t.Fatalf("expected White count 0 after TakeAll, got %d", m.Count(model.White))
	}
}

func TestMultisetAddNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when count goes negative")
		}
	}()
	var m model.Multiset
	m.Add(model.Blue, -1)
}

func TestSourceJSONRoundTrip(t *testing.T) {
	cases := []model.Source{model.CenterSource(), model.FactorySource(2)}
	for _, s := range cases {
		data, err := json.Marshal(s)
		if err != nil {
			t.Fatalf("marshal %v: %v", s, err)
		}
		var got model.Source
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if got != s {
			t.Fatalf("round trip changed source: %v -> %s -> %v", s, data, got)
		}
	}
}

func TestSourceLiteralEncoding(t *testing.T) {
	data, err := json.Marshal(model.CenterSource())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"Center"` {
		t.Fatalf(`expected "Center" literal, got %s`, data)
	}

	data, err = json.Marshal(model.FactorySource(1))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"Factory":1}` {
		t.Fatalf(`expected {"Factory":1} object, got %s`, data)
	}
}

func TestDestinationJSONRoundTrip(t *testing.T) {
	cases := []model.Destination{model.FloorDestination(), model.PatternLineDestination(3)}
	for _, d := range cases {
		data, err := json.Marshal(d)
		if err != nil {
			t.Fatalf("marshal %v: %v", d, err)
		}
		var got model.Destination
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if got != d {
			t.Fatalf("round trip changed destination: %v -> %s -> %v", d, data, got)
		}
	}
}

func TestDraftActionJSONRoundTrip(t *testing.T) {
	a := model.DraftAction{
		Source:      model.FactorySource(0),
		Color:       model.Red,
		Destination: model.PatternLineDestination(2),
	}
	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got model.DraftAction
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal %s: %v", data, err)
	}
	if !got.Equal(a) {
		t.Fatalf("round trip changed action: %v -> %s -> %v", a, data, got)
	}
}

func TestNewRoundStartStateInvariants(t *testing.T) {
	s := model.NewRoundStartState()

	if s.TotalTiles() != model.NumColors*model.TilesPerColor {
		t.Fatalf("expected %d tiles at round start, got %d", model.NumColors*model.TilesPerColor, s.TotalTiles())
	}

	center, floors := s.TokenLocations()
	if !center || len(floors) != 0 {
		t.Fatalf("expected token only in center at round start, got center=%v floors=%v", center, floors)
	}

	if s.FilledWallCells() != 0 {
		t.Fatalf("expected no filled wall cells at round start, got %d", s.FilledWallCells())
	}

	if s.DraftPhaseProgress != model.RoundStart {
		t.Fatalf("expected RoundStart progress, got %s", s.DraftPhaseProgress)
	}
}

func TestStateCloneIsIndependent(t *testing.T) {
	s := model.NewRoundStartState()
	clone := s.Clone()

	clone.Bag.Add(model.Blue, -1)
	clone.Center.Tiles.Add(model.Blue, 5)
	clone.Players[0].Score = 99

	if s.Bag.Count(model.Blue) == clone.Bag.Count(model.Blue) {
		t.Fatal("expected clone mutation to not affect original bag")
	}
	if s.Players[0].Score == clone.Players[0].Score {
		t.Fatal("expected clone mutation to not affect original player score")
	}
}

func TestStateJSONRoundTrip(t *testing.T) {
	s := model.NewRoundStartState()
	s.Factories[0].Add(model.Blue, 2)
	s.Factories[0].Add(model.Red, 2)

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got model.State
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.TotalTiles() != s.TotalTiles() {
		t.Fatalf("round trip changed tile total: %d -> %d", s.TotalTiles(), got.TotalTiles())
	}
	if got.RulesetID != model.Ruleset {
		t.Fatalf("expected ruleset %q, got %q", model.Ruleset, got.RulesetID)
	}
}

func TestGameEndedFalseForFreshState(t *testing.T) {
	s := model.NewRoundStartState()
	if s.GameEnded() {
		t.Fatal("expected fresh round-start state to not be ended")
	}
}

func TestWallColorRoundTrip(t *testing.T) {
	for row := 0; row < model.WallSize; row++ {
		for _, c := range model.AllColors {
			col := model.WallColumnFor(row, c)
			if model.WallColorAt(row, col) != c {
				t.Fatalf("row %d color %s: column %d maps back to %s", row, c, col, model.WallColorAt(row, col))
			}
		}
	}
}

func TestGameStageForFilledCells(t *testing.T) {
	cases := []struct {
		filled int
		want   model.GameStage
	}{
		{0, model.GameEarly},
		{8, model.GameEarly},
		{9, model.GameMid},
		{17, model.GameMid},
		{18, model.GameLate},
		{50, model.GameLate},
	}
	for _, tc := range cases {
		if got := model.GameStageForFilledCells(tc.filled); got != tc.want {
			t.Errorf("filled=%d: want %s, got %s", tc.filled, tc.want, got)
		}
	}
}
