package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SourceKind distinguishes the two places a draft action may draw tiles from.
type SourceKind int

const (
	SourceFactory SourceKind = iota
	SourceCenter
)

// Source identifies where a DraftAction draws tiles from: either a specific
// factory or the shared center. FactoryIndex is meaningful only when Kind is
// SourceFactory.
type Source struct {
	Kind         SourceKind
	FactoryIndex int
}

// FactorySource returns a Source selecting factory i.
func FactorySource(i int) Source { return Source{Kind: SourceFactory, FactoryIndex: i} }

// CenterSource returns the Source selecting the shared center.
func CenterSource() Source { return Source{Kind: SourceCenter} }

// String renders the source for diagnostics and log lines.
func (s Source) String() string {
	if s.Kind == SourceCenter {
		return "Center"
	}
	return fmt.Sprintf("Factory(%d)", s.FactoryIndex)
}

// MarshalJSON encodes Source as the literal string "Center",
// or an object {"Factory": i}.
func (s Source) MarshalJSON() ([]byte, error) {
	if s.Kind == SourceCenter {
		return marshalQuoted("Center")
	}
	return json.Marshal(struct {
		Factory int `json:"Factory"`
	}{Factory: s.FactoryIndex})
}

// UnmarshalJSON decodes a Source from either wire form.
func (s *Source) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		name, err := unmarshalQuoted(data)
		if err != nil {
			return err
		}
		if name != "Center" {
			return fmt.Errorf("model: invalid source literal %q", name)
		}
		*s = CenterSource()
		return nil
	}
	var obj struct {
		Factory int `json:"Factory"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("model: invalid source object: %w", err)
	}
	*s = FactorySource(obj.Factory)
	return nil
}

// DestinationKind distinguishes the two places a draft action may deposit
// tiles into.
type DestinationKind int

const (
	DestPatternLine DestinationKind = iota
	DestFloor
)

// Destination identifies where a DraftAction deposits tiles: a specific
// pattern-line row, or the floor line. Row is meaningful only when Kind is
// DestPatternLine.
type Destination struct {
	Kind DestinationKind
	Row  int
}

// PatternLineDestination returns a Destination targeting pattern-line row r.
func PatternLineDestination(r int) Destination {
	return Destination{Kind: DestPatternLine, Row: r}
}

// FloorDestination returns the Destination targeting the floor line.
func FloorDestination() Destination { return Destination{Kind: DestFloor} }

// String renders the destination for diagnostics and log lines.
func (d Destination) String() string {
	if d.Kind == DestFloor {
		return "Floor"
	}
	return fmt.Sprintf("PatternLine(%d)", d.Row)
}

// MarshalJSON encodes Destination as the literal string
// "Floor", or an object {"PatternLine": r}.
func (d Destination) MarshalJSON() ([]byte, error) {
	if d.Kind == DestFloor {
		return marshalQuoted("Floor")
	}
	return json.Marshal(struct {
		PatternLine int `json:"PatternLine"`
	}{PatternLine: d.Row})
}

// UnmarshalJSON decodes a Destination from either wire form.
func (d *Destination) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		name, err := unmarshalQuoted(data)
		if err != nil {
			return err
		}
		if name != "Floor" {
			return fmt.Errorf("model: invalid destination literal %q", name)
		}
		*d = FloorDestination()
		return nil
	}
	var obj struct {
		PatternLine int `json:"PatternLine"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("model: invalid destination object: %w", err)
	}
	*d = PatternLineDestination(obj.PatternLine)
	return nil
}

// DraftAction is a single player's move during the drafting phase: take all
// tiles of one color from one source and place them in one destination.
type DraftAction struct {
	Source      Source      `json:"source"`
	Color       Color       `json:"color"`
	Destination Destination `json:"destination"`
}

// String renders the action for diagnostics and log lines.
func (a DraftAction) String() string {
	return fmt.Sprintf("%s %s -> %s", a.Source, a.Color, a.Destination)
}

// Equal reports whether two actions are identical.
func (a DraftAction) Equal(other DraftAction) bool {
	return a.Source == other.Source && a.Color == other.Color && a.Destination == other.Destination
}
