package model

import "fmt"

// Color identifies one of the five Azul tile colors. The ordinal values are
// load-bearing: wall-column indexing (see pkg/rules) is defined as
// (row + int(color)) mod NumColors, so renumbering these constants changes
// game behavior.
type Color int

const (
	Blue Color = iota
	Yellow
	Red
	Black
	White
)

// NumColors is the number of distinct tile colors in ruleset azul_v1_2p.
const NumColors = 5

// AllColors lists every color in ordinal order, the order used wherever a
// deterministic color iteration is required (wall scans, multiset dumps).
var AllColors = [NumColors]Color{Blue, Yellow, Red, Black, White}

// String returns the color's name, also used as its JSON object key.
func (c Color) String() string {
	switch c {
	case Blue:
		return "Blue"
	case Yellow:
		return "Yellow"
	case Red:
		return "Red"
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// ParseColor looks up a Color by its String() name. Returns an error for any
// name not in AllColors.
func ParseColor(name string) (Color, error) {
	for _, c := range AllColors {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("model: unknown color %q", name)
}

// MarshalJSON encodes the color as its name string.
func (c Color) MarshalJSON() ([]byte, error) {
	return marshalQuoted(c.String())
}

// UnmarshalJSON decodes a color from its name string.
func (c *Color) UnmarshalJSON(data []byte) error {
	name, err := unmarshalQuoted(data)
	if err != nil {
		return err
	}
	parsed, err := ParseColor(name)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
