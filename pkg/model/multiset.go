package model

import (
	"encoding/json"
	"fmt"
)

// Multiset is a fixed-size counter per Color, per the Design Notes'
// explicitly-permitted optimization over a sparse map: the domain has at
// most 5 distinct colors, so a [NumColors]int array is both simpler and
// faster than a map, while the external JSON form stays sparse (absent key
// means zero), which MarshalJSON/UnmarshalJSON below implement.
type Multiset [NumColors]int

// Count returns the number of tiles of c in the multiset.
func (m Multiset) Count(c Color) int {
	return m[c]
}

// Total returns the total number of tiles across all colors.
func (m Multiset) Total() int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}

// Add increments the count of c by n (n may be negative). It never produces
// a negative count; callers must not remove more tiles than are present.
func (m *Multiset) Add(c Color, n int) {
	m[c] += n
	if m[c] < 0 {
		panic(fmt.Sprintf("model: multiset count for %s went negative", c))
	}
}

// TakeAll zeroes the count for c and returns how many were removed. This is
// the core operation behind a draft action: "take all tiles of one color".
func (m *Multiset) TakeAll(c Color) int {
	n := m[c]
	m[c] = 0
	return n
}

// Merge adds every count in other into m, used when folding leftover
// factory tiles into the center, or floor/pattern-line discards into the lid.
func (m *Multiset) Merge(other Multiset) {
	for c := range AllColors {
		m[c] += other[c]
	}
}

// IsEmpty reports whether every color count is zero.
func (m Multiset) IsEmpty() bool {
	return m.Total() == 0
}

// Clone returns an independent copy (Multiset is a value type, so this is
// just for readability at call sites that want to make the copy explicit).
func (m Multiset) Clone() Multiset {
	return m
}

// MarshalJSON encodes the multiset as a sparse object, e.g. {"Blue":3,"Red":2},
// omitting zero-count colors entirely; an empty multiset encodes as {}.
func (m Multiset) MarshalJSON() ([]byte, error) {
	out := make(map[string]int, NumColors)
	for _, c := range AllColors {
		if n := m[c]; n != 0 {
			out[c.String()] = n
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a sparse multiset object. Absent keys are treated as
// zero; unknown color names are rejected.
func (m *Multiset) UnmarshalJSON(data []byte) error {
	var in map[string]int
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("model: invalid multiset: %w", err)
	}
	var out Multiset
	for name, n := range in {
		c, err := ParseColor(name)
		if err != nil {
			return err
		}
		out[c] = n
	}
	*m = out
	return nil
}
