package rules

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/azul-practice/core/pkg/model"
	"github.com/azul-practice/core/pkg/rng"
)

// RefillFactories draws TilesPerFactory tiles per factory from the bag,
// transferring the lid into the bag before a factory's draw whenever the bag
// holds fewer than TilesPerFactory tiles (the "before-next-factory" variant),
// and fills factories partially if bag and lid together run out.
func RefillFactories(state *model.State, r *rng.RNG) {
	for i := range state.Factories {
		state.Factories[i] = model.Multiset{}
		if state.Bag.Total() < model.TilesPerFactory && !state.Lid.IsEmpty() {
			state.Bag.Merge(state.Lid)
			state.Lid = model.Multiset{}
		}
		for t := 0; t < model.TilesPerFactory; t++ {
			if state.Bag.IsEmpty() {
				return
			}
			c := drawOne(state.Bag, r)
			state.Bag.Add(c, -1)
			state.Factories[i].Add(c, 1)
		}
	}
}

// drawOne picks a single color from bag, weighted by remaining count per
// color, using rng.RNG.WeightedChoice.
func drawOne(bag model.Multiset, r *rng.RNG) model.Color {
	weights := make([]float64, model.NumColors)
	for i, c := range model.AllColors {
		weights[i] = float64(bag.Count(c))
	}
	idx := r.WeightedChoice(weights)
	if idx < 0 {
		idx = 0
	}
	return model.AllColors[idx]
}

// RefillRNG derives the deterministic RNG used for factory refills during
// resolve_end_of_round. Refill has no seed parameter of its own at the
// public boundary, so the seed is derived from the state's scenario seed
// (if any) plus a digest of the state's bag/lid contents and round number —
// pkg/rng's H(masterSeed, stageName, configHash) convention, applied so
// that identical states always refill identically and distinct states
// diverge.
func RefillRNG(state *model.State) *rng.RNG {
	h := sha256.Sum256([]byte(state.ScenarioSeed))
	masterSeed := binary.BigEndian.Uint64(h[:8])
	stage := fmt.Sprintf("refill.round.%d", state.RoundNumber)
	return rng.NewRNG(masterSeed, stage, stateDigest(state))
}

// stateDigest summarizes the parts of state that influence a refill draw,
// for use as the configHash parameter to rng.NewRNG.
func stateDigest(state *model.State) []byte {
	var buf bytes.Buffer
	for _, c := range model.AllColors {
		fmt.Fprintf(&buf, "%d:%d;", state.Bag.Count(c), state.Lid.Count(c))
	}
	return buf.Bytes()
}
