package quality

import (
	"fmt"

	"github.com/azul-practice/core/pkg/model"
)

// Evaluate runs every quality filter against a candidate snapshot's legal
// actions and returns the aggregated Report.
func Evaluate(actions []model.DraftAction, cfg FilterConfig) *Report {
	report := NewReport()
	report.add(checkMinLegalActions(actions, cfg))
	report.add(checkMinUniqueDestinations(actions, cfg))
	report.add(checkMaxFloorRatio(actions, cfg))
	if cfg.RequireNonFloorOption {
		report.add(checkNonFloorOption(actions))
	}
	return report
}

func checkMinLegalActions(actions []model.DraftAction, cfg FilterConfig) CheckResult {
	n := len(actions)
	return CheckResult{
		Name:      "min_legal_actions",
		Satisfied: n >= cfg.MinLegalActions,
		Score:     float64(n),
		Details:   fmt.Sprintf("%d legal actions, need >= %d", n, cfg.MinLegalActions),
	}
}

func checkMinUniqueDestinations(actions []model.DraftAction, cfg FilterConfig) CheckResult {
	seen := make(map[model.Destination]struct{})
	for _, a := range actions {
		seen[a.Destination] = struct{}{}
	}
	return CheckResult{
		Name:      "min_unique_destinations",
		Satisfied: len(seen) >= cfg.MinUniqueDestinations,
		Score:     float64(len(seen)),
		Details:   fmt.Sprintf("%d unique destinations, need >= %d", len(seen), cfg.MinUniqueDestinations),
	}
}

func checkMaxFloorRatio(actions []model.DraftAction, cfg FilterConfig) CheckResult {
	ratio := floorRatio(actions)
	return CheckResult{
		Name:      "max_floor_ratio",
		Satisfied: ratio <= cfg.MaxFloorRatio,
		Score:     ratio,
		Details:   fmt.Sprintf("floor ratio %.2f, need <= %.2f", ratio, cfg.MaxFloorRatio),
	}
}

func checkNonFloorOption(actions []model.DraftAction) CheckResult {
	for _, a := range actions {
		if a.Destination.Kind != model.DestFloor {
			return CheckResult{Name: "require_non_floor_option", Satisfied: true, Score: 1, Details: "has a non-floor option"}
		}
	}
	return CheckResult{Name: "require_non_floor_option", Satisfied: false, Score: 0, Details: "every legal action targets the floor"}
}

// floorRatio returns the fraction of actions whose destination is the
// floor. An empty action list is treated as all-floor (ratio 1.0) so it
// fails max_floor_ratio rather than passing vacuously.
func floorRatio(actions []model.DraftAction) float64 {
	if len(actions) == 0 {
		return 1.0
	}
	floor := 0
	for _, a := range actions {
		if a.Destination.Kind == model.DestFloor {
			floor++
		}
	}
	return float64(floor) / float64(len(actions))
}
