package quality

import "github.com/azul-practice/core/pkg/model"

// FilterConfig holds the generator's acceptance thresholds for a candidate
// snapshot.
type FilterConfig struct {
	MinLegalActions       int     `json:"min_legal_actions" yaml:"min_legal_actions"`
	MinUniqueDestinations int     `json:"min_unique_destinations" yaml:"min_unique_destinations"`
	MaxFloorRatio         float64 `json:"max_floor_ratio" yaml:"max_floor_ratio"`
	RequireNonFloorOption bool    `json:"require_non_floor_option" yaml:"require_non_floor_option"`
}

// DefaultFilterConfig returns the default acceptance thresholds.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		MinLegalActions:       6,
		MinUniqueDestinations: 2,
		MaxFloorRatio:         0.5,
		RequireNonFloorOption: true,
	}
}

// Validate rejects out-of-range configuration values.
func (c FilterConfig) Validate() error {
	if c.MinLegalActions < 0 {
		return model.Errorf(model.ErrInvalidParameter, "min_legal_actions must be >= 0, got %d", c.MinLegalActions)
	}
	if c.MinUniqueDestinations < 0 {
		return model.Errorf(model.ErrInvalidParameter, "min_unique_destinations must be >= 0, got %d", c.MinUniqueDestinations)
	}
	if c.MaxFloorRatio < 0 || c.MaxFloorRatio > 1 {
		return model.Errorf(model.ErrInvalidParameter, "max_floor_ratio must be within [0,1], got %f", c.MaxFloorRatio)
	}
	return nil
}
