package genconfig

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/azul-practice/core/pkg/model"
	"github.com/azul-practice/core/pkg/quality"
)

// GeneratorConfig is the generate_scenario parameter surface.
type GeneratorConfig struct {
	TargetGameStage  model.GameStage      `yaml:"target_game_stage,omitempty" json:"target_game_stage,omitempty"`
	TargetRoundStage model.RoundStage     `yaml:"target_round_stage,omitempty" json:"target_round_stage,omitempty"`
	Seed             string               `yaml:"seed" json:"seed"`
	PolicyMix        PolicySpec           `yaml:"policy_mix" json:"policy_mix"`
	FilterConfig     quality.FilterConfig `yaml:"filter_config" json:"filter_config"`
}

// DefaultGeneratorConfig returns a config with no stage targets, a random
// policy mix, and the default filter thresholds. Seed is left empty;
// pkg/generator auto-generates one when the field is absent.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PolicyMix:    PolicySpec{Name: "random"},
		FilterConfig: quality.DefaultFilterConfig(),
	}
}

// LoadGeneratorConfigFromBytes parses a YAML generator configuration,
// filling in defaults for zero-valued fields before validating.
// Unrecognized top-level keys are rejected with INVALID_PARAMETER.
func LoadGeneratorConfigFromBytes(data []byte) (*GeneratorConfig, error) {
	cfg := DefaultGeneratorConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, model.Errorf(model.ErrInvalidParameter, "parsing generator config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadGeneratorConfigFromJSON mirrors LoadGeneratorConfigFromBytes for the
// JSON request bodies pkg/boundary accepts.
func LoadGeneratorConfigFromJSON(data []byte) (*GeneratorConfig, error) {
	cfg := DefaultGeneratorConfig()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, model.Errorf(model.ErrInvalidParameter, "parsing generator config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks all generator configuration constraints, rejecting the
// first problem found.
func (c *GeneratorConfig) Validate() error {
	switch c.TargetGameStage {
	case "", model.GameEarly, model.GameMid, model.GameLate:
	default:
		return model.Errorf(model.ErrInvalidParameter, "target_game_stage must be one of EARLY, MID, LATE, got %q", c.TargetGameStage)
	}
	switch c.TargetRoundStage {
	case "", model.RoundStart, model.RoundMid, model.RoundEnd:
	default:
		return model.Errorf(model.ErrInvalidParameter, "target_round_stage must be one of START, MID, END, got %q", c.TargetRoundStage)
	}
	if _, err := c.PolicyMix.Resolve(); err != nil {
		return err
	}
	if err := c.FilterConfig.Validate(); err != nil {
		return model.Errorf(model.ErrInvalidParameter, "filter_config: %v", err)
	}
	return nil
}
