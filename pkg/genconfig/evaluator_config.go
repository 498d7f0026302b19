package genconfig

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/azul-practice/core/pkg/model"
)

const (
	defaultRolloutsPerAction = 30
	defaultShortlistSize     = 20
)

// RolloutConfig names the self-play policy pair the evaluator rolls
// candidates out with.
type RolloutConfig struct {
	ActivePlayerPolicy PolicySpec `yaml:"active_player_policy" json:"active_player_policy"`
	OpponentPolicy     PolicySpec `yaml:"opponent_policy" json:"opponent_policy"`
}

// EvaluatorConfig is the evaluate_best_move / grade_user_action parameter
// surface. EvaluatorSeed is required; the rest default when absent or
// zero.
type EvaluatorConfig struct {
	EvaluatorSeed      int64         `yaml:"evaluator_seed" json:"evaluator_seed"`
	TimeBudgetMs       int           `yaml:"time_budget_ms,omitempty" json:"time_budget_ms,omitempty"`
	RolloutsPerAction  int           `yaml:"rollouts_per_action" json:"rollouts_per_action"`
	ShortlistSize      int           `yaml:"shortlist_size" json:"shortlist_size"`
	RolloutConfig      RolloutConfig `yaml:"rollout_config" json:"rollout_config"`
	evaluatorSeedGiven bool
}

// DefaultEvaluatorConfig returns a config with default sample counts and a
// random/random self-play pair. EvaluatorSeed must still be set
// by the caller; it has no meaningful zero value.
func DefaultEvaluatorConfig() EvaluatorConfig {
	return EvaluatorConfig{
		RolloutsPerAction: defaultRolloutsPerAction,
		ShortlistSize:     defaultShortlistSize,
		RolloutConfig: RolloutConfig{
			ActivePlayerPolicy: PolicySpec{Name: "random"},
			OpponentPolicy:     PolicySpec{Name: "random"},
		},
	}
}

// LoadEvaluatorConfigFromBytes parses a YAML evaluator configuration, filling
// in defaults for zero-valued fields before validating. evaluator_seed must
// be present in data; an empty or literal-zero value is accepted as long as
// the key is present, since 0 is itself a legal seed value, but an
// entirely absent key fails Validate.
func LoadEvaluatorConfigFromBytes(data []byte) (*EvaluatorConfig, error) {
	cfg := DefaultEvaluatorConfig()

	var probe map[string]yaml.Node
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, model.Errorf(model.ErrInvalidParameter, "parsing evaluator config: %v", err)
	}
	if _, ok := probe["evaluator_seed"]; ok {
		cfg.evaluatorSeedGiven = true
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, model.Errorf(model.ErrInvalidParameter, "parsing evaluator config: %v", err)
	}
	if cfg.RolloutsPerAction == 0 {
		cfg.RolloutsPerAction = defaultRolloutsPerAction
	}
	if cfg.ShortlistSize == 0 {
		cfg.ShortlistSize = defaultShortlistSize
	}
	if cfg.RolloutConfig.ActivePlayerPolicy.Name == "" {
		cfg.RolloutConfig.ActivePlayerPolicy = PolicySpec{Name: "random"}
	}
	if cfg.RolloutConfig.OpponentPolicy.Name == "" {
		cfg.RolloutConfig.OpponentPolicy = PolicySpec{Name: "random"}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEvaluatorConfigFromJSON mirrors LoadEvaluatorConfigFromBytes for the
// JSON request bodies pkg/boundary accepts. Unrecognized top-level keys
// are rejected with INVALID_PARAMETER.
func LoadEvaluatorConfigFromJSON(data []byte) (*EvaluatorConfig, error) {
	cfg := DefaultEvaluatorConfig()

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, model.Errorf(model.ErrInvalidParameter, "parsing evaluator config: %v", err)
	}
	if _, ok := probe["evaluator_seed"]; ok {
		cfg.evaluatorSeedGiven = true
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, model.Errorf(model.ErrInvalidParameter, "parsing evaluator config: %v", err)
	}
	if cfg.RolloutsPerAction == 0 {
		cfg.RolloutsPerAction = defaultRolloutsPerAction
	}
	if cfg.ShortlistSize == 0 {
		cfg.ShortlistSize = defaultShortlistSize
	}
	if cfg.RolloutConfig.ActivePlayerPolicy.Name == "" {
		cfg.RolloutConfig.ActivePlayerPolicy = PolicySpec{Name: "random"}
	}
	if cfg.RolloutConfig.OpponentPolicy.Name == "" {
		cfg.RolloutConfig.OpponentPolicy = PolicySpec{Name: "random"}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks all evaluator configuration constraints, rejecting the
// first problem found.
func (c *EvaluatorConfig) Validate() error {
	if !c.evaluatorSeedGiven {
		return model.NewError(model.ErrInvalidParameter, "evaluator_seed is required")
	}
	if c.TimeBudgetMs < 0 {
		return model.Errorf(model.ErrInvalidParameter, "time_budget_ms must be >= 0, got %d", c.TimeBudgetMs)
	}
	if c.RolloutsPerAction <= 0 {
		return model.Errorf(model.ErrInvalidParameter, "rollouts_per_action must be > 0, got %d", c.RolloutsPerAction)
	}
	if c.ShortlistSize <= 0 {
		return model.Errorf(model.ErrInvalidParameter, "shortlist_size must be > 0, got %d", c.ShortlistSize)
	}
	if _, err := c.RolloutConfig.ActivePlayerPolicy.Resolve(); err != nil {
		return err
	}
	if _, err := c.RolloutConfig.OpponentPolicy.Resolve(); err != nil {
		return err
	}
	return nil
}

// SeedGiven reports whether evaluator_seed was present in the parsed input,
// distinguishing an explicit 0 from an absent field (exported for tests and
// for callers constructing EvaluatorConfig by hand).
func (c *EvaluatorConfig) SeedGiven() bool { return c.evaluatorSeedGiven }

// MarkSeedGiven lets callers who build an EvaluatorConfig programmatically
// (not via YAML) satisfy Validate's required-seed check.
func (c *EvaluatorConfig) MarkSeedGiven() { c.evaluatorSeedGiven = true }
