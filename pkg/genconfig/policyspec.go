package genconfig

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/azul-practice/core/pkg/model"
	"github.com/azul-practice/core/pkg/policy"
)

// PolicySpec names a policy for a configuration file, accepting either a
// bare scalar ("random", "greedy") or a mapping selecting a parameterized
// policy ({mixed: {greedy_ratio: 0.7}}).
type PolicySpec struct {
	Name        string
	GreedyRatio float64
}

// UnmarshalYAML accepts either a scalar policy name or a single-key mapping
// naming a parameterized policy.
func (p *PolicySpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&p.Name)
	}
	if node.Kind == yaml.MappingNode {
		var raw map[string]struct {
			GreedyRatio float64 `yaml:"greedy_ratio"`
		}
		if err := node.Decode(&raw); err != nil {
			return err
		}
		if len(raw) != 1 {
			return fmt.Errorf("policy mapping must have exactly one key, got %d", len(raw))
		}
		for name, params := range raw {
			p.Name = name
			p.GreedyRatio = params.GreedyRatio
		}
		return nil
	}
	return fmt.Errorf("unsupported policy node kind %v", node.Kind)
}

// UnmarshalJSON mirrors UnmarshalYAML for the JSON boundary contract:
// either a bare JSON string or a single-key object.
func (p *PolicySpec) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		p.Name = asString
		return nil
	}
	var raw map[string]struct {
		GreedyRatio float64 `json:"greedy_ratio"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return fmt.Errorf("policy object must have exactly one key, got %d", len(raw))
	}
	for name, params := range raw {
		p.Name = name
		p.GreedyRatio = params.GreedyRatio
	}
	return nil
}

// MarshalJSON renders the scalar form for plain policies and the single-key
// object form for parameterized ones, so round-tripping stays stable.
func (p PolicySpec) MarshalJSON() ([]byte, error) {
	if p.Name == "mixed" {
		return json.Marshal(map[string]any{
			"mixed": map[string]float64{"greedy_ratio": p.GreedyRatio},
		})
	}
	return json.Marshal(p.Name)
}

// Resolve builds the concrete policy.Policy this spec names, failing with
// INVALID_PARAMETER for unrecognized names.
func (p PolicySpec) Resolve() (policy.Policy, error) {
	switch p.Name {
	case "mixed":
		return policy.NewMixed(p.GreedyRatio), nil
	case "":
		return nil, model.Errorf(model.ErrInvalidParameter, "policy name must not be empty")
	default:
		resolved := policy.Get(p.Name)
		if resolved == nil {
			return nil, model.Errorf(model.ErrInvalidParameter, "unrecognized policy %q", p.Name)
		}
		return resolved, nil
	}
}
