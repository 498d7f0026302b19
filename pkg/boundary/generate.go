package boundary

import (
	"context"

	"github.com/azul-practice/core/pkg/genconfig"
	"github.com/azul-practice/core/pkg/generator"
)

// GenerateScenario implements the generate_scenario entry point.
func GenerateScenario(ctx context.Context, paramsJSON []byte) []byte {
	cfg, err := genconfig.LoadGeneratorConfigFromJSON(paramsJSON)
	if err != nil {
		return mustMarshalError(err)
	}
	state, err := generator.GenerateScenario(ctx, *cfg)
	if err != nil {
		return mustMarshalError(err)
	}
	return mustMarshalState(state)
}
