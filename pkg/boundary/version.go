package boundary

import (
	"encoding/json"

	"github.com/azul-practice/core/pkg/model"
)

// EngineVersion identifies this build of the core, independent of the
// wire schema (model.StateSchemaVersion) it speaks. Bump it on any
// behavioral change a host might want to log or gate on, even one that
// leaves the schema and ruleset untouched.
const EngineVersion = "1.0.0"

type versionInfo struct {
	EngineVersion string `json:"engine_version"`
	StateVersion  int    `json:"state_version"`
	RulesetID     string `json:"ruleset_id"`
}

// GetVersion implements the get_version entry point.
func GetVersion() []byte {
	out, err := json.Marshal(versionInfo{
		EngineVersion: EngineVersion,
		StateVersion:  model.StateSchemaVersion,
		RulesetID:     model.Ruleset,
	})
	if err != nil {
		// versionInfo has no unmarshalable fields; this cannot fail.
		panic(err)
	}
	return out
}
