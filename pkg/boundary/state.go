package boundary

import (
	"encoding/json"

	"github.com/azul-practice/core/pkg/model"
)

// decodeState deserializes stateJSON and rejects a state_version or
// ruleset_id mismatch, surfacing both as INVALID_STATE alongside
// ordinary malformed-JSON failures.
func decodeState(stateJSON []byte) (*model.State, error) {
	var s model.State
	if err := json.Unmarshal(stateJSON, &s); err != nil {
		return nil, model.Errorf(model.ErrInvalidState, "parsing state: %v", err)
	}
	if s.StateVersion != model.StateSchemaVersion {
		return nil, model.Errorf(model.ErrInvalidState, "state_version %d does not match supported version %d", s.StateVersion, model.StateSchemaVersion).
			WithContext("state_version", s.StateVersion)
	}
	if s.RulesetID != model.Ruleset {
		return nil, model.Errorf(model.ErrInvalidState, "ruleset_id %q does not match supported ruleset %q", s.RulesetID, model.Ruleset).
			WithContext("ruleset_id", s.RulesetID)
	}
	return &s, nil
}

// decodeAction deserializes a DraftAction, reporting malformed JSON as
// INVALID_STATE: an unparsable action is not a legality failure
// (SOURCE_EMPTY, COLOR_MISMATCH, ...), it is corrupted input.
func decodeAction(actionJSON []byte) (model.DraftAction, error) {
	var a model.DraftAction
	if err := json.Unmarshal(actionJSON, &a); err != nil {
		return model.DraftAction{}, model.Errorf(model.ErrInvalidState, "parsing action: %v", err)
	}
	return a, nil
}
