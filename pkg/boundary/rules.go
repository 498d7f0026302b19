package boundary

import (
	"encoding/json"

	"github.com/azul-practice/core/pkg/model"
	"github.com/azul-practice/core/pkg/rules"
)

// ListLegalActions implements the list_legal_actions entry point. On
// success it returns a JSON array of DraftAction; on failure, the
// {"error": {...}} envelope.
func ListLegalActions(stateJSON []byte, playerID int) []byte {
	state, err := decodeState(stateJSON)
	if err != nil {
		return mustMarshalError(err)
	}
	actions, err := rules.LegalActions(state, playerID)
	if err != nil {
		return mustMarshalError(err)
	}
	out, merr := json.Marshal(actions)
	if merr != nil {
		return mustMarshalError(model.Errorf(model.ErrInternal, "serializing legal actions: %v", merr))
	}
	return out
}

// ApplyAction implements the apply_action entry point. The caller's
// stateJSON is never mutated: decodeState parses a fresh value and
// rules.Apply clones before transforming it.
func ApplyAction(stateJSON, actionJSON []byte) []byte {
	state, err := decodeState(stateJSON)
	if err != nil {
		return mustMarshalError(err)
	}
	action, err := decodeAction(actionJSON)
	if err != nil {
		return mustMarshalError(err)
	}
	next, err := rules.Apply(state, action)
	if err != nil {
		return mustMarshalError(err)
	}
	return mustMarshalState(next)
}

// ResolveEndOfRound implements the resolve_end_of_round entry point.
func ResolveEndOfRound(stateJSON []byte) []byte {
	state, err := decodeState(stateJSON)
	if err != nil {
		return mustMarshalError(err)
	}
	next, err := rules.ResolveEndOfRound(state)
	if err != nil {
		return mustMarshalError(err)
	}
	return mustMarshalState(next)
}

func mustMarshalState(state *model.State) []byte {
	return mustMarshalJSON(state)
}

func mustMarshalError(err error) []byte {
	out, merr := marshalError(err)
	if merr != nil {
		// marshalError only fails if model.Error itself cannot be
		// marshaled, which does not happen for its plain field types.
		panic(merr)
	}
	return out
}
