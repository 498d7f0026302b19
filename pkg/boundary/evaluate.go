package boundary

import (
	"encoding/json"

	"github.com/azul-practice/core/pkg/evaluator"
	"github.com/azul-practice/core/pkg/genconfig"
	"github.com/azul-practice/core/pkg/model"
)

// EvaluateBestMove implements the evaluate_best_move entry point.
func EvaluateBestMove(stateJSON []byte, playerID int, paramsJSON []byte) []byte {
	state, err := decodeState(stateJSON)
	if err != nil {
		return mustMarshalError(err)
	}
	cfg, err := genconfig.LoadEvaluatorConfigFromJSON(paramsJSON)
	if err != nil {
		return mustMarshalError(err)
	}
	result, err := evaluator.EvaluateBestMove(state, playerID, *cfg)
	if err != nil {
		return mustMarshalError(err)
	}
	return mustMarshalJSON(result)
}

// GradeUserAction implements the grade_user_action entry point.
func GradeUserAction(stateJSON []byte, playerID int, userActionJSON, paramsJSON []byte) []byte {
	state, err := decodeState(stateJSON)
	if err != nil {
		return mustMarshalError(err)
	}
	userAction, err := decodeAction(userActionJSON)
	if err != nil {
		return mustMarshalError(err)
	}
	cfg, err := genconfig.LoadEvaluatorConfigFromJSON(paramsJSON)
	if err != nil {
		return mustMarshalError(err)
	}
	result, err := evaluator.GradeUserAction(state, playerID, userAction, *cfg)
	if err != nil {
		return mustMarshalError(err)
	}
	return mustMarshalJSON(result)
}

func mustMarshalJSON(v any) []byte {
	out, err := json.Marshal(v)
	if err != nil {
		return mustMarshalError(model.Errorf(model.ErrInternal, "serializing result: %v", err))
	}
	return out
}
