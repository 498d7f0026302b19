package boundary

import (
	"encoding/json"

	"github.com/azul-practice/core/pkg/model"
)

// errorEnvelope is the wire shape every failing entry point returns:
// `{ error: { code, message, context? } }`.
type errorEnvelope struct {
	Error *model.Error `json:"error"`
}

// asCoreError normalizes any error into a *model.Error, so every
// boundary entry point's failure path has a code to report. Errors
// that did not already originate as a *model.Error (for example a
// json.Unmarshal failure) are wrapped as INVALID_STATE or
// INVALID_PARAMETER by their call sites, not here; this helper only
// recognizes the core's own typed errors.
func asCoreError(err error) (*model.Error, bool) {
	coreErr, ok := err.(*model.Error)
	return coreErr, ok
}

// marshalError renders err as the boundary's JSON error envelope. If
// err is not already a *model.Error, it is wrapped as INTERNAL, since
// every internal call path is expected to return typed errors and an
// untyped one reaching here indicates a gap in that discipline.
func marshalError(err error) ([]byte, error) {
	coreErr, ok := asCoreError(err)
	if !ok {
		coreErr = model.Errorf(model.ErrInternal, "unclassified error: %v", err)
	}
	return json.Marshal(errorEnvelope{Error: coreErr})
}
