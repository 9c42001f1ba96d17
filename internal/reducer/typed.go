package reducer

import "encoding/json"

// HandleTyped registers a handler that receives the action payload decoded
// into P. An empty payload decodes to the zero P; a payload that does not
// decode leaves the state unchanged.
//
// This is a top-level function because Go disallows method-level type
// parameters on generic types.
func HandleTyped[S, P any](b *Builder[S], action any, fn func(S, P) S) error {
	if fn == nil {
		return ErrHandlerRequired
	}
	return b.AddAction(action, func(state S, a Action) S {
		var payload P
		if len(a.PayloadJSON) > 0 {
			if err := json.Unmarshal(a.PayloadJSON, &payload); err != nil {
				return state
			}
		}
		return fn(state, payload)
	})
}
