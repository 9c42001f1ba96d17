// Package reducer builds reducers: pure functions from a state and an action
// to the next state.
//
// A Builder holds an initial state and a table of handlers keyed by action
// type. Build returns a Reducer that looks up the handler for each action's
// type and applies it; actions that are absent or have no handler return the
// state unchanged. Registration errors surface from AddAction, never from
// dispatch.
//
//	b := reducer.New[*State]()
//	b.SetInitialState(&State{})
//	if err := b.AddAction("counter.incremented", incremented); err != nil {
//		return err
//	}
//	r := b.Build()
//	next := r.Reduce(current, reducer.Action{Type: "counter.incremented"})
//
// The package-level SetInitialState, AddAction and BuildReducer operate on a
// single process-wide Builder[any] for callers that only need one reducer.
package reducer
