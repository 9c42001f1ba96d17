package reducer

// Reducer maps a state and an action to the next state.
//
// The zero Reducer has no handlers and returns every state unchanged.
type Reducer[S any] struct {
	t *table[S]
}

// Reduce applies the handler registered for action's type. An absent action
// or one without a handler returns state unchanged. Reduce never fails.
func (r Reducer[S]) Reduce(state S, action Action) S {
	if r.t == nil || action.IsZero() {
		return state
	}
	r.t.mu.RLock()
	handler := r.t.handlers[action.Type]
	r.t.mu.RUnlock()
	if handler == nil {
		return state
	}
	return handler(state, action)
}

// Dispatch reduces action against the initial state.
// Dispatch(Action{}) returns the initial state.
func (r Reducer[S]) Dispatch(action Action) S {
	return r.Reduce(r.Initial(), action)
}

// Initial returns the builder's current initial state.
func (r Reducer[S]) Initial() S {
	if r.t == nil {
		var zero S
		return zero
	}
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()
	return r.t.initial
}

// HandledTypes returns the registered action types in first-registration
// order.
func (r Reducer[S]) HandledTypes() []Type {
	if r.t == nil {
		return nil
	}
	return r.t.handledTypes()
}

// Func returns Reduce as a plain function value.
func (r Reducer[S]) Func() func(S, Action) S {
	return r.Reduce
}
