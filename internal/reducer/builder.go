package reducer

import (
	"fmt"
	"strings"
	"sync"
)

// Handler computes the next state for one action type.
type Handler[S any] func(state S, action Action) S

// table is the state shared between a builder and every reducer it builds.
type table[S any] struct {
	mu       sync.RWMutex
	initial  S
	handlers map[Type]Handler[S]
	types    []Type
}

// Builder collects an initial state and action handlers and builds reducers
// from them.
//
// Reducers built from a Builder share its table: handlers registered and
// initial state set after Build are visible to reducers built earlier.
// Builder is safe for concurrent use, though registering everything before
// the first dispatch is the expected pattern.
type Builder[S any] struct {
	t *table[S]
}

// New creates an empty builder.
func New[S any]() *Builder[S] {
	return &Builder[S]{
		t: &table[S]{handlers: make(map[Type]Handler[S])},
	}
}

// SetInitialState stores the state used when a reducer is dispatched without
// one.
func (b *Builder[S]) SetInitialState(state S) {
	b.t.mu.Lock()
	b.t.initial = state
	b.t.mu.Unlock()
}

// AddAction registers handler under the type tag resolved from action. See
// ResolveType for the accepted shapes. Registering a tag again replaces the
// previous handler. On error the builder is left unchanged.
func (b *Builder[S]) AddAction(action any, handler Handler[S]) error {
	if handler == nil {
		return ErrHandlerRequired
	}
	t, err := ResolveType(action)
	if err != nil {
		return err
	}
	b.t.mu.Lock()
	defer b.t.mu.Unlock()
	if _, ok := b.t.handlers[t]; !ok {
		b.t.types = append(b.t.types, t)
	}
	b.t.handlers[t] = handler
	return nil
}

// HandledTypes returns the registered action types in first-registration
// order.
func (b *Builder[S]) HandledTypes() []Type {
	return b.t.handledTypes()
}

// ValidateCoverage reports an error naming every required type that has no
// registered handler.
func (b *Builder[S]) ValidateCoverage(required ...Type) error {
	b.t.mu.RLock()
	var missing []string
	for _, t := range required {
		if _, ok := b.t.handlers[t]; !ok {
			missing = append(missing, string(t))
		}
	}
	b.t.mu.RUnlock()
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingHandlers, strings.Join(missing, ", "))
	}
	return nil
}

// Build returns a reducer backed by the builder's table.
func (b *Builder[S]) Build() Reducer[S] {
	return Reducer[S]{t: b.t}
}

func (t *table[S]) handledTypes() []Type {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]Type(nil), t.types...)
}
