// Package counter is a small sample domain that exercises the reducer
// builder: an integer counter driven by incremented, decremented and reset
// actions.
package counter

import "github.com/louisbranch/reducer/internal/reducer"

const (
	// TypeIncremented adds Amount to the counter.
	TypeIncremented reducer.Type = "counter.incremented"
	// TypeDecremented subtracts Amount from the counter.
	TypeDecremented reducer.Type = "counter.decremented"
	// TypeReset returns the counter to the initial state.
	TypeReset reducer.Type = "counter.reset"
)

// State is the counter state.
type State struct {
	Value   int `json:"value"`
	Changes int `json:"changes"`
}

// AmountPayload carries the amount for increment and decrement actions.
type AmountPayload struct {
	Amount int `json:"amount"`
}

// Types lists every action type the counter handles.
func Types() []reducer.Type {
	return []reducer.Type{TypeIncremented, TypeDecremented, TypeReset}
}

// NewReducer builds the counter reducer with initial as its initial state.
func NewReducer(initial State) (reducer.Reducer[State], error) {
	b := reducer.New[State]()
	b.SetInitialState(initial)
	if err := register(b); err != nil {
		return reducer.Reducer[State]{}, err
	}
	if err := b.ValidateCoverage(Types()...); err != nil {
		return reducer.Reducer[State]{}, err
	}
	return b.Build(), nil
}

func register(b *reducer.Builder[State]) error {
	if err := reducer.HandleTyped(b, TypeIncremented, func(s State, p AmountPayload) State {
		s.Value += p.Amount
		s.Changes++
		return s
	}); err != nil {
		return err
	}
	if err := reducer.HandleTyped(b, reducer.Action{Type: TypeDecremented}, func(s State, p AmountPayload) State {
		s.Value -= p.Amount
		s.Changes++
		return s
	}); err != nil {
		return err
	}
	reset := func() reducer.Action { return reducer.Action{Type: TypeReset} }
	r := b.Build()
	return b.AddAction(reset, func(s State, _ reducer.Action) State {
		next := r.Initial()
		next.Changes = s.Changes + 1
		return next
	})
}
