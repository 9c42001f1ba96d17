package reducer

import (
	"errors"
	"testing"
)

type counterState struct {
	Count int
	Name  string
}

type deltaPayload struct {
	Delta int `json:"delta"`
}

type namePayload struct {
	Name string `json:"name"`
}

func TestHandleTyped_DecodesPayload(t *testing.T) {
	b := New[counterState]()
	if err := HandleTyped(b, "counter.add", func(s counterState, p deltaPayload) counterState {
		s.Count += p.Delta
		return s
	}); err != nil {
		t.Fatalf("handle counter: %v", err)
	}
	if err := HandleTyped(b, "counter.name", func(s counterState, p namePayload) counterState {
		s.Name = p.Name
		return s
	}); err != nil {
		t.Fatalf("handle name: %v", err)
	}
	r := b.Build()

	state := r.Reduce(counterState{}, Action{Type: "counter.add", PayloadJSON: []byte(`{"type":"counter.add","delta":5}`)})
	state = r.Reduce(state, Action{Type: "counter.name", PayloadJSON: []byte(`{"name":"alice"}`)})
	if state.Count != 5 {
		t.Fatalf("count = %d, want 5", state.Count)
	}
	if state.Name != "alice" {
		t.Fatalf("name = %q, want alice", state.Name)
	}
}

func TestHandleTyped_EmptyPayloadDecodesZero(t *testing.T) {
	b := New[counterState]()
	called := false
	if err := HandleTyped(b, "counter.add", func(s counterState, p deltaPayload) counterState {
		called = true
		s.Count += p.Delta + 1
		return s
	}); err != nil {
		t.Fatalf("handle counter: %v", err)
	}

	state := b.Build().Reduce(counterState{Count: 1}, Action{Type: "counter.add"})
	if !called {
		t.Fatal("expected handler to be called")
	}
	if state.Count != 2 {
		t.Fatalf("count = %d, want 2", state.Count)
	}
}

func TestHandleTyped_BadPayloadReturnsStateUnchanged(t *testing.T) {
	b := New[*counterState]()
	if err := HandleTyped(b, "counter.add", func(s *counterState, p deltaPayload) *counterState {
		return &counterState{Count: s.Count + p.Delta}
	}); err != nil {
		t.Fatalf("handle counter: %v", err)
	}

	state := &counterState{Count: 3}
	got := b.Build().Reduce(state, Action{Type: "counter.add", PayloadJSON: []byte(`{bad json`)})
	if got != state {
		t.Fatalf("reduce returned %p, want original state %p", got, state)
	}
}

func TestHandleTyped_RejectsInvalidRegistration(t *testing.T) {
	b := New[counterState]()
	if err := HandleTyped[counterState, deltaPayload](b, "counter.add", nil); !errors.Is(err, ErrHandlerRequired) {
		t.Fatalf("err = %v, want ErrHandlerRequired", err)
	}
	err := HandleTyped(b, 42, func(s counterState, _ deltaPayload) counterState { return s })
	if !errors.Is(err, ErrInvalidAction) {
		t.Fatalf("err = %v, want ErrInvalidAction", err)
	}
}
