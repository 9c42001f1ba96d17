package reducer

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrInvalidAction indicates an action descriptor that cannot be resolved
	// to a type tag.
	ErrInvalidAction = errors.New("invalid action")
	// ErrHandlerRequired indicates a missing action handler.
	ErrHandlerRequired = errors.New("action handler is required")
	// ErrMissingHandlers indicates required action types without a handler.
	ErrMissingHandlers = errors.New("action types without handler")
)

// Type identifies an action.
type Type string

// Action describes an event to be reduced into state.
//
// PayloadJSON carries the fields beyond the type tag. The zero Action is the
// absent action and never matches a handler.
type Action struct {
	Type        Type
	PayloadJSON []byte
}

// ActionType returns the action's type tag.
func (a Action) ActionType() Type {
	return a.Type
}

// IsZero reports whether the action is absent.
func (a Action) IsZero() bool {
	return a.Type == "" && len(a.PayloadJSON) == 0
}

// Typer is implemented by action descriptors that carry a type tag.
type Typer interface {
	ActionType() Type
}

// ResolveType resolves a registration descriptor to its type tag.
//
// Accepted shapes are a descriptor (Action, *Action or any Typer), a
// zero-argument function returning a descriptor (such as func() Action,
// func() *Action or func() T for any Typer T), or a bare tag (string or
// Type). Function descriptors are invoked once. Nil descriptors and an empty
// resolved tag are rejected.
func ResolveType(action any) (Type, error) {
	var t Type
	switch v := action.(type) {
	case string:
		t = Type(v)
	case Type:
		t = v
	case func() Action:
		if v == nil {
			return "", fmt.Errorf("%w: action function is nil", ErrInvalidAction)
		}
		t = v().Type
	case func() *Action:
		if v == nil {
			return "", fmt.Errorf("%w: action function is nil", ErrInvalidAction)
		}
		return descriptorType(v())
	case func() Typer:
		if v == nil {
			return "", fmt.Errorf("%w: action function is nil", ErrInvalidAction)
		}
		return descriptorType(v())
	case Typer:
		return descriptorType(v)
	default:
		if fn := reflect.ValueOf(action); fn.Kind() == reflect.Func {
			return funcType(fn)
		}
		return "", fmt.Errorf("%w: action must be either an object, function or a string, got %T", ErrInvalidAction, action)
	}
	return checkType(t)
}

// descriptorType reads the tag of a descriptor value.
func descriptorType(v Typer) (Type, error) {
	if isNil(v) {
		return "", fmt.Errorf("%w: action is nil", ErrInvalidAction)
	}
	return checkType(v.ActionType())
}

// funcType invokes a zero-argument function whose single result is a
// descriptor.
func funcType(fn reflect.Value) (Type, error) {
	ft := fn.Type()
	if ft.NumIn() != 0 || ft.NumOut() != 1 || !ft.Out(0).Implements(typerType) {
		return "", fmt.Errorf("%w: action function must take no arguments and return a descriptor, got %s", ErrInvalidAction, ft)
	}
	if fn.IsNil() {
		return "", fmt.Errorf("%w: action function is nil", ErrInvalidAction)
	}
	out := fn.Call(nil)[0]
	if out.Kind() == reflect.Interface && out.IsNil() {
		return "", fmt.Errorf("%w: action is nil", ErrInvalidAction)
	}
	return descriptorType(out.Interface().(Typer))
}

var typerType = reflect.TypeOf((*Typer)(nil)).Elem()

func checkType(t Type) (Type, error) {
	if t == "" {
		return "", fmt.Errorf("%w: action type is required", ErrInvalidAction)
	}
	return t, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
