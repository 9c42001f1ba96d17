package reducer

// std is the process-wide builder behind the package-level helpers.
var std = New[any]()

// Default returns the process-wide builder.
func Default() *Builder[any] {
	return std
}

// SetInitialState sets the initial state of the process-wide builder.
func SetInitialState(state any) {
	std.SetInitialState(state)
}

// AddAction registers a handler on the process-wide builder.
func AddAction(action any, handler Handler[any]) error {
	return std.AddAction(action, handler)
}

// BuildReducer builds a reducer from the process-wide builder.
func BuildReducer() Reducer[any] {
	return std.Build()
}
