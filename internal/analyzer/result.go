package analyzer

// Result is the outcome of one analysis. FromModel is set when the value was
// parsed from a model completion. Degraded is set when the model path was
// expected but unusable and a fallback was substituted.
type Result[T any] struct {
	Value     T
	FromModel bool
	Degraded  bool
	Reason    string
}

func fromModel[T any](v T) Result[T] {
	return Result[T]{Value: v, FromModel: true}
}

// heuristic marks a value computed locally on purpose.
func heuristic[T any](v T, reason string) Result[T] {
	return Result[T]{Value: v, Reason: reason}
}

// fallback marks a value substituted after the model path failed.
func fallback[T any](v T, reason string) Result[T] {
	return Result[T]{Value: v, Degraded: true, Reason: reason}
}
