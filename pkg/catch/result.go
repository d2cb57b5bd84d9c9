package catch

import "context"

// Result is an Outcome that also carries the value produced by a successful
// operation.
type Result[T any] struct {
	Outcome
	result    T
	hasResult bool
}

// Success returns a result holding r and no error.
func Success[T any](r T) Result[T] {
	return Result[T]{
		Outcome:   Succeeded(),
		result:    r,
		hasResult: true,
	}
}

// Fail returns a result holding err and no value. A nil err yields
// Success with the zero value, as Try does for an operation returning (zero, nil).
func Fail[T any](err error) Result[T] {
	if err == nil {
		var zero T
		return Success(zero)
	}
	return Result[T]{Outcome: Failed(err)}
}

// Try runs op once like Execute. The produced value is kept only when op
// did not fail.
func Try[T any](op func() (T, error)) Result[T] {
	var r T
	out := Execute(func() error {
		var err error
		r, err = op()
		return err
	})

	if out.HasError() {
		return Result[T]{Outcome: out}
	}
	return Result[T]{Outcome: out, result: r, hasResult: true}
}

// TryContext is Try for operations that take a context.
func TryContext[T any](ctx context.Context, op func(ctx context.Context) (T, error)) Result[T] {
	return Try(func() (T, error) {
		return op(ctx)
	})
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) HasResult() bool {
	return r.hasResult
}
