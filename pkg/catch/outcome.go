package catch

import (
	"context"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Outcome is the immutable result of running a fallible operation: either no
// error, or exactly one captured error.
type Outcome struct {
	id        uuid.UUID
	createdAt time.Time
	err       error
}

func newOutcome(err error) Outcome {
	return Outcome{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       err,
	}
}

// Succeeded returns an outcome holding no error.
func Succeeded() Outcome {
	return newOutcome(nil)
}

// Failed returns an outcome holding err. A nil err yields a successful outcome.
func Failed(err error) Outcome {
	return newOutcome(err)
}

// Execute runs op once and captures its failure. A returned error and an
// error passed to panic are both captured as-is, including nil pointers held
// in a non-nil error; other panic values are captured as *PanicError.
func Execute(op func() error) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = newOutcome(recovered(r))
		}
	}()
	return newOutcome(op())
}

// ExecuteContext is Execute for operations that take a context.
func ExecuteContext(ctx context.Context, op func(ctx context.Context) error) Outcome {
	return Execute(func() error {
		return op(ctx)
	})
}

func recovered(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &PanicError{Value: r}
}

func (o Outcome) Err() error {
	return o.err
}

func (o Outcome) HasError() bool {
	return o.err != nil
}

func (o Outcome) IsSuccess() bool {
	return o.err == nil
}

func (o Outcome) Id() uuid.UUID {
	return o.id
}

func (o Outcome) CreatedAt() time.Time {
	return o.createdAt
}

// CatchWith passes the captured error to the first handler whose ErrorType is
// exactly the error's dynamic type. It returns nil when nothing was captured,
// the handler's own error when one matched, and *UnhandledError otherwise.
// Nil handlers are skipped. Handler panics are not recovered.
func (o Outcome) CatchWith(handlers []Handler) error {
	if o.err == nil {
		return nil
	}

	errType := reflect.TypeOf(o.err)
	for i, h := range handlers {
		if h == nil || h.ErrorType() != errType {
			continue
		}

		log().Debug().
			Str("outcome", o.id.String()).
			Stringer("type", errType).
			Int("handler", i).
			Msg("dispatching to handler")
		return h.Handle(o.err)
	}

	log().Debug().
		Str("outcome", o.id.String()).
		Stringer("type", errType).
		Int("handlers", len(handlers)).
		Msg("no handler for error type")
	return &UnhandledError{Cause: o.err}
}

// Catch is the variadic form of CatchWith.
func (o Outcome) Catch(handlers ...Handler) error {
	return o.CatchWith(handlers)
}

// Inspect calls inspect exactly once with the captured error; ok is false
// when the operation succeeded, in which case err is nil.
func (o Outcome) Inspect(inspect func(err error, ok bool)) {
	log().Debug().
		Str("outcome", o.id.String()).
		Bool("failed", o.err != nil).
		Msg("pass-through dispatch")
	inspect(o.err, o.err != nil)
}
