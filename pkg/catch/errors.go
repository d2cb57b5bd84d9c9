package catch

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUnhandled matches any *UnhandledError via errors.Is.
var ErrUnhandled = errors.New("catch: an error was not properly handled")

// ErrNilHandle is reported when a handler is built without a handle func.
var ErrNilHandle = errors.New("catch: nil handle func")

// UnhandledError is returned by dispatch when an error was captured but no
// handler targets its exact type.
type UnhandledError struct {
	Cause error
}

func (e *UnhandledError) Error() string {
	return fmt.Sprintf("%s: %v", ErrUnhandled.Error(), e.Cause)
}

func (e *UnhandledError) Unwrap() error {
	return e.Cause
}

func (e *UnhandledError) Is(target error) bool {
	return target == ErrUnhandled
}

// PanicError holds a recovered panic value that was not itself an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("catch: panic: %v", e.Value)
}

// WildcardTypeError reports a handler target type that cannot be matched
// exactly against a concrete error.
type WildcardTypeError struct {
	Type   reflect.Type
	reason string
}

func (e *WildcardTypeError) Error() string {
	if e.Type == nil {
		return "catch: invalid handler type: " + e.reason
	}
	return fmt.Sprintf("catch: invalid handler type %v: %s", e.Type, e.reason)
}
