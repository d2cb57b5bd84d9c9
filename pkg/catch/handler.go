package catch

import "reflect"

// Handler is a typed entry used by CatchWith and Catch.
type Handler interface {
	// ErrorType returns the concrete error type this handler accepts
	ErrorType() reflect.Type
	// Handle processes an error whose dynamic type equals ErrorType
	Handle(err error) error
}

type typedHandler[E error] struct {
	errType reflect.Type
	handle  func(E) error
}

func (h typedHandler[E]) ErrorType() reflect.Type {
	return h.errType
}

func (h typedHandler[E]) Handle(err error) error {
	return h.handle(err.(E))
}

// On builds a handler for errors of exact type E. It panics with a
// *WildcardTypeError if E is an interface type, and with ErrNilHandle if
// handle is nil.
func On[E error](handle func(E)) Handler {
	if handle == nil {
		panic(ErrNilHandle)
	}
	return OnErr(func(err E) error {
		handle(err)
		return nil
	})
}

// OnErr is like On but the handler may escalate by returning an error, which
// dispatch returns to its caller unchanged.
func OnErr[E error](handle func(E) error) Handler {
	if handle == nil {
		panic(ErrNilHandle)
	}
	t := reflect.TypeOf((*E)(nil)).Elem()
	if err := checkConcrete(t); err != nil {
		panic(err)
	}
	return typedHandler[E]{errType: t, handle: handle}
}

type funcHandler struct {
	errType reflect.Type
	handle  func(error) error
}

func (h funcHandler) ErrorType() reflect.Type {
	return h.errType
}

func (h funcHandler) Handle(err error) error {
	return h.handle(err)
}

// ForType builds a handler from an explicit type tag, for callers that only
// know the type at runtime.
func ForType(t reflect.Type, handle func(error) error) (Handler, error) {
	if handle == nil {
		return nil, ErrNilHandle
	}
	if err := checkConcrete(t); err != nil {
		return nil, err
	}
	if !t.Implements(errorType) {
		return nil, &WildcardTypeError{Type: t, reason: "does not implement error"}
	}
	return funcHandler{errType: t, handle: handle}, nil
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

func checkConcrete(t reflect.Type) error {
	if t == nil {
		return &WildcardTypeError{reason: "nil type"}
	}
	if t.Kind() == reflect.Interface {
		return &WildcardTypeError{Type: t, reason: "interface type matches no concrete error"}
	}
	return nil
}
