package terminal

import (
	"fmt"
	"reflect"
	"runtime/debug"
)

// PanicError reports a panic captured by Run. The terminal was restored
// before it was created.
type PanicError struct {
	Value any
	Stack []byte
}

// Message returns the panic text when the payload was textual: a string kind,
// a byte slice or an error. panic(nil) reports the runtime's PanicNilError text.
func (e *PanicError) Message() (string, bool) {
	switch v := e.Value.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	case error:
		return v.Error(), true
	}
	if rv := reflect.ValueOf(e.Value); rv.IsValid() && rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

func (e *PanicError) Error() string {
	if msg, ok := e.Message(); ok {
		return "terminal session panicked: " + msg
	}
	return fmt.Sprintf("terminal session panicked with %T", e.Value)
}

// Unwrap exposes an error payload to errors.Is and errors.As
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Run initializes a Session, calls fn with it and closes the session before
// returning, whether fn returns or panics. A panic is returned as a
// *PanicError and not re-raised. Initialization errors are returned as-is and
// fn is not called.
//
// When fn panics and teardown panics as well, the panic from fn is reported
// and the teardown panic is only logged.
//
// runtime.Goexit inside fn still closes the session but cannot be captured.
func Run[R any](fn func(*Session) R, opts ...Option) (result R, err error) {
	s, err := Initialize(opts...)
	if err != nil {
		return result, err
	}

	var pe *PanicError

	// Deferred first so it observes a teardown panic after Close has run
	defer func() {
		if r := recover(); r != nil && pe == nil {
			pe = newPanicError(r)
		}
		if pe != nil {
			var zero R
			result, err = zero, pe
		}
	}()
	defer s.Close()

	result, pe = call(s, fn)
	return result, nil
}

// call runs fn, capturing a panic with the stack of the panicking goroutine
func call[R any](s *Session, fn func(*Session) R) (result R, pe *PanicError) {
	defer func() {
		if r := recover(); r != nil {
			pe = newPanicError(r)
			s.log.Error("session function panicked", "panic", pe.Error())
		}
	}()
	return fn(s), nil
}

func newPanicError(r any) *PanicError {
	return &PanicError{Value: r, Stack: debug.Stack()}
}

// Do is Run for functions without a result
func Do(fn func(*Session), opts ...Option) error {
	_, err := Run(func(s *Session) struct{} {
		fn(s)
		return struct{}{}
	}, opts...)
	return err
}
