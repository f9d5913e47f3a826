package hpanic

import (
	"fmt"
	"runtime/debug"
)

// Error is a recovered panic.
type Error struct {
	Value any
	Stack []byte
}

func (e *Error) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func (e *Error) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

type Option interface {
	do(*options)
}

type optionFunc func(*options)

func (f optionFunc) do(o *options) {
	f(o)
}

type options struct {
	wrap func(err *Error) error
}

// Wrap transforms the recovered panic before it is returned.
func Wrap(f func(err *Error) error) Option {
	return optionFunc(func(o *options) {
		o.wrap = f
	})
}

func RecoverV[T any](f func() (T, error), opts ...Option) (_ T, err error) {
	o := options{}
	for _, opt := range opts {
		opt.do(&o)
	}

	defer func() {
		if rerr := recover(); rerr != nil {
			perr := &Error{Value: rerr, Stack: debug.Stack()}
			if o.wrap != nil {
				err = o.wrap(perr)
			} else {
				err = perr
			}
		}
	}()

	return f()
}
