package val

import (
	"fmt"
	"sync"
)

// Try is a Value over a fallible computation. A single memoized evaluation
// backs both views: Lift yields the success payload (or the zero value of
// T on failure) and Result yields the full Result[T]. Reading either view
// never panics.
type Try[T any] struct {
	once   sync.Once
	action func() (T, error)
	res    Result[T]
}

// TryOf captures an error-returning computation. Panics raised by the
// computation are recovered and reified as Failure as well.
func TryOf[T any](action func() (T, error)) *Try[T] {
	return &Try[T]{action: action}
}

// Catch captures a computation that signals errors only by panicking.
func Catch[T any](action func() T) *Try[T] {
	return TryOf(func() (T, error) {
		return action(), nil
	})
}

func (t *Try[T]) Lift() T {
	t.evaluate()
	return t.res.result
}

func (t *Try[T]) Result() Result[T] {
	t.evaluate()
	return t.res
}

func (t *Try[T]) evaluate() {
	t.once.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				t.res = Failure[T](asError(r))
			}
		}()

		out, err := t.action()
		t.action = nil
		if err != nil {
			t.res = Failure[T](err)
			return
		}
		t.res = Success(out)
	})
}

func asError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}
