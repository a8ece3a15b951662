package eff

import "github.com/ib-77/lazyv/pkg/val"

// IO is a side-effecting action. Every Run re-executes the effect and
// allocates a new Result; callers wanting at-most-once execution go
// through Defer.
type IO[V any] interface {
	Run() val.Result[V]
}

// Func adapts an error-returning function into an IO. Run recovers panics
// raised by the function, so it never raises to its caller.
type Func[V any] func() (V, error)

func (f Func[V]) Run() val.Result[V] {
	return val.TryOf[V](f).Result()
}

type mapped[In, Out any] struct {
	action IO[In]
	f      func(In) Out
}

func (m mapped[In, Out]) Run() val.Result[Out] {
	in := m.action.Run()
	if in.IsFailure() {
		return val.FailureFrom[In, Out](in)
	}
	return val.Success(m.f(in.Result()))
}

// Map derives an IO whose successful results are transformed by f.
// Failures pass through with their original identity.
func Map[In, Out any](action IO[In], f func(In) Out) IO[Out] {
	return mapped[In, Out]{action: action, f: f}
}

type then[In, Out any] struct {
	action IO[In]
	next   func(In) IO[Out]
}

func (t then[In, Out]) Run() val.Result[Out] {
	in := t.action.Run()
	if in.IsFailure() {
		return val.FailureFrom[In, Out](in)
	}
	return t.next(in.Result()).Run()
}

// Then sequences two IO actions, feeding the first success into the
// second action. A failure short-circuits the second Run.
func Then[In, Out any](action IO[In], next func(In) IO[Out]) IO[Out] {
	return then[In, Out]{action: action, next: next}
}

// Defer bridges an IO action into the pure value world: the returned Try
// performs exactly one Run, on first read, and memoizes its outcome for
// both the Lift and Result views.
func Defer[V any](action IO[V]) *val.Try[V] {
	return val.TryOf(func() (V, error) {
		r := action.Run()
		return r.Result(), r.Err()
	})
}
