package val

import "sync"

type lazy[V any] struct {
	once    sync.Once
	compute func() V
	cached  V
}

// Of constructs a lazy value. The computation does not run at construction
// time; the first Lift runs it exactly once, also under concurrent first
// access, and caches the result.
func Of[V any](compute func() V) Value[V] {
	return &lazy[V]{compute: compute}
}

func (l *lazy[V]) Lift() V {
	l.once.Do(func() {
		l.cached = l.compute()
		l.compute = nil
	})
	return l.cached
}

type lit[V any] struct {
	v V
}

// Lit constructs an already-evaluated value from a literal.
func Lit[V any](v V) Value[V] {
	return lit[V]{v: v}
}

func (l lit[V]) Lift() V {
	return l.v
}

// Force evaluates v before returning, while keeping the Value contract for
// downstream consumers.
func Force[V any](v Value[V]) Value[V] {
	return Lit(v.Lift())
}
