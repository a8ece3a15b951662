package comb

import "github.com/ib-77/lazyv/pkg/val"

// Trans applies a pure transform to a single value. The upstream is lifted
// and f applied on the first Lift of the returned value only.
func Trans[In, Out any](in val.Value[In], f func(In) Out) val.Value[Out] {
	return val.Of(func() Out {
		return f(in.Lift())
	})
}

// If branches on a boolean value. Only the selected branch is lifted.
func If[T any](cond val.Value[bool], then val.Value[T], els val.Value[T]) val.Value[T] {
	return Trans(cond, func(c bool) T {
		if c {
			return then.Lift()
		}
		return els.Lift()
	})
}

// Map transforms each item of a multi-value in order, preserving
// cardinality.
func Map[In, Out any](in val.Value[[]In], f func(In) Out) val.Value[[]Out] {
	return val.Of(func() []Out {
		items := in.Lift()

		out := make([]Out, 0, len(items))
		for _, item := range items {
			out = append(out, f(item))
		}
		return out
	})
}

// Filter retains items for which all predicates hold. Predicates are
// applied as successive narrowing passes: the first produces an
// intermediate sequence, the second filters that result, and so on. With
// zero predicates the upstream items pass through unchanged.
func Filter[T any](in val.Value[[]T], predicates ...func(T) bool) val.Value[[]T] {
	return val.Of(func() []T {
		items := in.Lift()

		for _, predicate := range predicates {
			kept := make([]T, 0, len(items))
			for _, item := range items {
				if predicate(item) {
					kept = append(kept, item)
				}
			}
			items = kept
		}
		return items
	})
}

// FilterIs narrows a multi-value to the items whose runtime type is T,
// recast to T. Non-matching items are dropped, never an error. Composed
// from a membership Filter followed by a cast Map.
func FilterIs[T, S any](in val.Value[[]S]) val.Value[[]T] {
	matching := Filter(in, func(item S) bool {
		_, ok := any(item).(T)
		return ok
	})
	return Map(matching, func(item S) T {
		return any(item).(T)
	})
}

// Reduction left-folds a multi-value into a single value, starting from
// the lifted neutral element and applying op in iteration order. An empty
// upstream yields the neutral element unchanged.
func Reduction[T, A any](neutral val.Value[A], in val.Value[[]T], op func(A, T) A) val.Value[A] {
	return val.Of(func() A {
		acc := neutral.Lift()
		for _, item := range in.Lift() {
			acc = op(acc, item)
		}
		return acc
	})
}

// Entry pairs an item with its zero-based position.
type Entry[T any] struct {
	Index int
	Item  T
}

// Indexed pairs each item with its position in iteration order. The
// position counter is private to the returned node; memoization guarantees
// the counting transform runs once.
func Indexed[T any](in val.Value[[]T]) val.Value[[]Entry[T]] {
	next := 0
	return Map(in, func(item T) Entry[T] {
		e := Entry[T]{Index: next, Item: item}
		next++
		return e
	})
}
