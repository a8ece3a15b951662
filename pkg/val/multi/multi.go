package multi

import "github.com/ib-77/lazyv/pkg/val"

type empty[T any] struct{}

func (empty[T]) Lift() []T {
	return nil
}

// Empty returns the canonical zero-item multi-value for item type T. The
// returned instance is zero-sized and immutable, so every call for the
// same item type shares one representation.
func Empty[T any]() val.Value[[]T] {
	return empty[T]{}
}

// Vals wraps a fixed variadic sequence into a multi-value. The sequence
// reference is captured eagerly; combinators applied on top stay lazy.
func Vals[T any](items ...T) val.Value[[]T] {
	return val.Lit(items)
}

// FromValues builds a multi-value whose items are the lifted inner values.
// Lifting is deferred until the multi-value itself is lifted; each inner
// value keeps its own single-evaluation guarantee.
func FromValues[T any](vs ...val.Value[T]) val.Value[[]T] {
	return val.Of(func() []T {
		items := make([]T, 0, len(vs))
		for _, v := range vs {
			items = append(items, v.Lift())
		}
		return items
	})
}

// Items lifts mv and returns its items.
func Items[T any](mv val.Value[[]T]) []T {
	return mv.Lift()
}
