package val

import "time"

// Value is a deferred computation yielding exactly one result of type V.
type Value[V any] interface {
	// Lift evaluates the computation on first call and returns the
	// memoized result on every call
	Lift() V
}

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}
