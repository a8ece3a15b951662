// Package val contains the lazy value core: Value[T], the memoized
// deferred computation, and the error-as-value types Result[T] and Try[T].
//
// A Value is built from a zero-argument computation and evaluated on the
// first Lift call only; every later Lift returns the cached result. Values
// compose into a DAG through the comb package without evaluating anything
// until Lift is called on the root.
//
// Key constructs:
// - Of: construct a lazy value from a computation
// - Lit: construct an eager value from a literal
// - Force: evaluate an existing value immediately, keeping the contract
// - Success/Failure: construct Result[T] variants
// - TryOf/Catch: capture a fallible computation as a memoized Try
// - Collect: aggregate a batch of results, joining failure errors
//
// Plain values let evaluation errors propagate to the Lift caller; Try is
// the boundary that reifies them as Result data instead. Pick one path per
// computation.
package val
