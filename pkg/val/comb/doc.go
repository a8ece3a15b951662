// Package comb contains the combinator layer: lazy nodes that compose
// values and multi-values into an evaluation DAG. Nothing evaluates until
// Lift is called on the root; each node memoizes its own result, and a
// shared upstream is evaluated once no matter how many downstream nodes
// reference it.
//
// Key operations:
// - Trans: single-value pure transform
// - If: conditional branching derived from Trans over a boolean value
// - Map: element-wise transform, preserves order and cardinality
// - Filter: retain items passing all predicates, applied as successive narrowing passes
// - FilterIs: narrow to items of a runtime type, a membership Filter plus a cast Map
// - Reduction: left fold from a neutral element, the sole multi-to-single collapse
// - Indexed: pair items with zero-based positions
//
// Combinator nodes never mutate their inputs; they only read Lift.
package comb
