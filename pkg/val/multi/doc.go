// Package multi provides multi-value constructors: values whose payload is
// an ordered, finite sequence of items, represented as val.Value[[]T].
//
// Key constructs:
// - Empty: the zero-item multi-value, one shared immutable instance per item type
// - Vals: wrap a fixed variadic sequence, eager capture, lazy chain on top
// - FromValues: a multi-value whose items are the lifted inner values
// - Items: lift a multi-value and return its items
//
// Raw sequences passed to Vals are exposed as-is; per-item memoization only
// applies when the inner elements are Value instances (FromValues).
package multi
