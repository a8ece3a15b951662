// Package text provides thin text collaborators built on the combinator
// core. They consume Value and multi-value inputs and stay fully lazy.
//
// Key operations:
// - Join: concatenate a string multi-value with a separator
// - Lines: split a string value into a multi-value of lines
// - Fields: split a string value around whitespace
package text
