// Package eff is the boundary between the pure value core and
// side-effecting I/O. An IO action produces a fresh Result on every Run;
// unlike a Value it is never memoized. Collaborators here adapt actions
// into the pure world (Defer) and materialize value trees back out
// (Print/WriteFile), so value nodes themselves never perform effects.
//
// Key constructs:
// - IO: the collaborator contract, Run() Result[V]
// - Func: adapt an error-returning function, panic-safe per Run
// - Map/Then: derive IO actions from IO actions
// - Defer: capture a single future Run as a memoized Try
// - ReadFile/WriteFile: file collaborators
// - Print/Fprint: materialize a value and write it out
// - Logged: wrap an IO so every Run outcome is logged via zap
//
// The value core never calls Run on its own initiative and never logs;
// both stay on this side of the boundary.
package eff
