// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. They take a context first so they can be lifted into the
// channel stages of package lite unchanged.
//
// Highlights:
// - Succeed/Fail/Cancel: construct Result[T]
// - Validate/AndValidate/ValidateAll: turn checks into failures
// - Switch/Map/MapErr/OrElse: context-aware forms of the rop combinators
// - Try: call a function (Out, error) and convert error to failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error/cancel handlers
package solo
