// Package chain provides a fluent wrapper around Result[T]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// Key operations:
// - Start/FromValue/FromTry: begin a chain
// - Then/ThenTry/Map: same-type steps as methods, type changes as functions
// - MapErr/OrElse: work on the failure track
// - And/Or: conjunction and disjunction of two chains
// - RepeatUntil/While: loop a step while the chain stays on the success track
// - Ensure: side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
