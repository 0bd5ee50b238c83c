// Package chain provides a fluent wrapper around result.Result[T, E] for
// building synchronous pipelines without branching on the variant at each
// step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a plain value
// - Then: compose a function that already returns a Result
// - Try: call a (T, error) function and convert the error to a failure
// - Map/MapErr: transform the value or the error in place
// - Ensure: run side effects without changing the result
// - Or/And: select between chains by variant
// - Finally: collapse the chain into a final value via handlers
//
// The chain is same-type: methods cannot introduce type parameters, so a
// step that changes T or E goes through the package result combinators and
// a fresh Start.
package chain
