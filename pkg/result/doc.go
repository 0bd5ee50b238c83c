// Package result provides Result[T, E], an immutable success-or-failure
// container, together with combinators for transforming and chaining
// outcomes without branching on the variant at every step.
//
// Highlights:
// - Success/Fail: construct a Result[T, E]
// - IsSuccess/IsFailure/IsSuccessAnd/IsFailureAnd: variant predicates
// - Unwrap/UnwrapErr/Expect/ExpectErr: extract or panic with *UnwrapError
// - UnwrapOr/UnwrapOrElse/Get/GetErr: total, non-panicking extraction
// - Inspect/InspectErr: side effects that return the receiver unchanged
// - Map/MapErr/MapOr/MapOrElse: transform one side of the outcome
// - And/AndThen/Or/OrElse: combine and chain outcomes
//
// Operations whose output carries a new type parameter are package-level
// functions; Go methods cannot introduce type parameters.
package result
