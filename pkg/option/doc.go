// Package option provides Option[T], an immutable value-or-absence
// container with the same combinator discipline as package result, plus
// set-style Filter and Xor.
//
// Highlights:
// - Some/None: construct an Option[T]
// - IsSome/IsNone/IsSomeAnd: variant predicates
// - Unwrap/Expect: extract or panic with *result.UnwrapError
// - UnwrapOr/UnwrapOrElse/Get: total, non-panicking extraction
// - Filter/Or/OrElse/Xor: set-style selection between options
// - Map/MapOr/MapOrElse/And/AndThen: type-changing combinators
// - OkOr/OkOrElse/FromResult/FromResultErr: conversions to and from
//   result.Result (both directions live here; Go forbids import cycles)
//
// Converting a failure to an option discards the error payload. This is
// deliberate: the error detail is supplied fresh when converting back via
// OkOr or OkOrElse.
package option
