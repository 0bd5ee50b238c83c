package chain

import "github.com/cffnpwr/result-go/pkg/result"

// Chain wraps a result.Result to enable fluent chaining.
type Chain[T any, E any] struct {
	res result.Result[T, E]
}

// Start creates a new chain from a result.Result.
func Start[T any, E any](r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](value T) Chain[T, error] {
	return Chain[T, error]{res: result.Success[T, error](value)}
}

// Result returns the underlying result.Result.
func (c Chain[T, E]) Result() result.Result[T, E] {
	return c.res
}

// Then composes a function that already returns a Result. It is not
// invoked when the chain is a failure.
func (c Chain[T, E]) Then(onSuccess func(T) result.Result[T, E]) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	v, _ := c.res.Get()
	return Chain[T, E]{res: onSuccess(v)}
}

// Map transforms the successful value to a new value.
func (c Chain[T, E]) Map(onSuccess func(T) T) Chain[T, E] {
	return Chain[T, E]{res: result.Map(c.res, onSuccess)}
}

// MapErr transforms the failure value to a new value.
func (c Chain[T, E]) MapErr(onFailure func(E) E) Chain[T, E] {
	return Chain[T, E]{res: result.MapErr(c.res, onFailure)}
}

// Ensure triggers side effects for success or failure without changing
// the result. Nil callbacks are safe.
func (c Chain[T, E]) Ensure(onSuccess func(T), onFailure func(E)) Chain[T, E] {
	res := c.res
	if onSuccess != nil {
		res = res.Inspect(onSuccess)
	}
	if onFailure != nil {
		res = res.InspectErr(onFailure)
	}
	return Chain[T, E]{res: res}
}

// Or returns c when it is a success, the alternative when that one is,
// and otherwise c's failure.
func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}
	if alternative.res.IsSuccess() {
		return alternative
	}
	return c
}

// And returns c's failure when c failed, otherwise the required chain.
func (c Chain[T, E]) And(required Chain[T, E]) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return required
}

// Finally collapses the chain to a final value.
func (c Chain[T, E]) Finally(onSuccess func(T) T, onFailure func(E) T) T {
	return result.MapOrElse(c.res, onFailure, onSuccess)
}

// Try composes a function that returns (T, error), converting a non-nil
// error into a failure. It is not invoked when the chain is a failure.
func Try[T any](c Chain[T, error], try func(T) (T, error)) Chain[T, error] {
	if c.res.IsFailure() {
		return c
	}
	v, _ := c.res.Get()
	return Chain[T, error]{res: result.From(try(v))}
}
