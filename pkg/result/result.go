package result

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Result holds either a success value of type T or a failure value of
// type E. Exactly one side is populated; instances are immutable and every
// combinator returns a new value.
type Result[T any, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	isSuccess bool
}

func Success[T any, E any](value T) Result[T, E] {
	return Result[T, E]{
		value:     value,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// From converts Go's conventional (value, error) pair into a Result.
func From[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Fail[T](err)
	}
	return Success[T, error](value)
}

// successFrom recasts a success to a new error type, keeping provenance.
func successFrom[F any, T any, E any](from Result[T, E]) Result[T, F] {
	return Result[T, F]{
		value:     from.value,
		isSuccess: true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// failureFrom recasts a failure to a new success type, keeping provenance.
func failureFrom[U any, T any, E any](from Result[T, E]) Result[U, E] {
	return Result[U, E]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

// IsSuccessAnd reports whether r is a success whose value satisfies pred.
// pred is not invoked on a failure.
func (r Result[T, E]) IsSuccessAnd(pred func(T) bool) bool {
	return r.isSuccess && pred(r.value)
}

// IsFailureAnd reports whether r is a failure whose error satisfies pred.
// pred is not invoked on a success.
func (r Result[T, E]) IsFailureAnd(pred func(E) bool) bool {
	return !r.isSuccess && pred(r.err)
}

// Get returns the success value and whether r is a success.
func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.isSuccess
}

// GetErr returns the failure value and whether r is a failure.
func (r Result[T, E]) GetErr() (E, bool) {
	return r.err, !r.isSuccess
}

// Unwrap returns the success value, panicking with *UnwrapError on a
// failure. Use UnwrapOr, UnwrapOrElse or Get when a failure is expected.
func (r Result[T, E]) Unwrap() T {
	if !r.isSuccess {
		panic(NewUnwrapError(fmt.Sprintf("called Unwrap on a failure: %v", r.err)))
	}
	return r.value
}

// UnwrapErr returns the failure value, panicking with *UnwrapError on a
// success.
func (r Result[T, E]) UnwrapErr() E {
	if r.isSuccess {
		panic(NewUnwrapError(fmt.Sprintf("called UnwrapErr on a success: %v", r.value)))
	}
	return r.err
}

// Expect is Unwrap with a caller-supplied diagnostic.
func (r Result[T, E]) Expect(msg string) T {
	if !r.isSuccess {
		panic(NewUnwrapError(msg))
	}
	return r.value
}

// ExpectErr is UnwrapErr with a caller-supplied diagnostic.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.isSuccess {
		panic(NewUnwrapError(msg))
	}
	return r.err
}

func (r Result[T, E]) UnwrapOr(def T) T {
	if r.isSuccess {
		return r.value
	}
	return def
}

// UnwrapOrElse returns the success value, or fn(err) on a failure. fn is
// not invoked on a success.
func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if r.isSuccess {
		return r.value
	}
	return fn(r.err)
}

// Inspect invokes fn with the success value for its side effect and
// returns the receiver unchanged. fn is not invoked on a failure.
func (r Result[T, E]) Inspect(fn func(T)) Result[T, E] {
	if r.isSuccess {
		fn(r.value)
	}
	return r
}

// InspectErr invokes fn with the failure value for its side effect and
// returns the receiver unchanged. fn is not invoked on a success.
func (r Result[T, E]) InspectErr(fn func(E)) Result[T, E] {
	if !r.isSuccess {
		fn(r.err)
	}
	return r
}

// Equal reports whether both results hold the same variant with
// structurally equal payloads. Provenance is ignored.
func (r Result[T, E]) Equal(other Result[T, E]) bool {
	if r.isSuccess != other.isSuccess {
		return false
	}
	if r.isSuccess {
		return reflect.DeepEqual(r.value, other.value)
	}
	return reflect.DeepEqual(r.err, other.err)
}

func (r Result[T, E]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%v)", r.err)
}

// ID identifies this container instance; recasts keep it, fresh
// constructions mint a new one.
func (r Result[T, E]) ID() uuid.UUID {
	return r.id
}

// CreatedAt is the construction time (UTC).
func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}
