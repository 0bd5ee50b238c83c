package option

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/cffnpwr/result-go/pkg/result"
)

// Option holds either a present value of type T or nothing. Instances are
// immutable and every combinator returns a new value.
type Option[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	isSome    bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{
		value:     value,
		isSome:    true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func None[T any]() Option[T] {
	return Option[T]{
		isSome:    false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// noneFrom recasts an absent option to a new value type, keeping
// provenance.
func noneFrom[U any, T any](from Option[T]) Option[U] {
	return Option[U]{
		isSome:    false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (o Option[T]) IsSome() bool {
	return o.isSome
}

func (o Option[T]) IsNone() bool {
	return !o.isSome
}

// IsSomeAnd reports whether o is present and its value satisfies pred.
// pred is not invoked on an absent option.
func (o Option[T]) IsSomeAnd(pred func(T) bool) bool {
	return o.isSome && pred(o.value)
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.isSome
}

// Unwrap returns the value, panicking with *result.UnwrapError when
// absent. Use UnwrapOr, UnwrapOrElse or Get when absence is expected.
func (o Option[T]) Unwrap() T {
	if !o.isSome {
		panic(result.NewUnwrapError("called Unwrap on an absent option"))
	}
	return o.value
}

// Expect is Unwrap with a caller-supplied diagnostic.
func (o Option[T]) Expect(msg string) T {
	if !o.isSome {
		panic(result.NewUnwrapError(msg))
	}
	return o.value
}

func (o Option[T]) UnwrapOr(def T) T {
	if o.isSome {
		return o.value
	}
	return def
}

// UnwrapOrElse returns the value, or fn() when absent. fn is not invoked
// on a present option.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.isSome {
		return o.value
	}
	return fn()
}

// Inspect invokes fn with the value for its side effect and returns the
// receiver unchanged. fn is not invoked on an absent option.
func (o Option[T]) Inspect(fn func(T)) Option[T] {
	if o.isSome {
		fn(o.value)
	}
	return o
}

// Filter keeps a present value only when pred holds for it. pred is not
// invoked on an absent option.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.isSome && pred(o.value) {
		return o
	}
	if !o.isSome {
		return o
	}
	return None[T]()
}

// Or returns o when present, otherwise other.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.isSome {
		return o
	}
	return other
}

// OrElse returns o when present, otherwise fn(). fn is not invoked on a
// present option.
func (o Option[T]) OrElse(fn func() Option[T]) Option[T] {
	if o.isSome {
		return o
	}
	return fn()
}

// Xor returns whichever of o and other is present when exactly one is;
// absent when both or neither are.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	if o.isSome && !other.isSome {
		return o
	}
	if !o.isSome && other.isSome {
		return other
	}
	return None[T]()
}

// Equal reports whether both options hold the same variant with
// structurally equal values. Provenance is ignored.
func (o Option[T]) Equal(other Option[T]) bool {
	if o.isSome != other.isSome {
		return false
	}
	if !o.isSome {
		return true
	}
	return reflect.DeepEqual(o.value, other.value)
}

func (o Option[T]) String() string {
	if o.isSome {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// ID identifies this container instance; recasts keep it, fresh
// constructions mint a new one.
func (o Option[T]) ID() uuid.UUID {
	return o.id
}

// CreatedAt is the construction time (UTC).
func (o Option[T]) CreatedAt() time.Time {
	return o.createdAt
}
