package option

import "github.com/cffnpwr/result-go/pkg/result"

// OkOr converts o into a Result: a present value becomes a success, an
// absent option becomes a failure holding err. err is a plain value; if
// building it is expensive use OkOrElse.
func OkOr[T any, E any](o Option[T], err E) result.Result[T, E] {
	if o.isSome {
		return result.Success[T, E](o.value)
	}
	return result.Fail[T](err)
}

// OkOrElse converts o into a Result, computing the failure value with fn
// only when o is absent.
func OkOrElse[T any, E any](o Option[T], fn func() E) result.Result[T, E] {
	if o.isSome {
		return result.Success[T, E](o.value)
	}
	return result.Fail[T](fn())
}

// FromResult converts a Result into an Option over its success value. The
// failure payload is discarded; supply it again via OkOr when converting
// back.
func FromResult[T any, E any](r result.Result[T, E]) Option[T] {
	if v, ok := r.Get(); ok {
		return Some(v)
	}
	return None[T]()
}

// FromResultErr converts a Result into an Option over its failure value.
// The success payload is discarded.
func FromResultErr[T any, E any](r result.Result[T, E]) Option[E] {
	if e, ok := r.GetErr(); ok {
		return Some(e)
	}
	return None[E]()
}
