package result

// Map transforms the success value with fn, leaving a failure untouched.
// fn is not invoked on a failure; the failure is recast to the new success
// type with its provenance kept.
func Map[T any, U any, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.isSuccess {
		return Success[U, E](fn(r.value))
	}
	return failureFrom[U](r)
}

// MapErr transforms the failure value with fn, leaving a success untouched.
func MapErr[T any, E any, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.isSuccess {
		return successFrom[F](r)
	}
	return Fail[T](fn(r.err))
}

// MapOr returns fn(value) on a success and def on a failure. def is a
// plain value; if computing the default is expensive use MapOrElse.
func MapOr[T any, U any, E any](r Result[T, E], def U, fn func(T) U) U {
	if r.isSuccess {
		return fn(r.value)
	}
	return def
}

// MapOrElse returns fn(value) on a success and defFn(err) on a failure.
// Only the handler for the populated variant is invoked.
func MapOrElse[T any, U any, E any](r Result[T, E], defFn func(E) U, fn func(T) U) U {
	if r.isSuccess {
		return fn(r.value)
	}
	return defFn(r.err)
}

// And returns other if r is a success, otherwise r's failure recast.
// other is an already-constructed value; its construction is not deferred.
func And[T any, U any, E any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if r.isSuccess {
		return other
	}
	return failureFrom[U](r)
}

// AndThen returns fn(value) if r is a success, otherwise r's failure
// recast. fn is not invoked on a failure.
func AndThen[T any, U any, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.isSuccess {
		return fn(r.value)
	}
	return failureFrom[U](r)
}

// Or returns r recast to the new error type if r is a success, otherwise
// other.
func Or[T any, E any, F any](r Result[T, E], other Result[T, F]) Result[T, F] {
	if r.isSuccess {
		return successFrom[F](r)
	}
	return other
}

// OrElse returns r recast if r is a success, otherwise fn(err). fn is not
// invoked on a success.
func OrElse[T any, E any, F any](r Result[T, E], fn func(E) Result[T, F]) Result[T, F] {
	if r.isSuccess {
		return successFrom[F](r)
	}
	return fn(r.err)
}
