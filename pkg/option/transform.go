package option

// Map transforms a present value with fn, leaving an absent option
// untouched. fn is not invoked when absent; the absence is recast to the
// new value type with its provenance kept.
func Map[T any, U any](o Option[T], fn func(T) U) Option[U] {
	if o.isSome {
		return Some(fn(o.value))
	}
	return noneFrom[U](o)
}

// MapOr returns fn(value) when present and def when absent. def is a
// plain value; if computing the default is expensive use MapOrElse.
func MapOr[T any, U any](o Option[T], def U, fn func(T) U) U {
	if o.isSome {
		return fn(o.value)
	}
	return def
}

// MapOrElse returns fn(value) when present and defFn() when absent. Only
// the handler for the populated variant is invoked.
func MapOrElse[T any, U any](o Option[T], defFn func() U, fn func(T) U) U {
	if o.isSome {
		return fn(o.value)
	}
	return defFn()
}

// And returns other when o is present, otherwise absent. other is an
// already-constructed value; its construction is not deferred.
func And[T any, U any](o Option[T], other Option[U]) Option[U] {
	if o.isSome {
		return other
	}
	return noneFrom[U](o)
}

// AndThen returns fn(value) when o is present, otherwise absent. fn is
// not invoked on an absent option.
func AndThen[T any, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.isSome {
		return fn(o.value)
	}
	return noneFrom[U](o)
}
