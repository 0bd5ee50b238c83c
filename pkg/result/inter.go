package result

// Getter is the total, comma-ok read side shared by the containers.
type Getter[T any] interface {
	// Get returns the held value and whether it is present.
	Get() (T, bool)
}

// Unwrapper is the extracting read side shared by the containers. Unwrap
// and Expect panic with *UnwrapError when the value is not present.
type Unwrapper[T any] interface {
	Getter[T]
	Unwrap() T
	Expect(msg string) T
	UnwrapOr(def T) T
}
