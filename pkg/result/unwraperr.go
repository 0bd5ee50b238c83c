package result

// UnwrapError is the panic payload raised by the extracting accessors
// (Unwrap, UnwrapErr, Expect, ExpectErr and their option counterparts)
// when invoked against the variant that does not hold the requested
// payload. It is distinct from the caller's E type: it signals misuse of
// the container API, never a domain failure.
type UnwrapError struct {
	msg string
}

func NewUnwrapError(msg string) *UnwrapError {
	return &UnwrapError{msg: msg}
}

func (e *UnwrapError) Error() string {
	if e.msg == "" {
		return "container does not hold the requested variant"
	}
	return e.msg
}
