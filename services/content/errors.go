package content

// RetrievalError wraps a failed store read for one source. Loaders absorb
// it at the boundary; it never reaches a handler.
type RetrievalError struct {
	Source string
	Err    error
}

func (e RetrievalError) Error() string {
	return "retrieving " + e.Source + ": " + e.Err.Error()
}

func (e RetrievalError) Unwrap() error {
	return e.Err
}
