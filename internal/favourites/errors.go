package favourites

import "fmt"

// DecodeError is returned when favourites data is not a valid favourites
// document. The store is left unchanged.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode favourites: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ResourceError wraps a failure to read or write a favourites file.
type ResourceError struct {
	Op   string
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s favourites: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s favourites %s: %v", e.Op, e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}
