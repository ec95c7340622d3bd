package streamapi

import "fmt"

// ResourceAccessError reports a resource that could not be opened or read.
type ResourceAccessError struct {
	// Op is the failed operation, "open" or "read".
	Op string

	// Name is the name of the resource.
	Name string

	Err error
}

func (e *ResourceAccessError) Error() string {
	return fmt.Sprintf("%s resource %q: %v", e.Op, e.Name, e.Err)
}

func (e *ResourceAccessError) Unwrap() error {
	return e.Err
}
