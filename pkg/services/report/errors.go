package report

import "errors"

// StructuralError marks a user-facing problem with the submitted input
// (missing mandatory blocks, invalid period, malformed catalogue). Callers
// use it to tell "your file is wrong" apart from "our system broke".
type StructuralError struct {
	err error
}

func NewStructuralError(err error) *StructuralError {
	return &StructuralError{err: err}
}

func (e *StructuralError) Error() string {
	return e.err.Error()
}

func (e *StructuralError) Unwrap() error {
	return e.err
}

func IsStructural(err error) bool {
	var structural *StructuralError
	return errors.As(err, &structural)
}
