package param

import (
	"errors"
	"fmt"
)

// ArityError reports a parameter callable invoked with the wrong number
// of arguments. It is a user-facing error raised at the call site;
// execution continues.
type ArityError struct {
	// Param is the parameter's display name, empty if anonymous.
	Param string

	// Got is the number of arguments the caller supplied.
	Got int
}

// Error implements the error interface.
func (e *ArityError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("wrong number of arguments for parameter %s: 0 or 1 argument(s) expected, but got %d",
			e.Param, e.Got)
	}
	return fmt.Sprintf("wrong number of arguments for a parameter: 0 or 1 argument(s) expected, but got %d", e.Got)
}

// IsArityError returns true if err is an arity error.
// Uses errors.As to handle wrapped errors.
func IsArityError(err error) bool {
	var ae *ArityError
	return errors.As(err, &ae)
}
