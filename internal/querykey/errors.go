package querykey

import (
	"errors"
	"fmt"
)

// InvalidArgumentError reports an argument to FromParts that is neither a
// string nor a sequence of strings.
type InvalidArgumentError struct {
	// Kind is the key kind being built ("FieldKey" or "SchemaKey").
	Kind string

	// Index is the position of the argument in the FromParts call.
	Index int

	// Value is the rejected argument.
	Value any

	// Reason describes why the argument was rejected.
	Reason string
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s.FromParts: invalid argument %d (%v): %s", e.Kind, e.Index, e.Value, e.Reason)
}

// IsInvalidArgument reports whether err is an InvalidArgumentError.
// Uses errors.As to handle wrapped errors.
func IsInvalidArgument(err error) bool {
	var ie *InvalidArgumentError
	return errors.As(err, &ie)
}

func newInvalidArgument[K Kind](index int, value any, reason string) *InvalidArgumentError {
	var kind K
	return &InvalidArgumentError{
		Kind:   kind.KindName(),
		Index:  index,
		Value:  value,
		Reason: reason,
	}
}
