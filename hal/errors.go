package hal

import (
	"errors"
	"fmt"
)

// ErrPayloadConversion is matched by errors.Is for every PayloadConversionError.
var ErrPayloadConversion = errors.New("hal: payload conversion failed")

// PayloadConversionError reports a payload that could not be converted to
// JSON when building a Document. Err holds the serializer's error.
type PayloadConversionError struct {
	Err error
}

// Error implements error.
func (e *PayloadConversionError) Error() string {
	return fmt.Sprintf("%s: %v", ErrPayloadConversion, e.Err)
}

// Unwrap returns the serializer error.
func (e *PayloadConversionError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrPayloadConversion.
func (e *PayloadConversionError) Is(target error) bool {
	return target == ErrPayloadConversion
}
