package bind

import (
	"errors"
	"fmt"

	"github.com/goccy/snowflake-bindings/types"
)

var ErrInvalidUTF8 = errors.New("bind: encoded value is not valid UTF-8")

// WrongTypeError reports a Go value that cannot be bound as the requested snowflake type.
type WrongTypeError struct {
	Type   types.Type
	GoType string
}

func newWrongTypeError(typ types.Type, v interface{}) *WrongTypeError {
	return &WrongTypeError{Type: typ, GoType: fmt.Sprintf("%T", v)}
}

func (e *WrongTypeError) Error() string {
	return fmt.Sprintf(
		"cannot convert between the Go type `%s` and the snowflake type `%s`",
		e.GoType, e.Type,
	)
}

// EncodingError is returned when an encoder produced bytes that are not valid UTF-8.
// Offset is the position of the first invalid byte.
type EncodingError struct {
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s (first invalid byte at offset %d)", ErrInvalidUTF8, e.Offset)
}

func (e *EncodingError) Unwrap() error {
	return ErrInvalidUTF8
}

// SerializationError wraps a JSON serializer failure for a structured value.
type SerializationError struct {
	GoType string
	Cause  error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("failed to serialize %s as json: %v", e.GoType, e.Cause)
}

func (e *SerializationError) Unwrap() error {
	return e.Cause
}
