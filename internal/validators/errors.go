package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidName     = errors.New("invalid key name")
	ErrInvalidScope    = errors.New("invalid scope")
	ErrInvalidIdentity = errors.New("invalid identity")
	ErrValueTooLong    = errors.New("value is too long")
	ErrInvalidValue    = errors.New("value is not valid UTF-8")
)
