package content

import "errors"

// ErrValidation indicates a required field is missing or malformed.
var ErrValidation = errors.New("content validation failed")
