package service

import "errors"

// ErrUnknownSource indicates a request named a source with no
// registered adapter.
var ErrUnknownSource = errors.New("unknown content source")

// ErrContentNotFound indicates a URL or id did not resolve to content,
// either upstream or in the library.
var ErrContentNotFound = errors.New("content not found")
