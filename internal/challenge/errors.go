package challenge

import "errors"

// Sentinel failure kinds. Handlers map these to HTTP status codes with
// errors.Is; everything else is a 500.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)
