package review

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid review request")
	ErrNotFound       = errors.New("not found")
)
