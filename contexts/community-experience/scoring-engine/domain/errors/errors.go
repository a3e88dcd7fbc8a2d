package errors

import "errors"

var (
	ErrInvalidInput = errors.New("scoring input is invalid")
)
