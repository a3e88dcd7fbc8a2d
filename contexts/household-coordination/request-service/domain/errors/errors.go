package errors

import "errors"

var (
	ErrInvalidInput         = errors.New("request input is invalid")
	ErrRequestNotFound      = errors.New("request not found")
	ErrInvalidTransition    = errors.New("request status transition is not allowed")
	ErrNotClaimer           = errors.New("only the claimer can complete a request")
	ErrNotificationNotFound = errors.New("notification not found")
)
