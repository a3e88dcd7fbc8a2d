package errors

import "errors"

var (
	ErrInvalidInput       = errors.New("pool input is invalid")
	ErrPoolNotFound       = errors.New("pool not found")
	ErrInviteCodeNotFound = errors.New("invite code does not match any pool")
	ErrNotMember          = errors.New("user is not a member of the pool")
	ErrNotAdmin           = errors.New("only a pool admin can perform this action")
)
