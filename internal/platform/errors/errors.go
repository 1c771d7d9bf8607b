package apperrors

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNoSession          = errors.New("no active session")
	ErrDuplicateAccount   = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTaskNotFound       = errors.New("task not found")
	ErrCorrupt            = errors.New("corrupt collection")
	ErrStorage            = errors.New("storage failure")
)
