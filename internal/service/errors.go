package service

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("item not found")
	ErrStorage            = errors.New("storage error")
)

// ValidationError carries the client-facing reason a request was rejected.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Unwrap() error { return ErrValidation }

var (
	ErrInvalidID           = &ValidationError{Msg: "Invalid item ID format."}
	ErrInvalidRegisterName = &ValidationError{Msg: "Username is required (string, min 3 chars)."}
	ErrInvalidRegisterPass = &ValidationError{Msg: "Password is required (string, min 6 chars)."}
	ErrPasswordTooLong     = &ValidationError{Msg: "Password must be at most 72 bytes."}
	ErrInvalidLogin        = &ValidationError{Msg: "Username and password are required and must be strings."}
	ErrInvalidItemName     = &ValidationError{Msg: "Item name is required and cannot be empty."}
	ErrInvalidItemDesc     = &ValidationError{Msg: "Item description must be a string."}
	ErrInvalidSearchQuery  = &ValidationError{Msg: "Search query is required."}
)
