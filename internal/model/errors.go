package model

import "errors"

var (
	// ErrNotFound is returned when a referenced row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation is returned when a required field is missing or malformed.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidCredentials is returned when email/password do not match a user.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnverified is returned on login when the account email is not verified.
	ErrUnverified = errors.New("account not verified")
	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("email already taken")
	// ErrInvalidToken is returned when a verification token does not match any
	// user, either because it was never issued or because it was already consumed.
	ErrInvalidToken = errors.New("invalid token")
)
