package auth

import "errors"

var (
	// ErrEmptyField rejects signup/login requests with a blank username or password.
	ErrEmptyField = errors.New("username and password are required")

	// ErrUsernameTaken rejects signup when the normalized username already exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials covers both unknown user and wrong password, so the
	// response never confirms whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
