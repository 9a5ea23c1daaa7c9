package auth

import "errors"

var (
	LoginFailedErr       = errors.New("Login failed. Please try again.")
	RegistrationErr      = errors.New("Registration failed. Please try again.")
	PasswordMismatchErr  = errors.New("Passwords do not match")
	MissingCredentialErr = errors.New("email and password are required")
)
