package auth

import "strings"

// validateLoginInput checks the client-side preconditions for a login
// attempt. Failures here never reach the network.
func validateLoginInput(username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return MissingCredentialErr
	}
	return nil
}

// validateRegisterInput checks the registration form before any
// request is sent. The confirm-password gate lives here: a mismatch is
// a validation failure, not a remote one.
func validateRegisterInput(email, password, confirmPassword string) error {
	if password != confirmPassword {
		return PasswordMismatchErr
	}
	if strings.TrimSpace(email) == "" || password == "" {
		return MissingCredentialErr
	}
	return nil
}
