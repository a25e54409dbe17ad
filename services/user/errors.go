package user

import "errors"

// ValidationError marks a locally-detected input problem. It blocks
// submission before any remote call is issued.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// ErrInvalidCredentials hides whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")
