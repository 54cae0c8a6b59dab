package middlewares

import (
	"fmt"
	"regexp"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// CorrectEmailChecker reports whether the address looks deliverable.
func CorrectEmailChecker(email string) bool {
	return emailPattern.MatchString(email)
}

// CheckInput validates a provider login form. The email is optional; when
// omitted the identity claims fill it in later.
func CheckInput(username, email string) error {
	if username == "" {
		return ErrEmptyField
	}

	if len(username) < 3 {
		return fmt.Errorf("%w: minimum 3 characters required", ErrUsernameTooShort)
	}

	if email != "" && !CorrectEmailChecker(email) {
		return ErrInvalidEmail
	}

	return nil
}
