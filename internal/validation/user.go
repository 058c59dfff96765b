// Package validation holds input validation rules for user-supplied fields.
package validation

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// ValidateUsername enforces the username format: 3-30 chars, letters, digits,
// underscore, dot or dash.
func ValidateUsername(username string) error {
	if len(username) < 3 || len(username) > 30 {
		return errors.New("username must be between 3 and 30 characters")
	}
	if !usernameRe.MatchString(username) {
		return errors.New("username may only contain letters, digits, '_', '.' and '-'")
	}
	return nil
}

// ValidateEmail checks the email address format.
func ValidateEmail(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return errors.New("invalid email address")
	}
	return nil
}

// ValidatePassword enforces a minimum password strength.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if len(password) > 72 {
		// bcrypt truncates input beyond 72 bytes
		return errors.New("password must be at most 72 characters")
	}
	return nil
}
