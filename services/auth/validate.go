package auth

import (
	"errors"
	"fmt"
	"nutritrack-go-worker/structs"
	"regexp"
	"strings"
	"unicode"
)

const passwordMinLength = 6

var namePattern = regexp.MustCompile(`^[A-Z][a-zA-Z]*(?:\s[A-Z][a-zA-Z]*)*$`)

// ValidationError carries the message shown next to the claim form.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}

func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// ValidateClaim checks the claim form in the order the fields are shown.
func ValidateClaim(param structs.ClaimParam) error {
	switch {
	case strings.TrimSpace(param.UserID) == "":
		return invalid("Please select a User ID to register.")
	case strings.TrimSpace(param.Name) == "":
		return invalid("Full name cannot be empty.")
	case !namePattern.MatchString(param.Name):
		return invalid("Name must start with a capital letter, followed by letters. Each word in the name should follow this.")
	case strings.TrimSpace(param.PhoneNumber) == "":
		return invalid("Phone number cannot be empty.")
	case strings.TrimSpace(param.Password) == "":
		return invalid("Password cannot be empty.")
	case len(param.Password) < passwordMinLength:
		return invalid(fmt.Sprintf("Password must be at least %d characters long.", passwordMinLength))
	case !strongPassword(param.Password):
		return invalid("Password not strong enough. Must include uppercase, lowercase, digit, and special character.")
	case param.Password != param.ConfirmPassword:
		return invalid("Passwords do not match.")
	}
	return nil
}

func strongPassword(password string) bool {
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(`!@#$%^&*()_+-=[]{};':"\|,.<>/?`, r):
			special = true
		}
	}
	return upper && lower && digit && special
}
