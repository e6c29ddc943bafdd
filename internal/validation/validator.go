package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Errors is a collection of validation errors that satisfies the error
// interface so services can return it directly
type Errors []ValidationError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Field + ": " + ve.Message
	}
	return strings.Join(msgs, "; ")
}

// ValidateRegistration validates a registration payload
func ValidateRegistration(email, username, password string, minPasswordLength int) Errors {
	var errors Errors

	// Validate email
	if email == "" {
		errors = append(errors, ValidationError{Field: "email", Message: "email is required"})
	} else if !emailRegex.MatchString(email) {
		errors = append(errors, ValidationError{Field: "email", Message: "invalid email format", Value: email})
	}

	// Validate username
	if username == "" {
		errors = append(errors, ValidationError{Field: "username", Message: "username is required"})
	} else if !usernameRegex.MatchString(username) {
		errors = append(errors, ValidationError{Field: "username", Message: "username must be 3-30 characters (letters, numbers, underscores)", Value: username})
	}

	// Validate password
	if password == "" {
		errors = append(errors, ValidationError{Field: "password", Message: "password is required"})
	} else if len(password) < minPasswordLength {
		errors = append(errors, ValidationError{Field: "password", Message: fmt.Sprintf("password must be at least %d characters", minPasswordLength)})
	}

	return errors
}

// ValidateContent validates comment content against the length policy.
// Over-length content is rejected, never truncated. Length is measured on
// the trimmed content in runes, not bytes.
func ValidateContent(content string, maxLength int) Errors {
	var errors Errors

	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		errors = append(errors, ValidationError{Field: "content", Message: "content is required"})
	} else if n := len([]rune(trimmed)); n > maxLength {
		errors = append(errors, ValidationError{
			Field:   "content",
			Message: fmt.Sprintf("content exceeds maximum of %d characters (has %d)", maxLength, n),
		})
	}

	return errors
}
