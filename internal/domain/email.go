package domain

import (
	"regexp"
	"strings"
)

// emailPattern enforces the strict local@domain shape ChapterDesk accepts:
// no whitespace, exactly one @, and a dot somewhere in the domain part.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail trims and lowercases a submitted email and validates its
// shape. Returns a ValidationError when the shape is wrong.
func NormalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", NewValidationError("email", "required")
	}
	if !emailPattern.MatchString(email) {
		return "", NewValidationError("email", "must look like name@example.edu")
	}
	return email, nil
}
