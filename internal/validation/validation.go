// Package validation contains field validators for request payloads.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// MinPasswordLength matches the registration contract of the API.
const MinPasswordLength = 6

// ValidateEmail validates email address format.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("please enter a valid email address")
	}
	return nil
}

// ValidatePassword validates the registration password policy.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("your password must be at least %d characters long", MinPasswordLength)
	}
	return nil
}

// ValidateRequired reports an error naming the field when value is
// empty after trimming.
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// NormalizeSkills turns a comma-delimited skills string into an ordered
// set: entries are trimmed, empties dropped, and duplicates removed
// case-insensitively while the first spelling and the input order win.
func NormalizeSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	seen := make(map[string]struct{}, len(parts))
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		s := strings.TrimSpace(p)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		skills = append(skills, s)
	}
	return skills
}
