package auth

import (
	"errors"
	"regexp"
	"strings"
)

var usernameRegex = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// ValidateUsername checks the username format. Usernames are stored
// lowercase; validation happens on the normalized form.
func ValidateUsername(username string) error {
	username = strings.ToLower(strings.TrimSpace(username))

	if len(username) < 3 || len(username) > 20 {
		return errors.New("username must be between 3 and 20 characters")
	}

	if !usernameRegex.MatchString(username) {
		return errors.New("username must start with a letter and contain only letters, numbers, underscores, or hyphens")
	}

	return nil
}

// ValidatePassword enforces the minimum length before hashing.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters long")
	}
	return nil
}

// NormalizeUsername returns the canonical stored form of a username.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
