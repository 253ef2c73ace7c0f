package utils

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	// MinPasswordLength is the shortest password accepted at registration, in characters
	MinPasswordLength = 6
	// MaxPasswordBytes is the bcrypt input limit
	MaxPasswordBytes = 72
)

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrPasswordTooLong  = errors.New("password must be at most 72 bytes")
)

// NormalizeUsername folds a username to its stored form. Usernames are case-insensitive.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// ValidateCredentials checks registration input against the account policy
func ValidateCredentials(username, password string) error {
	if NormalizeUsername(username) == "" {
		return ErrUsernameRequired
	}
	if password == "" {
		return ErrPasswordRequired
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > MaxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}
