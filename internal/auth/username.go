package auth

import (
	"regexp"

	apperrors "humanatlas/internal/errors"
)

// MinUsernameLength is the minimum accepted username length.
const MinUsernameLength = 3

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateUsername checks the registration username policy. It is applied at
// sign-up only; existing usernames are never re-validated on login.
func ValidateUsername(username string) error {
	if len(username) < MinUsernameLength {
		return apperrors.NewValidation("Username must be at least %d characters long", MinUsernameLength)
	}
	if !usernameRe.MatchString(username) {
		return apperrors.NewValidation("Username can only contain letters, numbers, underscores, and hyphens")
	}
	return nil
}
