package linkkeep

import (
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	textCodeCredentialsTaken     = "CREDENTIALS_TAKEN"
	textCodeIncorrectCredentials = "INCORRECT_CREDENTIALS"
	textCodeTokenExpired         = "TOKEN_EXPIRED"
	textCodeTokenMalformed       = "TOKEN_MALFORMED"
	textCodeRecordNotFound       = "RECORD_NOT_FOUND"
)

// ErrCredentialsTaken is returned when signup hits the unique email
// constraint. It is the only condition translated from a storage error.
var ErrCredentialsTaken = goerrors.New("credentials taken", goerrors.CategoryConflict).
	WithTextCode(textCodeCredentialsTaken).
	WithCode(goerrors.CodeForbidden)

// ErrIncorrectCredentials is returned for both an unknown email and a
// password mismatch at signin; callers cannot tell which part was wrong.
var ErrIncorrectCredentials = goerrors.New("incorrect credentials", goerrors.CategoryAuth).
	WithTextCode(textCodeIncorrectCredentials).
	WithCode(goerrors.CodeForbidden)

// ErrTokenExpired is returned when a presented token is past its expiry.
var ErrTokenExpired = goerrors.New("authentication token expired", goerrors.CategoryAuth).
	WithTextCode(textCodeTokenExpired).
	WithCode(goerrors.CodeUnauthorized)

// ErrTokenMalformed covers missing, unparsable, or wrongly signed tokens.
var ErrTokenMalformed = goerrors.New("invalid authentication token", goerrors.CategoryAuth).
	WithTextCode(textCodeTokenMalformed).
	WithCode(goerrors.CodeUnauthorized)

// ErrUserNotFound is the owner-scoped miss for user rows.
var ErrUserNotFound = goerrors.New("user not found", goerrors.CategoryNotFound).
	WithTextCode(textCodeRecordNotFound).
	WithCode(goerrors.CodeNotFound)

// ErrBookmarkNotFound is returned when a bookmark id does not exist or
// belongs to another user; the two cases are deliberately the same.
var ErrBookmarkNotFound = goerrors.New("bookmark not found", goerrors.CategoryNotFound).
	WithTextCode(textCodeRecordNotFound).
	WithCode(goerrors.CodeNotFound)

// ErrNoEmptyString rejects empty plaintext passwords before hashing.
var ErrNoEmptyString = goerrors.New("value must not be empty", goerrors.CategoryBadInput).
	WithCode(goerrors.CodeBadRequest)

// IsUniqueViolation reports whether err is a storage-layer rejection of
// a duplicate value in a unique column. Matched on the driver message,
// which is stable across sqlite drivers and postgres.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

// IsRecordNotFound reports whether err represents a missing row.
func IsRecordNotFound(err error) bool {
	if err == nil {
		return false
	}
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return richErr.Category == goerrors.CategoryNotFound
	}
	return false
}

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) && richErr.TextCode == textCodeTokenExpired {
		return true
	}
	return strings.Contains(err.Error(), "token is expired")
}

// IsMalformedError will check for error message
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) && richErr.TextCode == textCodeTokenMalformed {
		return true
	}
	return strings.Contains(err.Error(), "token is malformed") ||
		strings.Contains(err.Error(), "missing or malformed JWT")
}
