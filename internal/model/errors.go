package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by repositories when no row matches.
	ErrNotFound = errors.New("not found")

	// ErrUserNotFound and ErrInvalidCredentials are distinct internal
	// authentication failure kinds. They must stay indistinguishable in
	// any user-facing message, see UserMessage.
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthFailedMessage is the single user-facing message for every
// authentication failure, regardless of whether the user exists.
const AuthFailedMessage = "authentication failed"

// ValidationError reports malformed input. It is raised before any
// storage access, so the caller can correct the input and retry.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DuplicateUserError reports a conflict on a unique field detected by
// the storage layer's uniqueness constraint.
type DuplicateUserError struct {
	Field string
}

func (e *DuplicateUserError) Error() string {
	return fmt.Sprintf("user already exists: %s is taken", e.Field)
}

// StorageError wraps an unexpected failure of the underlying store.
// The cause is carried for logging and errors.Is/As matching; it is
// never included in the user-facing message.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// UserMessage maps an error to the message shown to an end user.
// ErrUserNotFound and ErrInvalidCredentials collapse into the same
// generic message so usernames cannot be enumerated, and storage
// causes never leak.
func UserMessage(err error) string {
	var validationErr *ValidationError
	var duplicateErr *DuplicateUserError

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Error()
	case errors.As(err, &duplicateErr):
		return duplicateErr.Error()
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrInvalidCredentials):
		return AuthFailedMessage
	default:
		return "internal error"
	}
}
