package model

import (
	"context"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
}

// User represents a stored user with authentication material.
// PasswordDigest holds the lowercase hex SHA-256 digest of the
// password; the plaintext is never persisted.
type User struct {
	ID             int64
	Username       string
	Email          string
	PasswordDigest string
}
