package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/dsemenov/userbase/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create inserts a new user row inside a transaction and returns the
// row with its store-assigned identity. A unique-constraint conflict
// on username or email surfaces as model.DuplicateUserError.
func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `INSERT INTO users (username, email, password_digest)
			  VALUES (?, ?, ?)
			  RETURNING id`

	err = tx.QueryRowContext(ctx, query,
		user.Username, user.Email, user.PasswordDigest,
	).Scan(&user.ID)
	if err != nil {
		if field, ok := uniqueViolation(err); ok {
			return model.User{}, &model.DuplicateUserError{Field: field}
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return model.User{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var user model.User
	query := `SELECT id, username, email, password_digest
			  FROM users WHERE username = ?`

	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordDigest,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

// uniqueViolation reports whether err is a SQLite unique-constraint
// violation and names the conflicting column.
func uniqueViolation(err error) (string, bool) {
	var serr *sqlite.Error
	if !errors.As(err, &serr) {
		return "", false
	}
	if serr.Code() != sqlite3.SQLITE_CONSTRAINT_UNIQUE && serr.Code() != sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY {
		return "", false
	}

	msg := serr.Error()
	switch {
	case strings.Contains(msg, "users.username"):
		return "username", true
	case strings.Contains(msg, "users.email"):
		return "email", true
	}
	return "user", true
}
