package service

import (
	"context"
	"errors"
	"strings"

	"github.com/dsemenov/userbase/internal/logger"
	"github.com/dsemenov/userbase/internal/model"
	"github.com/dsemenov/userbase/internal/security"
)

// MinPasswordLength is the documented minimum password policy.
const MinPasswordLength = 8

// Account provides user registration and credential verification over
// an explicitly passed user store.
type Account struct {
	userStore model.UserStore
	logger    *logger.Logger
}

func NewAccount(userStore model.UserStore, logger *logger.Logger) *Account {
	return &Account{
		userStore: userStore,
		logger:    logger,
	}
}

// Register validates the input, computes the password digest and
// persists a new user row, returning the store-assigned identity.
// Validation runs eagerly, before any storage access.
func (a *Account) Register(ctx context.Context, username, email, password string) (int64, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if err := validateRegistration(username, email, password); err != nil {
		a.logger.Info("Account service: registration rejected",
			"username", username,
			"error", err.Error())
		return 0, err
	}

	user := model.User{
		Username:       username,
		Email:          email,
		PasswordDigest: security.Digest(password),
	}

	saved, err := a.userStore.Create(ctx, user)
	if err != nil {
		var dup *model.DuplicateUserError
		if errors.As(err, &dup) {
			a.logger.Info("Account service: user already exists",
				"username", username,
				"field", dup.Field)
			return 0, dup
		}
		a.logger.Error("Account service: failed to create user",
			"username", username,
			"error", err.Error())
		return 0, &model.StorageError{Op: "register", Err: err}
	}

	a.logger.Info("Account service: user registered",
		"username", username,
		"user_id", saved.ID)

	return saved.ID, nil
}

// Authenticate looks the user up by username, recomputes the digest of
// the supplied password and compares it against the stored one. The
// two failure kinds it returns, model.ErrUserNotFound and
// model.ErrInvalidCredentials, share one user-facing message.
func (a *Account) Authenticate(ctx context.Context, username, password string) (int64, error) {
	if username == "" {
		return 0, &model.ValidationError{Field: "username", Reason: "must not be empty"}
	}
	if password == "" {
		return 0, &model.ValidationError{Field: "password", Reason: "must not be empty"}
	}

	user, err := a.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Account service: authentication failed, unknown user",
			"username", username)
		return 0, model.ErrUserNotFound
	}
	if err != nil {
		a.logger.Error("Account service: failed to get user by username",
			"username", username,
			"error", err.Error())
		return 0, &model.StorageError{Op: "authenticate", Err: err}
	}

	if !security.Compare(user.PasswordDigest, password) {
		a.logger.Info("Account service: authentication failed, digest mismatch",
			"username", username)
		return 0, model.ErrInvalidCredentials
	}

	a.logger.Debug("Account service: authentication succeeded",
		"username", username,
		"user_id", user.ID)

	return user.ID, nil
}

// GetUserInfo returns the stored identity, username and email for a
// registered user. The password digest is never exposed.
func (a *Account) GetUserInfo(ctx context.Context, username string) (model.User, error) {
	user, err := a.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrUserNotFound
	}
	if err != nil {
		a.logger.Error("Account service: failed to get user info",
			"username", username,
			"error", err.Error())
		return model.User{}, &model.StorageError{Op: "get user info", Err: err}
	}

	user.PasswordDigest = ""
	return user, nil
}

func validateRegistration(username, email, password string) error {
	if username == "" {
		return &model.ValidationError{Field: "username", Reason: "must not be empty"}
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return &model.ValidationError{Field: "password", Reason: "must not be empty"}
	}
	if len(password) < MinPasswordLength {
		return &model.ValidationError{Field: "password", Reason: "must be at least 8 characters long"}
	}
	return nil
}

// validateEmail enforces the basic address shape: exactly one "@" with
// non-empty local and domain parts.
func validateEmail(email string) error {
	if email == "" {
		return &model.ValidationError{Field: "email", Reason: "must not be empty"}
	}

	local, domain, found := strings.Cut(email, "@")
	if !found || strings.Contains(domain, "@") {
		return &model.ValidationError{Field: "email", Reason: "must contain exactly one @"}
	}
	if local == "" {
		return &model.ValidationError{Field: "email", Reason: "missing local part"}
	}
	if domain == "" {
		return &model.ValidationError{Field: "email", Reason: "missing domain part"}
	}
	return nil
}
