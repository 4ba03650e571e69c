package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dsemenov/userbase/internal/model"
)

const (
	demoUsername = "john_doe"
	demoEmail    = "john@example.com"
	demoPassword = "SecurePass123"
)

func runDemo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	account, conn, err := newAccountService(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	id, err := account.Register(ctx, demoUsername, demoEmail, demoPassword)
	var dup *model.DuplicateUserError
	switch {
	case err == nil:
		fmt.Printf("User registered successfully! id=%d\n", id)
	case errors.As(err, &dup):
		// Rerunning the demo against an existing store is fine; the
		// user is already there and we proceed to authenticate.
		fmt.Println("Username already exists!")
	default:
		return errors.New(model.UserMessage(err))
	}

	if _, err := account.Authenticate(ctx, demoUsername, demoPassword); err != nil {
		return errors.New(model.UserMessage(err))
	}
	fmt.Println("Authentication successful!")

	info, err := account.GetUserInfo(ctx, demoUsername)
	if err != nil {
		return errors.New(model.UserMessage(err))
	}
	fmt.Printf("User ID: %d, Username: %s, Email: %s\n", info.ID, info.Username, info.Email)

	return nil
}
