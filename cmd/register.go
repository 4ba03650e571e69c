package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dsemenov/userbase/internal/model"
)

var registerCmd = &cobra.Command{
	Use:   "register <username> <email> <password>",
	Short: "Register a new user",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		account, conn, err := newAccountService(ctx)
		if err != nil {
			return err
		}
		defer conn.Close()

		id, err := account.Register(ctx, args[0], args[1], args[2])
		if err != nil {
			return errors.New(model.UserMessage(err))
		}

		fmt.Printf("User registered successfully! id=%d\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
}
