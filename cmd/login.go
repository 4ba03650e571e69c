package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dsemenov/userbase/internal/model"
)

var loginCmd = &cobra.Command{
	Use:   "login <username> <password>",
	Short: "Verify a user's credentials",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		account, conn, err := newAccountService(ctx)
		if err != nil {
			return err
		}
		defer conn.Close()

		id, err := account.Authenticate(ctx, args[0], args[1])
		if err != nil {
			return errors.New(model.UserMessage(err))
		}

		fmt.Printf("Authentication successful! id=%d\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
