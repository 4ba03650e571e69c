package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dsemenov/userbase/internal/model"
)

var infoCmd = &cobra.Command{
	Use:   "info <username>",
	Short: "Show a registered user's id, username and email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		account, conn, err := newAccountService(ctx)
		if err != nil {
			return err
		}
		defer conn.Close()

		info, err := account.GetUserInfo(ctx, args[0])
		if err != nil {
			return errors.New(model.UserMessage(err))
		}

		fmt.Printf("User ID: %d, Username: %s, Email: %s\n", info.ID, info.Username, info.Email)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
