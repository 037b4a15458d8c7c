package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd groups the account commands.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Account registration and login",
}

func init() {
	AuthCmd.AddCommand(registerCmd)
	AuthCmd.AddCommand(loginCmd)
}
