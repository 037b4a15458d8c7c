package auth

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"orderprocessor/cmd/opctl/cmd/types"
	"orderprocessor/internal/app/client"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account",
	Long: `Registers a new account on the Order Processor API server.

After registration use 'opctl auth login' to obtain a session.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("client app not initialized")
		}

		fmt.Print("Login: ")
		var login string
		_, _ = fmt.Scanln(&login)

		fmt.Print("Email: ")
		var email string
		_, _ = fmt.Scanln(&email)

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		fmt.Print("Repeat password: ")
		passwordConfirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		if string(password) != string(passwordConfirm) {
			return fmt.Errorf("passwords do not match")
		}

		id, err := app.Register(cmd.Context(), login, email, string(password))
		if err != nil {
			return err
		}

		fmt.Printf("Registered user #%d. Now log in: opctl auth login\n", id)

		return nil
	},
}
