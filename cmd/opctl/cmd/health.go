package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"orderprocessor/cmd/opctl/cmd/types"
	"orderprocessor/internal/app/client"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check server health",
	Long:  `Probes the liveness endpoint, then the readiness endpoint with the per-dependency report.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("client app not initialized")
		}

		if err := app.HealthCheck(cmd.Context()); err != nil {
			return fmt.Errorf("liveness check failed: %w", err)
		}
		fmt.Println("liveness:  healthy")

		status, database, cache, err := app.ReadyCheck(cmd.Context())
		if err != nil {
			return fmt.Errorf("readiness check failed: %w", err)
		}

		fmt.Printf("readiness: %s\n", status)
		fmt.Printf("  database: %s\n", database)
		fmt.Printf("  cache:    %s\n", cache)

		return nil
	},
}
