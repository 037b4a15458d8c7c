package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"orderprocessor/cmd/opctl/cmd/auth"
	"orderprocessor/cmd/opctl/cmd/order"
	"orderprocessor/cmd/opctl/cmd/types"
	"orderprocessor/internal/app/client"
	"orderprocessor/internal/app/client/config"
	"orderprocessor/internal/utils/logger"
)

var (
	cfg       *config.Config
	log       *slog.Logger
	app       *client.App
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "opctl",
	Short: "opctl - ops client for the Order Processor API",
	Long: `opctl talks to a running Order Processor API instance.

It covers account registration and login, order management and
health checks. The session token is stored under ~/.orderprocessor.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg = config.MustLoad()

	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	log = logger.New(cfg.Env)

	var err error
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize client: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Order Processor API address (host:port)")

	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(order.OrdersCmd)
	rootCmd.AddCommand(healthCmd)
}
