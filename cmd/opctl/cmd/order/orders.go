package order

import (
	"fmt"

	"github.com/spf13/cobra"

	"orderprocessor/cmd/opctl/cmd/types"
	"orderprocessor/internal/app/client"
)

// OrdersCmd groups the order management commands.
var OrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Manage orders",
	Long:  `Create, list, inspect, advance and delete orders. Requires a session, see 'opctl auth login'.`,
}

// appFromContext pulls the client set up by the root command.
func appFromContext(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok {
		return nil, fmt.Errorf("client app not initialized")
	}
	return app, nil
}

func init() {
	OrdersCmd.AddCommand(createCmd)
	OrdersCmd.AddCommand(listCmd)
	OrdersCmd.AddCommand(getCmd)
	OrdersCmd.AddCommand(statusCmd)
	OrdersCmd.AddCommand(deleteCmd)
}
