package order

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"orderprocessor/internal/domain/order"
)

var statusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Advance an order to a new status",
	Long: `Moves an order along its lifecycle.

Valid statuses: pending, paid, shipped, delivered, cancelled.
The server rejects transitions that skip steps or leave a terminal state.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid order id %q", args[0])
		}

		next := order.Status(args[1])
		if !next.Valid() {
			return fmt.Errorf("invalid status %q", args[1])
		}

		updated, err := app.UpdateOrderStatus(cmd.Context(), id, next)
		if err != nil {
			return err
		}

		fmt.Printf("Order #%d is now %s\n", updated.ID, updated.Status)

		return nil
	},
}
