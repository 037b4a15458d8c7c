package order

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid order id %q", args[0])
		}

		found, err := app.GetOrder(cmd.Context(), id)
		if err != nil {
			return err
		}

		if getFormat == "json" {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(found)
		}

		fmt.Printf("Order #%d\n", found.ID)
		fmt.Printf("  Product: %s\n", found.Product)
		fmt.Printf("  Amount:  %.2f\n", found.Amount)
		fmt.Printf("  Status:  %s\n", found.Status)
		fmt.Printf("  Created: %s\n", found.CreatedAt.Format(time.RFC3339))
		fmt.Printf("  Updated: %s\n", found.UpdatedAt.Format(time.RFC3339))

		return nil
	},
}

var getFormat string

func init() {
	getCmd.Flags().StringVarP(&getFormat, "format", "f", "simple", "output format (simple, json)")
}
