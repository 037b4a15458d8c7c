package order

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"orderprocessor/internal/domain/order"
)

var listFormat string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your orders",
	Long:  `Lists all orders belonging to the logged-in account, newest first.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		list, err := app.ListOrders(cmd.Context())
		if err != nil {
			return err
		}

		switch listFormat {
		case "json":
			return printOrdersJSON(list)
		case "table":
			return printOrdersTable(list.Orders)
		default:
			return printOrdersSimple(list.Orders)
		}
	},
}

func printOrdersSimple(orders []order.Item) error {
	if len(orders) == 0 {
		fmt.Println("No orders found")
		return nil
	}

	fmt.Printf("Found orders: %d\n\n", len(orders))

	for i, o := range orders {
		fmt.Printf("%d. #%d %s (%s)\n", i+1, o.ID, o.Product, o.Status)
		fmt.Printf("   Amount: %.2f | Created: %s\n\n",
			o.Amount,
			o.CreatedAt.Format("2006-01-02"))
	}

	return nil
}

func printOrdersTable(orders []order.Item) error {
	if len(orders) == 0 {
		fmt.Println("No orders found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tProduct\tAmount\tStatus\tCreated\tUpdated\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t---\t\n")

	for _, o := range orders {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%s\t%s\t%s\t\n",
			o.ID,
			truncate(o.Product, 30),
			o.Amount,
			string(o.Status),
			o.CreatedAt.Format("2006-01-02"),
			o.UpdatedAt.Format("2006-01-02"),
		)
	}

	w.Flush()
	fmt.Printf("\nTotal orders: %d\n", len(orders))
	return nil
}

func printOrdersJSON(list order.ListResponse) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(list)
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}

func init() {
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "simple", "output format (simple, table, json)")
}
