package order

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	createProduct string
	createAmount  float64
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new order",
	Long:  `Creates a new order in the pending state.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		id, err := app.CreateOrder(cmd.Context(), createProduct, createAmount)
		if err != nil {
			return err
		}

		fmt.Printf("Created order #%d\n", id)

		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&createProduct, "product", "p", "", "product name")
	createCmd.Flags().Float64VarP(&createAmount, "amount", "a", 0, "order amount")
	_ = createCmd.MarkFlagRequired("product")
	_ = createCmd.MarkFlagRequired("amount")
}
