package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voyago/rides-go-sdk/pkg/payloads"
)

var (
	flagLatitude  float64
	flagLongitude float64
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Product operations",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the products available at a location",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := newLibrary()
		if err != nil {
			return err
		}

		location := payloads.Location{Latitude: flagLatitude, Longitude: flagLongitude}
		products, err := lib.Products().List(cmd.Context(), location)
		if err != nil {
			return err
		}

		if len(products) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no products available here")
			return nil
		}
		for _, p := range products {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tseats %d\n", p.ProductID, p.DisplayName, p.Capacity)
		}
		return nil
	},
}

var productsGetCmd = &cobra.Command{
	Use:   "get <product-id>",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := newLibrary()
		if err != nil {
			return err
		}

		product, err := lib.Products().Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if product == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "product not available")
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", product.DisplayName, product.ProductID)
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", product.Description)
		fmt.Fprintf(cmd.OutOrStdout(), "  seats: %d  shared: %t\n", product.Capacity, product.Shared)
		if pd := product.PriceDetails; pd != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "  base fare: %.2f %s\n", pd.Base, pd.CurrencyCode)
		}
		return nil
	},
}

func init() {
	productsListCmd.Flags().Float64Var(&flagLatitude, "lat", 0, "pickup latitude")
	productsListCmd.Flags().Float64Var(&flagLongitude, "lon", 0, "pickup longitude")
	_ = productsListCmd.MarkFlagRequired("lat")
	_ = productsListCmd.MarkFlagRequired("lon")

	productsCmd.AddCommand(productsListCmd)
	productsCmd.AddCommand(productsGetCmd)
}
