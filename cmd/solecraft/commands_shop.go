package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solecraft/client-go/api"
	"github.com/solecraft/client-go/internal/utils"
)

func newServicesCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "services",
		Short: "List repair services",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(*verbose)
			if err != nil {
				return err
			}
			services, err := a.client.Services(cmd.Context())
			if err != nil {
				return err
			}
			for _, svc := range services {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-28s £%-7.2f %s\n", svc.ID, svc.Name, svc.Price, svc.Duration)
			}
			return nil
		},
	}
}

func newProductsCmd(verbose *bool) *cobra.Command {
	var query api.ProductQuery

	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the shop catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(*verbose)
			if err != nil {
				return err
			}
			page, err := a.client.Products(cmd.Context(), query)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range page.Products {
				stock := "in stock"
				if !p.InStock {
					stock = "out of stock"
				}
				fmt.Fprintf(out, "%-10s %-28s £%-7.2f %-12s %.1f★\n", p.ID, p.Name, p.Price, stock, p.Rating)
			}
			fmt.Fprintf(out, "Page %d of %d (%d items)\n",
				page.Pagination.CurrentPage, page.Pagination.TotalPages, page.Pagination.TotalItems)
			return nil
		},
	}
	cmd.Flags().IntVar(&query.Page, "page", 1, "page number")
	cmd.Flags().StringVar(&query.Search, "search", "", "search term")
	cmd.Flags().StringVar(&query.Brand, "brand", "", "filter by brand")
	cmd.Flags().StringVar(&query.Category, "category", "", "filter by category")
	cmd.Flags().StringVar(&query.SortBy, "sort", "", "sort order (price-low, price-high, rating)")
	return cmd
}

func newCartCmd(verbose *bool) *cobra.Command {
	cart := &cobra.Command{
		Use:   "cart",
		Short: "Manage the shopping cart",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Show cart contents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(*verbose)
			if err != nil {
				return err
			}
			items, err := a.client.Cart(cmd.Context())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Cart is empty")
				return nil
			}
			total := 0.0
			for _, item := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%-38s %-28s x%-3d £%.2f\n", item.ID, item.Name, item.Quantity, item.Price)
				total += item.Price * float64(item.Quantity)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total: £%.2f\n", total)
			return nil
		},
	}

	var quantity int
	add := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*verbose)
			if err != nil {
				return err
			}
			if err := a.client.AddToCart(cmd.Context(), args[0], quantity); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Added to cart")
			return nil
		},
	}
	add.Flags().IntVarP(&quantity, "quantity", "q", 1, "quantity to add")

	remove := &cobra.Command{
		Use:   "remove <item-id>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*verbose)
			if err != nil {
				return err
			}
			if err := a.client.RemoveFromCart(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed from cart")
			return nil
		},
	}

	cart.AddCommand(list, add, remove)
	return cart
}

func newStatsCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate shop figures",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(*verbose)
			if err != nil {
				return err
			}
			resp, err := a.client.Stats(cmd.Context())
			if err != nil {
				return err
			}
			stats := utils.Value(resp)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Products:       %d (%d in stock)\n", stats.TotalProducts, stats.InStockProducts)
			fmt.Fprintf(out, "Orders:         %d\n", stats.TotalOrders)
			fmt.Fprintf(out, "Average rating: %.1f\n", stats.AverageRating)
			return nil
		},
	}
}

func newCobblersCmd(verbose *bool) *cobra.Command {
	var query api.CobblerQuery
	var services string

	cmd := &cobra.Command{
		Use:   "cobblers",
		Short: "Find cobblers near a location",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(*verbose)
			if err != nil {
				return err
			}
			if services != "" {
				query.Services = strings.Split(services, ",")
			}
			cobblers, err := a.client.Cobblers(cmd.Context(), query)
			if err != nil {
				return err
			}
			for _, c := range cobblers {
				verified := ""
				if c.Verified {
					verified = " ✓"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-26s %.1f★ (%d reviews) %s%s\n",
					c.ID, c.Name, c.Rating, c.Reviews, c.Distance, verified)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&query.Lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&query.Lng, "lng", 0, "longitude")
	cmd.Flags().Float64Var(&query.Radius, "radius", 0, "search radius in km")
	cmd.Flags().BoolVar(&query.VerifiedOnly, "verified", false, "only verified cobblers")
	cmd.Flags().StringVar(&query.Search, "search", "", "search term")
	cmd.Flags().StringVar(&services, "services", "", "comma-separated required services")
	cmd.MarkFlagRequired("lat") //nolint:errcheck
	cmd.MarkFlagRequired("lng") //nolint:errcheck
	return cmd
}
