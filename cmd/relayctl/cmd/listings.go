package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/auctionsniper/ebay-relay/internal/api/client"
	"github.com/auctionsniper/ebay-relay/internal/ebay"
)

func listingsCmd() *cobra.Command {
	var (
		graders  []string
		grades   []string
		tags     []string
		buying   []string
		priceMin float64
		priceMax float64
		limit    int
		offset   int
	)

	cmd := &cobra.Command{
		Use:   "listings [query]",
		Short: "Search graded card listings",
		Long:  "Search eBay for graded Pokemon cards through the relay's listing filter.",
		Example: `  relayctl listings charizard
  relayctl listings pikachu --grader PSA --grade 10
  relayctl listings --grader BGS --tag "Black Label" --price-max 500
  relayctl listings mewtwo --buying-option AUCTION --output json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := &apiclient.SearchParams{
				Limit:  limit,
				Offset: offset,
				AspectFilters: ebay.AspectCriteria{
					GraderNames:   graders,
					Grades:        grades,
					SpecialtyTags: tags,
				},
				Filters: apiclient.SearchFilters{BuyingOptions: buying},
			}
			if len(args) > 0 {
				params.Query = args[0]
			}
			if cmd.Flags().Changed("price-min") {
				params.Filters.PriceMin = &priceMin
			}
			if cmd.Flags().Changed("price-max") {
				params.Filters.PriceMax = &priceMax
			}

			result, err := newClient().SearchListings(cmd.Context(), params)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(result)
			}

			if len(result.Items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No listings found.")
				return nil
			}

			if err := printItemsTable(cmd.OutOrStdout(), result.Items); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nShowing %d of %d (offset %d)\n",
				len(result.Items), result.Total, result.Offset)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&graders, "grader", nil, "grading company (repeatable)")
	cmd.Flags().StringSliceVar(&grades, "grade", nil, "numeric grade (repeatable)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "specialty tag such as \"Black Label\" (repeatable)")
	cmd.Flags().StringSliceVar(&buying, "buying-option", nil, "FIXED_PRICE, AUCTION or BEST_OFFER (repeatable)")
	cmd.Flags().Float64Var(&priceMin, "price-min", 0, "minimum price")
	cmd.Flags().Float64Var(&priceMax, "price-max", 0, "maximum price")
	cmd.Flags().IntVar(&limit, "limit", 0, "results per page (server default when 0)")
	cmd.Flags().IntVar(&offset, "offset", 0, "result offset")

	return cmd
}
