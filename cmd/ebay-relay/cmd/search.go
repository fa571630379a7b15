package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/auctionsniper/ebay-relay/internal/ebay"
)

type searchFlags struct {
	limit    int
	pages    int
	graders  []string
	grades   []string
	tags     []string
	priceMin float64
	priceMax float64
	buying   []string
}

func searchCommand() *cobra.Command {
	var f searchFlags

	c := &cobra.Command{
		Use:   "search [query]",
		Short: "Search eBay directly with the configured credentials",
		Long: "Runs a graded card search against the Browse API without going\n" +
			"through the HTTP server and prints the raw results as JSON.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}

			criteria := f.criteria(cmd)
			if len(args) == 1 {
				criteria.FreeTextQuery = args[0]
			}
			if err := criteria.Validate(); err != nil {
				return err
			}

			eb := newEbayStack(&cfg.Ebay, log)
			result, err := ebay.NewPaginator(eb.browse,
				ebay.WithMaxPages(f.pages),
				ebay.WithPaginatorLogger(log),
			).Paginate(cmd.Context(), criteria)
			if err != nil {
				return err
			}

			log.Info("search complete",
				"items", len(result.Items),
				"total", result.Total,
				"pages", result.PagesUsed,
				"stopped_at", result.StoppedAt,
			)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(result.Items); err != nil {
				return fmt.Errorf("writing results: %w", err)
			}
			return nil
		},
	}

	bindSearchFlags(c, &f)

	return c
}

func bindSearchFlags(c *cobra.Command, f *searchFlags) {
	c.Flags().IntVar(&f.limit, "limit", 10, "results per page")
	c.Flags().IntVar(&f.pages, "pages", 1, "maximum number of pages to fetch")
	c.Flags().StringSliceVar(&f.graders, "grader", nil, "grading company (PSA, BGS, CGC, ...)")
	c.Flags().StringSliceVar(&f.grades, "grade", nil, "grade (10, 9.5, ...)")
	c.Flags().StringSliceVar(&f.tags, "tag", nil, "specialty tag (Black Label, Pristine, ...)")
	c.Flags().Float64Var(&f.priceMin, "price-min", 0, "minimum price")
	c.Flags().Float64Var(&f.priceMax, "price-max", 0, "maximum price")
	c.Flags().StringSliceVar(&f.buying, "buying-option", nil, "FIXED_PRICE, AUCTION or BEST_OFFER")
}

// criteria builds search criteria from the flags. Price bounds are only
// applied when set explicitly, so a zero minimum is expressible.
func (f *searchFlags) criteria(cmd *cobra.Command) ebay.SearchCriteria {
	c := ebay.SearchCriteria{
		Limit: f.limit,
		AspectFilters: ebay.AspectCriteria{
			GraderNames:   f.graders,
			Grades:        f.grades,
			SpecialtyTags: f.tags,
		},
		BuyingOptions: f.buying,
	}

	var price ebay.PriceRange
	if cmd.Flags().Changed("price-min") {
		v := f.priceMin
		price.Min = &v
	}
	if cmd.Flags().Changed("price-max") {
		v := f.priceMax
		price.Max = &v
	}
	if price.Min != nil || price.Max != nil {
		c.PriceRange = &price
	}

	return c
}
