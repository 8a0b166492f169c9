package cli

import (
	"fmt"

	"coin-browser-go/internal/browser"
	"coin-browser-go/internal/models"
	"coin-browser-go/internal/store"

	"github.com/spf13/cobra"
)

func newCountriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List countries",
		RunE: func(cmd *cobra.Command, args []string) error {
			countries, err := gateway.ListCountries(cmd.Context())
			if err != nil {
				return fmt.Errorf("list countries: %w", err)
			}
			printCountries(cmd.OutOrStdout(), countries)
			return nil
		},
	}
}

func newCollectionsCmd() *cobra.Command {
	var countryId int

	cmd := &cobra.Command{
		Use:   "collections",
		Short: "List collection series",
		RunE: func(cmd *cobra.Command, args []string) error {
			collections, err := gateway.ListCollections(cmd.Context())
			if err != nil {
				return fmt.Errorf("list collections: %w", err)
			}
			collections = browser.CollectionsForCountry(collections, &models.Country{Id: countryId})
			printCollections(cmd.OutOrStdout(), collections)
			return nil
		},
	}

	cmd.Flags().IntVar(&countryId, "country", models.AllId, "Only collections available for this country id")
	return cmd
}

func newStatsCmd() *cobra.Command {
	var (
		countryId    int
		collectionId int
		search       string
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show collection counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := store.NewCountParams(filterFromFlags(countryId, collectionId, search))
			counters, err := gateway.CountCoins(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("count coins: %w", err)
			}
			printCounters(cmd.OutOrStdout(), *counters)
			return nil
		},
	}

	addFilterFlags(cmd, &countryId, &collectionId, &search)
	return cmd
}
