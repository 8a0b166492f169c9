package cli

import (
	"fmt"

	"coin-browser-go/internal/common"
	"coin-browser-go/internal/config"
	"coin-browser-go/internal/models"
	"coin-browser-go/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagAPIURL   string
	flagCatalog  string
	flagPageSize int
	flagDebug    bool

	cfg     *models.Config
	gateway store.CoinGateway
	syncLog func()
)

// NewRootCmd creates the root cobra command for the coins CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "coins",
		Short: "Browse a coin collection",
		Long:  "coins pages through a coin collection served by the coin API or a local SQLite catalog.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if flagAPIURL != "" {
				loaded.Gateway.BaseURL = flagAPIURL
			}
			if flagCatalog != "" {
				loaded.Database.Path = flagCatalog
			}
			if flagPageSize > 0 {
				loaded.Browser.PageSize = flagPageSize
			}
			if flagDebug {
				loaded.Debug = true
			}
			cfg = loaded

			_, syncLog = common.InitializeLogger(cfg.Debug)

			gw, err := common.InitializeGateway(cmd.Context(), cfg, flagCatalog != "")
			if err != nil {
				return fmt.Errorf("open coin gateway: %w", err)
			}
			gateway = gw
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			shutdown()
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "Coin API base URL (or COINS_API_URL env)")
	root.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Read a local SQLite catalog instead of the coin API")
	root.PersistentFlags().IntVar(&flagPageSize, "page-size", 0, "Coins per page (or COINS_PAGE_SIZE env)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	root.AddCommand(
		newBrowseCmd(),
		newListCmd(),
		newShowCmd(),
		newCountriesCmd(),
		newCollectionsCmd(),
		newStatsCmd(),
	)

	return root
}

// shutdown releases the gateway and flushes the logger. Safe to call twice.
func shutdown() {
	if gateway != nil {
		gateway.Close()
		gateway = nil
	}
	if syncLog != nil {
		syncLog()
		syncLog = nil
	}
}

// filterFromFlags builds a filter from id flags, where models.AllId means no constraint.
func filterFromFlags(countryId, collectionId int, search string) models.Filter {
	return models.Filter{
		Country:    &models.Country{Id: countryId},
		Collection: &models.Collection{Id: collectionId},
		SearchText: models.NormalizeSearchText(search),
	}
}

func addFilterFlags(cmd *cobra.Command, countryId, collectionId *int, search *string) {
	cmd.Flags().IntVar(countryId, "country", models.AllId, "Only coins of this country id")
	cmd.Flags().IntVar(collectionId, "collection", models.AllId, "Only coins of this collection id")
	cmd.Flags().StringVar(search, "search", "", "Free-text search")
}
