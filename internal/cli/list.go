package cli

import (
	"fmt"

	"coin-browser-go/internal/browser"
	"coin-browser-go/internal/common"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var (
		countryId    int
		collectionId int
		search       string
		all          bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List coins page by page",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			b := browser.New(gateway,
				browser.WithPageSize(cfg.Browser.PageSize),
				browser.WithFilter(filterFromFlags(countryId, collectionId, search)))
			defer b.Close()

			b.Start(cmd.Context())
			b.Wait()
			if all {
				for b.LoadNextPage() {
					b.Wait()
				}
			}

			s := b.Snapshot()
			if len(s.Coins) == 0 {
				if s.IsLastPage {
					fmt.Fprintln(out, "No coins found.")
					return nil
				}
				return fmt.Errorf("list coins: the coin service did not return a page")
			}

			printCoins(out, s.Coins, 0)

			footer := fmt.Sprintf("%d coins shown", len(s.Coins))
			if !s.IsLastPage {
				footer += " (more available, use --all)"
			}
			common.PrintFooter(out, footer, common.WideWidth)
			printCounters(out, s.Counters)
			return nil
		},
	}

	addFilterFlags(cmd, &countryId, &collectionId, &search)
	cmd.Flags().BoolVar(&all, "all", false, "Fetch every page")
	return cmd
}
