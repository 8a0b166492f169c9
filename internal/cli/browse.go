package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"coin-browser-go/internal/browser"
	"coin-browser-go/internal/common"
	"coin-browser-go/internal/models"

	"github.com/spf13/cobra"
)

const browseHelp = `Commands:
  n                     next page
  country <id|all>      filter by country (clears the collection)
  collection <id|all>   filter by collection
  search [text]         free-text search, no text clears it
  show <id>             coin detail
  close                 close the coin detail
  refresh               reload reference lists and the listing
  countries             list countries
  collections           list collections of the selected country
  stats                 counters for the current filter
  q                     quit`

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the collection interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			b := browser.New(gateway, browser.WithPageSize(cfg.Browser.PageSize))
			defer b.Close()

			s := &session{b: b, out: cmd.OutOrStdout()}
			b.Start(cmd.Context())
			b.Wait()
			s.printListing()

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(s.out, "> ")
				if !scanner.Scan() {
					fmt.Fprintln(s.out)
					return scanner.Err()
				}
				if quit := s.handle(scanner.Text()); quit {
					return nil
				}
			}
		},
	}
}

// session renders browser state for one interactive run.
type session struct {
	b   *browser.Browser
	out io.Writer
	// coins already printed for the current listing
	printed int
}

func (s *session) handle(line string) bool {
	name, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "":
	case "q", "quit", "exit":
		return true
	case "help", "?":
		fmt.Fprintln(s.out, browseHelp)
	case "n", "next":
		if !s.b.OnLastItemReached() {
			if s.b.Snapshot().IsLastPage {
				fmt.Fprintln(s.out, "No more coins.")
			}
			return false
		}
		s.b.Wait()
		s.printMore()
	case "country":
		country, err := s.resolveCountry(arg)
		if err != nil {
			fmt.Fprintln(s.out, err)
			return false
		}
		s.b.SelectCountry(country)
		s.reload()
	case "collection":
		collection, err := s.resolveCollection(arg)
		if err != nil {
			fmt.Fprintln(s.out, err)
			return false
		}
		s.b.SelectCollection(collection)
		s.reload()
	case "search":
		s.b.SetSearchText(arg)
		s.reload()
	case "show":
		id, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(s.out, "Invalid coin id %q\n", arg)
			return false
		}
		s.b.OpenDetail(s.findCoin(id))
		s.b.Wait()
		s.printDetail()
	case "close":
		s.b.CloseDetail()
	case "refresh":
		s.b.Refresh()
		s.reload()
	case "countries":
		printCountries(s.out, s.b.Snapshot().Countries)
	case "collections":
		printCollections(s.out, s.b.FilteredCollections())
	case "stats":
		printCounters(s.out, s.b.Snapshot().Counters)
	default:
		fmt.Fprintf(s.out, "Unknown command %q, type help\n", name)
	}
	return false
}

func (s *session) reload() {
	s.b.Wait()
	s.printed = 0
	s.printListing()
}

func (s *session) printListing() {
	st := s.b.Snapshot()
	common.PrintHeader(s.out, describeFilter(st), common.DefaultWidth)
	printCounters(s.out, st.Counters)
	common.PrintSeparator(s.out, "-", common.DefaultWidth)
	if len(st.Coins) == 0 {
		fmt.Fprintln(s.out, "No coins.")
		return
	}
	s.printMore()
}

func (s *session) printMore() {
	st := s.b.Snapshot()
	if s.printed < len(st.Coins) {
		printCoins(s.out, st.Coins[s.printed:], s.printed)
		s.printed = len(st.Coins)
	}
	if st.IsLastPage {
		fmt.Fprintln(s.out, "(end of list)")
	}
}

func (s *session) printDetail() {
	st := s.b.Snapshot()
	if st.CoinDetail == nil {
		fmt.Fprintln(s.out, "Coin detail unavailable.")
		return
	}
	printDetail(s.out, st.CoinDetail)
	if st.SelectedCoin != nil && len(st.SelectedCoin.Images) > 0 {
		fmt.Fprintf(s.out, "%d photo(s) available, use 'coins show %d --save-images DIR'\n",
			len(st.SelectedCoin.Images), st.SelectedCoin.Id)
	}
}

// findCoin returns the listed coin with the given id, or a bare reference.
func (s *session) findCoin(id int) models.Coin {
	for _, c := range s.b.Snapshot().Coins {
		if c.Id == id {
			return c
		}
	}
	return models.Coin{Id: id}
}

func (s *session) resolveCountry(arg string) (*models.Country, error) {
	if arg == "" || arg == "all" {
		return models.AllCountries(), nil
	}
	id, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid country id %q", arg)
	}
	for _, c := range s.b.Snapshot().Countries {
		if c.Id == id {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("unknown country %d", id)
}

func (s *session) resolveCollection(arg string) (*models.Collection, error) {
	if arg == "" || arg == "all" {
		return models.AllCollections(), nil
	}
	id, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid collection id %q", arg)
	}
	for _, c := range s.b.FilteredCollections() {
		if c.Id == id {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("unknown collection %d for the selected country", id)
}

func describeFilter(st browser.State) string {
	parts := []string{}
	if f := st.Filter; !f.Country.IsAll() {
		parts = append(parts, "country: "+f.Country.Name)
	}
	if f := st.Filter; !f.Collection.IsAll() {
		parts = append(parts, "collection: "+f.Collection.Name)
	}
	if st.Filter.SearchText != "" {
		parts = append(parts, fmt.Sprintf("search: %q", st.Filter.SearchText))
	}
	if len(parts) == 0 {
		return "All coins"
	}
	return "Coins (" + strings.Join(parts, ", ") + ")"
}
