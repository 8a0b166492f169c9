package cli

import (
	"fmt"
	"io"
	"strconv"

	"coin-browser-go/internal/common"
	"coin-browser-go/internal/models"
)

func printCoins(w io.Writer, coins []models.Coin, offset int) {
	for i, c := range coins {
		images := ""
		if n := len(c.Images); n > 0 {
			images = fmt.Sprintf("  [%d img]", n)
		}
		fmt.Fprintf(w, "%4d. #%-6d %-32s %-12s %-16s %-20s x%d%s\n",
			offset+i+1, c.Id, common.OrDash(c.Title), common.OrDash(c.Value),
			common.OrDash(c.YearCentury), common.OrDash(c.Country), c.Count, images)
	}
}

func printCounters(w io.Writer, c models.Counters) {
	fmt.Fprintf(w, "Coins: %d (unique: %d)  Total price: %s  Market price: %s\n",
		c.TotalCount, c.UniqueCount, common.FormatMoney(c.TotalPrice), common.FormatMoney(c.MarketPrice))
}

func printCountries(w io.Writer, countries []models.Country) {
	if len(countries) == 0 {
		fmt.Fprintln(w, "No countries found.")
		return
	}
	fmt.Fprintf(w, "%-6s  %s\n", "ID", "COUNTRY")
	for _, c := range countries {
		fmt.Fprintf(w, "%-6d  %s\n", c.Id, c.Name)
	}
}

func printCollections(w io.Writer, collections []models.Collection) {
	if len(collections) == 0 {
		fmt.Fprintln(w, "No collections found.")
		return
	}
	fmt.Fprintf(w, "%-6s  %-32s  %s\n", "ID", "COLLECTION", "SIZE")
	for _, c := range collections {
		fmt.Fprintf(w, "%-6d  %-32s  %s\n", c.Id, c.Name, collectionSize(c))
	}
}

func collectionSize(c models.Collection) string {
	switch {
	case c.TotalInCollection != nil && c.FullCollection != nil:
		return fmt.Sprintf("%d of %d", *c.TotalInCollection, *c.FullCollection)
	case c.TotalInCollection != nil:
		return strconv.Itoa(*c.TotalInCollection)
	default:
		return "-"
	}
}

func printDetail(w io.Writer, d *models.CoinDetail) {
	common.PrintHeader(w, fmt.Sprintf("#%d %s", d.Id, common.OrDash(d.Name)), common.DefaultWidth)

	mintage := "-"
	if d.Mintage != nil {
		mintage = strconv.FormatInt(*d.Mintage, 10)
	}
	rows := []struct {
		label, value string
	}{
		{"Country", d.Country},
		{"Collection", d.Collection},
		{"Type", d.Type},
		{"Value", d.Value},
		{"Mint", d.Mint},
		{"Year", d.YearCentury},
		{"Material", d.Material},
		{"Mintage", mintage},
		{"Weight", common.FormatOptionalDecimal(d.Weight)},
		{"Diameter", common.FormatOptionalDecimal(d.Diameter)},
		{"Condition", d.Condition},
		{"Purchase price", common.FormatOptionalDecimal(d.PurchasePrice)},
		{"Expenses", common.FormatOptionalDecimal(d.AddExpenses)},
		{"Purchase date", common.FormatDate(d.PurchaseDate)},
		{"Count", strconv.Itoa(d.Count)},
	}
	for i, row := range rows {
		fmt.Fprintf(w, "%s%-15s %s\n", common.BoxPrefix(i == len(rows)-1), row.label, common.OrDash(row.value))
	}
	if d.Description != "" {
		common.PrintBoxSeparator(w, common.DefaultWidth-1)
		fmt.Fprintln(w, d.Description)
	}
}
