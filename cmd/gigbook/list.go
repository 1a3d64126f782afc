package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mbellows/gigbook/internal/cli"
	"github.com/mbellows/gigbook/internal/model"
	"github.com/mbellows/gigbook/internal/ops"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List gigs, most recent first",
	Long: `List gigs sorted by date, most recent first.

Search and the month/year filters are independent predicates and can
be combined freely.

Examples:
  gigbook list
  gigbook list --search=fence
  gigbook list --month=06 --year=2025
  gigbook list --status=Working --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listSearch string
	listMonth  string
	listYear   string
	listStatus string
	listJSON   bool
)

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "case-insensitive search over title, client, description, site")
	listCmd.Flags().StringVar(&listMonth, "month", "", "filter by month (01-12)")
	listCmd.Flags().StringVar(&listYear, "year", "", "filter by four-digit year")
	listCmd.Flags().StringVar(&listStatus, "status", "", "filter by job status")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, cfg, err := openEnv()
	if err != nil {
		return err
	}

	gigs := ops.Search(s.Gigs(), listSearch)
	gigs = ops.FilterByMonthYear(gigs, normalizeMonth(listMonth), listYear)
	if listStatus != "" {
		var kept []model.Gig
		for _, g := range gigs {
			if string(g.JobStatus) == listStatus {
				kept = append(kept, g)
			}
		}
		gigs = kept
	}
	gigs = ops.SortByDateDescending(gigs)

	if listJSON {
		return ops.ExportJSON(os.Stdout, gigs)
	}

	if len(gigs) == 0 {
		fmt.Println("No gigs found.")
		return nil
	}

	table := cli.NewTable()
	for _, g := range gigs {
		table.AddRow(
			g.DateDay(),
			cli.Gray(shortID(g.ID)),
			statusCell(g.JobStatus),
			cli.Truncate(g.JobTitle, 40),
			cli.Truncate(g.ClientName, 24),
			cli.FormatMoney(cfg.Currency, g.JobCost.Float()),
		)
	}
	table.Render(os.Stdout)
	fmt.Printf("\n%d gig(s)\n", len(gigs))
	return nil
}

func statusCell(s model.Status) string {
	switch s {
	case "":
		return cli.Gray("-")
	case model.StatusComplete, model.StatusCompleted:
		return cli.Green(string(s))
	case model.StatusWorking:
		return cli.Cyan(string(s))
	case model.StatusCancelled:
		return cli.Gray(string(s))
	default:
		return cli.Yellow(string(s))
	}
}
