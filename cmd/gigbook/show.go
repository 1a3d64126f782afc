package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbellows/gigbook/internal/cli"
	"github.com/mbellows/gigbook/internal/receipt"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a gig in full",
	Long: `Show every field of a single gig, including its expenses and
billing totals.

Examples:
  gigbook show 3f2a`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	s, cfg, err := openEnv()
	if err != nil {
		return err
	}

	g, err := resolveGig(s, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s  %s\n", cli.Gray(g.ID), g.JobTitle)
	if g.Description != "" {
		fmt.Printf("  %s\n", g.Description)
	}
	fmt.Println()

	field := func(label, value string) {
		if value != "" {
			fmt.Printf("%-10s %s\n", label+":", value)
		}
	}
	field("Client", g.ClientName)
	field("Phone", g.ClientPhone)
	field("Email", g.ClientEmail)
	field("Address", g.ClientAddress)
	field("Date", g.Date)
	field("Time", g.Time)
	field("Site", g.JobSite)
	field("Status", string(g.JobStatus))
	if g.HoursWorked > 0 {
		field("Hours", fmt.Sprintf("%g", g.HoursWorked.Float()))
	}

	t := receipt.Compute(g)
	fmt.Println()
	fmt.Printf("%-10s %s\n", "Labor:", cli.FormatMoney(cfg.Currency, t.Labor))
	for _, e := range g.Expenses {
		fmt.Printf("%-10s %s  %s\n", "Expense:", cli.FormatMoney(cfg.Currency, e.Amount.Float()), e.Description)
	}
	fmt.Printf("%-10s %s\n", "Subtotal:", cli.FormatMoney(cfg.Currency, t.Subtotal))
	fmt.Printf("%-10s %s (%g%%)\n", "Tax:", cli.FormatMoney(cfg.Currency, t.Tax), g.TaxRate.Float())
	fmt.Printf("%-10s %s\n", "Total:", cli.FormatMoney(cfg.Currency, t.Total))
	return nil
}
