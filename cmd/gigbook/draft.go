package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mbellows/gigbook/internal/cli"
	"github.com/mbellows/gigbook/internal/draft"
	"github.com/mbellows/gigbook/internal/model"
	"github.com/mbellows/gigbook/internal/ops"
)

var draftCmd = &cobra.Command{
	Use:   "draft <text>",
	Short: "Draft a gig from free text",
	Long: `Parse a free-text description into gig fields using a local
language model, and optionally save the result.

Parsing is disabled until you opt in: set parser.enabled: true in
config.yaml (an Ollama server must be running at parser.endpoint).
Fields you pass explicitly as flags always win over parsed values.

Examples:
  gigbook draft "paint Mrs. Lee's fence next Tuesday for $300"
  gigbook draft "DJ set at Harbor Bar, Fri 21:00, 4 hours" --save`,
	Args: cobra.ExactArgs(1),
	RunE: runDraft,
}

var (
	draftSave   bool
	draftClient string
	draftTitle  string
	draftDate   string
)

func init() {
	draftCmd.Flags().BoolVar(&draftSave, "save", false, "save the drafted gig")
	draftCmd.Flags().StringVarP(&draftClient, "client", "c", "", "client name (overrides parsed value)")
	draftCmd.Flags().StringVar(&draftTitle, "title", "", "job title (overrides parsed value)")
	draftCmd.Flags().StringVar(&draftDate, "date", "", "gig date (overrides parsed value)")

	rootCmd.AddCommand(draftCmd)
}

func runDraft(cmd *cobra.Command, args []string) error {
	s, cfg, err := openEnv()
	if err != nil {
		return err
	}

	if !cfg.Parser.Enabled {
		return fmt.Errorf("free-text parsing is disabled; set parser.enabled: true in %s/config.yaml", s.Dir())
	}

	parser := draft.NewOllamaParser(draft.Config{
		Endpoint:  cfg.Parser.Endpoint,
		Model:     cfg.Parser.Model,
		TimeoutMs: cfg.Parser.TimeoutMs,
	})

	partial, err := parser.ParseGig(context.Background(), args[0])
	if err != nil {
		return err
	}

	// User-supplied fields form the base; parsed values only fill gaps.
	base := model.Gig{
		JobTitle:   draftTitle,
		ClientName: draftClient,
		Date:       draftDate,
	}
	gig := draft.Merge(base, *partial)

	printDraft(&gig)

	if !draftSave {
		fmt.Println("\nRe-run with --save to keep it, or use the flags to fill gaps.")
		return nil
	}

	if gig.Date == "" {
		gig.Date = time.Now().Format("2006-01-02")
	}
	if gig.TaxRate == 0 {
		gig.TaxRate = model.Money(cfg.TaxRate)
	}

	gigs, err := ops.Upsert(s.Gigs(), gig, cfg.Profile())
	if err != nil {
		return err
	}
	s.Set(gigs)

	saved := gigs[len(gigs)-1]
	fmt.Printf("\n%s saved.\n", shortID(saved.ID))
	return nil
}

func printDraft(g *model.Gig) {
	fmt.Println("Drafted gig:")
	row := func(label, value string) {
		if value != "" {
			fmt.Printf("  %-10s %s\n", label+":", value)
		}
	}
	row("Title", g.JobTitle)
	row("Client", g.ClientName)
	row("Date", g.Date)
	row("Time", g.Time)
	row("Site", g.JobSite)
	row("Phone", g.ClientPhone)
	row("Email", g.ClientEmail)
	if g.JobCost > 0 {
		row("Cost", fmt.Sprintf("%.2f", g.JobCost.Float()))
	}
	if g.HoursWorked > 0 {
		row("Hours", fmt.Sprintf("%g", g.HoursWorked.Float()))
	}
	for _, e := range g.Expenses {
		row("Expense", fmt.Sprintf("%s (%.2f)", e.Description, e.Amount.Float()))
	}
	if g.JobTitle == "" || g.ClientName == "" {
		fmt.Println(cli.Yellow("  missing required fields: use --title/--client to fill them"))
	}
}
