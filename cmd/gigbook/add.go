package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mbellows/gigbook/internal/model"
	"github.com/mbellows/gigbook/internal/ops"
)

var addCmd = &cobra.Command{
	Use:   "add <job title>",
	Short: "Add a new gig",
	Long: `Add a new gig to the collection.

The job title, client, and date are required; the date defaults to
today. Expenses can be attached with repeated --expense flags.

Examples:
  gigbook add "Paint fence" --client="Acme Corp"
  gigbook add "Wedding set" -c "J. Lee" --date=2025-07-12 --time=18:30
  gigbook add "Kitchen rewire" -c "B. Okafor" --cost=450 --tax=8.5 \
      --expense="Cable:62.50" --expense="Breakers:38"`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

var (
	addClient      string
	addDate        string
	addTime        string
	addDescription string
	addPhone       string
	addEmail       string
	addAddress     string
	addSite        string
	addCost        float64
	addHours       float64
	addTax         float64
	addStatus      string
	addExpenses    []string
)

func init() {
	addCmd.Flags().StringVarP(&addClient, "client", "c", "", "client name (required)")
	addCmd.Flags().StringVar(&addDate, "date", "", "gig date (YYYY-MM-DD, default today)")
	addCmd.Flags().StringVar(&addTime, "time", "", "start time (HH:MM)")
	addCmd.Flags().StringVar(&addDescription, "description", "", "job description")
	addCmd.Flags().StringVar(&addPhone, "phone", "", "client phone")
	addCmd.Flags().StringVar(&addEmail, "email", "", "client email")
	addCmd.Flags().StringVar(&addAddress, "address", "", "client mailing address")
	addCmd.Flags().StringVar(&addSite, "site", "", "job site (work location)")
	addCmd.Flags().Float64Var(&addCost, "cost", 0, "labor charge")
	addCmd.Flags().Float64Var(&addHours, "hours", 0, "hours worked")
	addCmd.Flags().Float64Var(&addTax, "tax", 0, "tax rate percentage (default from config)")
	addCmd.Flags().StringVar(&addStatus, "status", "", "job status")
	addCmd.Flags().StringArrayVar(&addExpenses, "expense", nil, "expense as description:amount (can be repeated)")
	addCmd.MarkFlagRequired("client")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, cfg, err := openEnv()
	if err != nil {
		return err
	}

	date := addDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	taxRate := model.Money(cfg.TaxRate)
	if cmd.Flags().Changed("tax") {
		taxRate = model.Money(addTax)
	}

	expenses, err := parseExpenses(addExpenses)
	if err != nil {
		return err
	}

	gig := model.Gig{
		JobTitle:      args[0],
		Description:   addDescription,
		ClientName:    addClient,
		ClientPhone:   addPhone,
		ClientEmail:   addEmail,
		ClientAddress: addAddress,
		Date:          date,
		Time:          addTime,
		JobSite:       addSite,
		JobCost:       model.Money(addCost),
		TaxRate:       taxRate,
		HoursWorked:   model.Money(addHours),
		JobStatus:     model.Status(addStatus),
		Expenses:      expenses,
	}

	gigs, err := ops.Upsert(s.Gigs(), gig, cfg.Profile())
	if err != nil {
		return err
	}
	s.Set(gigs)

	saved := gigs[len(gigs)-1]
	fmt.Printf("%s  %s for %s on %s\n", shortID(saved.ID), saved.JobTitle, saved.ClientName, saved.Date)
	return nil
}
