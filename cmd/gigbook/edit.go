package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbellows/gigbook/internal/model"
	"github.com/mbellows/gigbook/internal/ops"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing gig",
	Long: `Edit fields of an existing gig. Only flags you pass are changed.

The gig can be referenced by its full ID or any unambiguous prefix.

Examples:
  gigbook edit 3f2a --status=Complete
  gigbook edit 3f2a --cost=520 --hours=6.5
  gigbook edit 3f2a --expense="Parking:12" --expense="Paint:85.20"`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var (
	editTitle         string
	editClient        string
	editDate          string
	editTime          string
	editDescription   string
	editPhone         string
	editEmail         string
	editAddress       string
	editSite          string
	editCost          float64
	editHours         float64
	editTax           float64
	editStatus        string
	editExpenses      []string
	editClearExpenses bool
)

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "job title")
	editCmd.Flags().StringVarP(&editClient, "client", "c", "", "client name")
	editCmd.Flags().StringVar(&editDate, "date", "", "gig date (YYYY-MM-DD)")
	editCmd.Flags().StringVar(&editTime, "time", "", "start time (HH:MM)")
	editCmd.Flags().StringVar(&editDescription, "description", "", "job description")
	editCmd.Flags().StringVar(&editPhone, "phone", "", "client phone")
	editCmd.Flags().StringVar(&editEmail, "email", "", "client email")
	editCmd.Flags().StringVar(&editAddress, "address", "", "client mailing address")
	editCmd.Flags().StringVar(&editSite, "site", "", "job site (work location)")
	editCmd.Flags().Float64Var(&editCost, "cost", 0, "labor charge")
	editCmd.Flags().Float64Var(&editHours, "hours", 0, "hours worked")
	editCmd.Flags().Float64Var(&editTax, "tax", 0, "tax rate percentage")
	editCmd.Flags().StringVar(&editStatus, "status", "", "job status")
	editCmd.Flags().StringArrayVar(&editExpenses, "expense", nil, "append an expense as description:amount (can be repeated)")
	editCmd.Flags().BoolVar(&editClearExpenses, "clear-expenses", false, "remove all expenses")

	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	s, cfg, err := openEnv()
	if err != nil {
		return err
	}

	gig, err := resolveGig(s, args[0])
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("title") {
		gig.JobTitle = editTitle
	}
	if flags.Changed("client") {
		gig.ClientName = editClient
	}
	if flags.Changed("date") {
		gig.Date = editDate
	}
	if flags.Changed("time") {
		gig.Time = editTime
	}
	if flags.Changed("description") {
		gig.Description = editDescription
	}
	if flags.Changed("phone") {
		gig.ClientPhone = editPhone
	}
	if flags.Changed("email") {
		gig.ClientEmail = editEmail
	}
	if flags.Changed("address") {
		gig.ClientAddress = editAddress
	}
	if flags.Changed("site") {
		gig.JobSite = editSite
	}
	if flags.Changed("cost") {
		gig.JobCost = model.Money(editCost)
	}
	if flags.Changed("hours") {
		gig.HoursWorked = model.Money(editHours)
	}
	if flags.Changed("tax") {
		gig.TaxRate = model.Money(editTax)
	}
	if flags.Changed("status") {
		gig.JobStatus = model.Status(editStatus)
	}
	if editClearExpenses {
		gig.Expenses = nil
	}
	if len(editExpenses) > 0 {
		expenses, err := parseExpenses(editExpenses)
		if err != nil {
			return err
		}
		gig.Expenses = append(gig.Expenses, expenses...)
	}

	gigs, err := ops.Upsert(s.Gigs(), *gig, cfg.Profile())
	if err != nil {
		return err
	}
	s.Set(gigs)

	fmt.Printf("%s updated.\n", shortID(gig.ID))
	return nil
}
