// Package draft turns free text into partial gig records using a
// local language model. The parser only ever produces a draft: its
// output is merged into a record under the user's control and never
// overwrites fields the user already filled in.
package draft

import (
	"context"

	"github.com/mbellows/gigbook/internal/model"
)

// Config holds the parser backend settings.
type Config struct {
	Endpoint  string
	Model     string
	TimeoutMs int
}

// Parser extracts gig fields from free text.
type Parser interface {
	// ParseGig returns a partial gig: fields the text does not mention
	// are left at their zero value. The returned gig never has an ID.
	ParseGig(ctx context.Context, text string) (*model.Gig, error)

	// Available reports whether the parser backend is reachable.
	Available(ctx context.Context) bool
}

// Merge fills empty fields of base with values from partial and
// returns the result. Fields already set on base win unconditionally,
// so empty parser output can never clobber user input.
func Merge(base, partial model.Gig) model.Gig {
	out := base.Clone()

	fill := func(dst *string, src string) {
		if *dst == "" && src != "" {
			*dst = src
		}
	}
	fill(&out.JobTitle, partial.JobTitle)
	fill(&out.Description, partial.Description)
	fill(&out.ClientName, partial.ClientName)
	fill(&out.ClientPhone, partial.ClientPhone)
	fill(&out.ClientEmail, partial.ClientEmail)
	fill(&out.ClientAddress, partial.ClientAddress)
	fill(&out.Date, partial.Date)
	fill(&out.Time, partial.Time)
	fill(&out.JobSite, partial.JobSite)

	if out.JobCost == 0 && partial.JobCost > 0 {
		out.JobCost = partial.JobCost
	}
	if out.TaxRate == 0 && partial.TaxRate > 0 {
		out.TaxRate = partial.TaxRate
	}
	if out.HoursWorked == 0 && partial.HoursWorked > 0 {
		out.HoursWorked = partial.HoursWorked
	}
	if out.JobStatus == "" && partial.JobStatus != "" {
		out.JobStatus = partial.JobStatus
	}
	if len(out.Expenses) == 0 && len(partial.Expenses) > 0 {
		out.Expenses = make([]model.Expense, len(partial.Expenses))
		copy(out.Expenses, partial.Expenses)
	}

	return out
}
