package ops

import (
	"fmt"
	"strings"
	"time"

	"github.com/mbellows/gigbook/internal/cli"
	"github.com/mbellows/gigbook/internal/model"
)

// ValidateGig checks the write-boundary invariants for a single gig:
// required fields populated, date well-formed, monetary fields
// non-negative, status in the active profile's set, expense IDs unique
// within the gig. Deeper layers assume these hold.
func ValidateGig(g *model.Gig, profile model.StatusProfile) error {
	if strings.TrimSpace(g.JobTitle) == "" {
		return &cli.ValidationError{Field: "jobTitle", Message: "must not be empty"}
	}
	if strings.TrimSpace(g.ClientName) == "" {
		return &cli.ValidationError{Field: "clientName", Message: "must not be empty"}
	}
	if err := validateDate(g.Date); err != nil {
		return err
	}

	if g.Time != "" {
		if _, err := time.Parse("15:04", g.Time); err != nil {
			return &cli.ValidationError{Field: "time", Message: fmt.Sprintf("%q is not a valid HH:MM time", g.Time)}
		}
	}
	if g.JobCost < 0 {
		return &cli.ValidationError{Field: "jobCost", Message: "must not be negative"}
	}
	if g.HoursWorked < 0 {
		return &cli.ValidationError{Field: "hoursWorked", Message: "must not be negative"}
	}
	if g.TaxRate < 0 || g.TaxRate > 100 {
		return &cli.ValidationError{Field: "taxRate", Message: "must be a percentage between 0 and 100"}
	}
	if g.JobStatus != "" && !profile.Contains(g.JobStatus) {
		return &cli.ValidationError{
			Field:   "jobStatus",
			Message: fmt.Sprintf("%q is not one of %s", g.JobStatus, statusList(profile)),
		}
	}

	seen := make(map[string]bool, len(g.Expenses))
	for _, e := range g.Expenses {
		if e.Amount < 0 {
			return &cli.ValidationError{Field: "expenses", Message: fmt.Sprintf("amount for %q must not be negative", e.Description)}
		}
		if e.ID == "" {
			continue
		}
		if seen[e.ID] {
			return &cli.ValidationError{Field: "expenses", Message: fmt.Sprintf("duplicate expense id %q", e.ID)}
		}
		seen[e.ID] = true
	}

	return nil
}

// validateDate accepts a bare ISO date or a full ISO datetime.
func validateDate(date string) error {
	if strings.TrimSpace(date) == "" {
		return &cli.ValidationError{Field: "date", Message: "must not be empty"}
	}
	if _, err := time.Parse("2006-01-02", date); err == nil {
		return nil
	}
	if _, err := time.Parse(time.RFC3339, date); err == nil {
		return nil
	}
	return &cli.ValidationError{Field: "date", Message: fmt.Sprintf("%q is not an ISO date (expected YYYY-MM-DD)", date)}
}

// ValidateImport checks every record in an import payload. All errors
// are collected so the user can fix the whole file in one pass.
func ValidateImport(incoming []model.Gig, profile model.StatusProfile) []error {
	var errs []error
	seen := make(map[string]int, len(incoming))

	for i := range incoming {
		g := &incoming[i]
		if err := ValidateGig(g, profile); err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w", i, err))
		}
		if g.ID == "" {
			continue
		}
		if prev, dup := seen[g.ID]; dup {
			errs = append(errs, fmt.Errorf("record %d: id %q already used by record %d", i, g.ID, prev))
			continue
		}
		seen[g.ID] = i
	}

	return errs
}

func statusList(profile model.StatusProfile) string {
	var names []string
	for _, s := range profile.Statuses() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
