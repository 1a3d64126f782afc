// Package model defines the core data structures for gigbook.
package model

// Gig represents one tracked unit of client work.
//
// The JSON field names match the historical export format, so backups
// made by earlier versions of the app import without translation.
type Gig struct {
	ID            string    `json:"id"`
	JobTitle      string    `json:"jobTitle"`
	Description   string    `json:"description,omitempty"`
	ClientName    string    `json:"clientName"`
	ClientPhone   string    `json:"clientPhone,omitempty"`
	ClientEmail   string    `json:"clientEmail,omitempty"`
	ClientAddress string    `json:"clientAddress,omitempty"`
	Date          string    `json:"date"`
	Time          string    `json:"time,omitempty"`
	JobSite       string    `json:"jobSite,omitempty"`
	JobCost       Money     `json:"jobCost,omitempty"`
	TaxRate       Money     `json:"taxRate,omitempty"`
	HoursWorked   Money     `json:"hoursWorked,omitempty"`
	JobStatus     Status    `json:"jobStatus,omitempty"`
	Expenses      []Expense `json:"expenses,omitempty"`
}

// Expense is an itemized cost attached to a gig, separate from the
// labor charge. IDs are unique within one gig's expense list only.
type Expense struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      Money  `json:"amount"`
}

// DateYear returns the four-digit year component of the stored date.
// Components are taken by fixed offsets into the ISO date string, not
// by timezone-aware parsing; dates that are too short yield "".
func (g *Gig) DateYear() string {
	if len(g.Date) < 4 {
		return ""
	}
	return g.Date[:4]
}

// DateMonth returns the two-digit month component of the stored date.
func (g *Gig) DateMonth() string {
	if len(g.Date) < 7 {
		return ""
	}
	return g.Date[5:7]
}

// DateDay returns the calendar-date portion of the stored date,
// dropping any time-of-day suffix.
func (g *Gig) DateDay() string {
	if len(g.Date) > 10 {
		return g.Date[:10]
	}
	return g.Date
}

// Clone returns a deep copy of the gig. The expense list is copied so
// the clone shares no mutable structure with the original.
func (g Gig) Clone() Gig {
	c := g
	if g.Expenses != nil {
		c.Expenses = make([]Expense, len(g.Expenses))
		copy(c.Expenses, g.Expenses)
	}
	return c
}

// CloneGigs returns a deep copy of a gig collection. Callers holding
// the input slice never observe mutations made to the copy.
func CloneGigs(gigs []Gig) []Gig {
	if gigs == nil {
		return nil
	}
	out := make([]Gig, len(gigs))
	for i := range gigs {
		out[i] = gigs[i].Clone()
	}
	return out
}
