// Package receipt derives billing documents from gig records.
package receipt

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/mbellows/gigbook/internal/model"
)

// Totals holds the receipt arithmetic for a gig.
type Totals struct {
	Labor    float64
	Expenses float64
	Subtotal float64
	Tax      float64
	Total    float64
}

// Compute returns the receipt totals:
// subtotal = labor + expenses, tax = subtotal * rate/100,
// total = subtotal + tax.
func Compute(g *model.Gig) Totals {
	t := Totals{Labor: g.JobCost.Float()}
	for _, e := range g.Expenses {
		t.Expenses += e.Amount.Float()
	}
	t.Subtotal = t.Labor + t.Expenses
	t.Tax = t.Subtotal * g.TaxRate.Float() / 100
	t.Total = t.Subtotal + t.Tax
	return t
}

var slugRe = regexp.MustCompile(`\s+`)

// FileName returns the suggested file name for a gig's receipt,
// receipt-<client>-<date>.txt with whitespace in the client name
// collapsed to dashes.
func FileName(g *model.Gig) string {
	client := slugRe.ReplaceAllString(strings.TrimSpace(g.ClientName), "-")
	return fmt.Sprintf("receipt-%s-%s.txt", client, g.DateDay())
}

// Render writes a plain-text receipt for g to w. This is a one-way
// export for sharing with the client.
func Render(w io.Writer, g *model.Gig, currency string) {
	t := Compute(g)
	ref := g.ID
	if len(ref) > 8 {
		ref = ref[:8]
	}

	fmt.Fprintln(w, "RECEIPT")
	fmt.Fprintf(w, "Date: %s\n", g.DateDay())
	fmt.Fprintf(w, "Ref: %s\n", strings.ToUpper(ref))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Bill to:")
	fmt.Fprintf(w, "  %s\n", g.ClientName)
	if g.ClientAddress != "" {
		fmt.Fprintf(w, "  %s\n", g.ClientAddress)
	}
	if g.ClientEmail != "" {
		fmt.Fprintf(w, "  %s\n", g.ClientEmail)
	}
	fmt.Fprintln(w)

	line(w, g.JobTitle+" (labor)", currency, t.Labor)
	for _, e := range g.Expenses {
		desc := e.Description
		if desc == "" {
			desc = "Expense"
		}
		line(w, desc, currency, e.Amount.Float())
	}
	fmt.Fprintln(w, strings.Repeat("-", lineWidth))
	line(w, "Subtotal", currency, t.Subtotal)
	line(w, fmt.Sprintf("Tax (%g%%)", g.TaxRate.Float()), currency, t.Tax)
	line(w, "TOTAL", currency, t.Total)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Thank you for your business!")
}

const lineWidth = 48

func line(w io.Writer, label, currency string, amount float64) {
	value := fmt.Sprintf("%s%.2f", currency, amount)
	pad := lineWidth - len(label) - len(value)
	if pad < 1 {
		pad = 1
	}
	fmt.Fprintf(w, "%s%s%s\n", label, strings.Repeat(" ", pad), value)
}
