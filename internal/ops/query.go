package ops

import (
	"sort"
	"strings"

	"github.com/mbellows/gigbook/internal/model"
)

// Query operations are pure projections over a snapshot of the
// collection: they never mutate their input and never fail. An
// unmatched query yields an empty result, which is the presentation
// layer's problem to explain.

// SortByDateDescending returns the gigs ordered most-recent-first by
// calendar date. Time-of-day does not participate in the sort key;
// the sort is stable, so gigs sharing a date keep their relative
// input order.
func SortByDateDescending(gigs []model.Gig) []model.Gig {
	out := model.CloneGigs(gigs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DateDay() > out[j].DateDay()
	})
	return out
}

// Search returns the gigs whose job title, client name, description,
// or job site contains term, case-insensitively. An empty term
// returns the full collection unfiltered.
func Search(gigs []model.Gig, term string) []model.Gig {
	if term == "" {
		return model.CloneGigs(gigs)
	}

	needle := strings.ToLower(term)
	out := make([]model.Gig, 0, len(gigs))
	for i := range gigs {
		g := &gigs[i]
		if containsFold(g.JobTitle, needle) ||
			containsFold(g.ClientName, needle) ||
			containsFold(g.Description, needle) ||
			containsFold(g.JobSite, needle) {
			out = append(out, g.Clone())
		}
	}
	return out
}

// FilterByMonthYear returns the gigs whose date matches every supplied
// criterion: month as "01"-"12", year as four digits. An empty
// criterion matches everything. Components are compared by fixed
// character offsets into the stored ISO date string.
func FilterByMonthYear(gigs []model.Gig, month, year string) []model.Gig {
	if month == "" && year == "" {
		return model.CloneGigs(gigs)
	}

	out := make([]model.Gig, 0, len(gigs))
	for i := range gigs {
		g := &gigs[i]
		if month != "" && g.DateMonth() != month {
			continue
		}
		if year != "" && g.DateYear() != year {
			continue
		}
		out = append(out, g.Clone())
	}
	return out
}

// FindByID returns the gig with the given ID, or nil. As a CLI
// convenience it also accepts an unambiguous ID prefix.
func FindByID(gigs []model.Gig, id string) *model.Gig {
	for i := range gigs {
		if gigs[i].ID == id {
			g := gigs[i].Clone()
			return &g
		}
	}

	var match *model.Gig
	for i := range gigs {
		if strings.HasPrefix(gigs[i].ID, id) {
			if match != nil {
				return nil // ambiguous prefix
			}
			g := gigs[i].Clone()
			match = &g
		}
	}
	return match
}

// containsFold reports whether haystack contains needle ignoring case.
// The needle must already be lowercased.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
