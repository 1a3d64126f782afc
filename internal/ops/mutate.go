// Package ops implements the collection operations for gigbook:
// identity-keyed mutations and pure query views over the gig list.
//
// Every mutation takes the current collection and returns a fresh one;
// the input slice is never modified, so a caller holding an older
// snapshot never observes later changes. Callers persist the result
// through the store's Set.
package ops

import (
	"fmt"

	"github.com/mbellows/gigbook/internal/cli"
	"github.com/mbellows/gigbook/internal/model"
)

// Upsert returns a new collection with gig saved. A gig with no ID is
// assigned a fresh one and appended; a gig whose ID matches an
// existing record replaces that record in place; an ID not present in
// the collection is appended as-is. Fields are replaced wholesale on
// update. Validation runs here, at the write boundary.
func Upsert(gigs []model.Gig, gig model.Gig, profile model.StatusProfile) ([]model.Gig, error) {
	if err := ValidateGig(&gig, profile); err != nil {
		return nil, err
	}

	out := model.CloneGigs(gigs)
	if gig.ID == "" {
		gig.ID = model.NewID()
		return append(out, gig.Clone()), nil
	}
	for i := range out {
		if out[i].ID == gig.ID {
			out[i] = gig.Clone()
			return out, nil
		}
	}
	return append(out, gig.Clone()), nil
}

// Remove returns a new collection with the record matching id
// excluded. An unknown id is a no-op, not an error.
func Remove(gigs []model.Gig, id string) []model.Gig {
	out := make([]model.Gig, 0, len(gigs))
	for i := range gigs {
		if gigs[i].ID == id {
			continue
		}
		out = append(out, gigs[i].Clone())
	}
	return out
}

// ReplaceAll swaps the whole collection for incoming, as used by
// import in replace mode. The import is atomic: every record must be
// well-formed or the existing collection is returned untouched with a
// ValidationError. Records missing an ID are assigned fresh ones.
func ReplaceAll(gigs, incoming []model.Gig, profile model.StatusProfile) ([]model.Gig, error) {
	if errs := ValidateImport(incoming, profile); len(errs) > 0 {
		return gigs, importError(errs)
	}

	out := model.CloneGigs(incoming)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = model.NewID()
		}
	}
	if out == nil {
		out = []model.Gig{}
	}
	return out, nil
}

// MergeImport appends every incoming record whose ID is not already in
// the collection; records with colliding IDs are skipped, never
// overwritten. Validation is as strict as ReplaceAll: one bad record
// rejects the whole file. Returns the new collection and how many
// records were added.
func MergeImport(gigs, incoming []model.Gig, profile model.StatusProfile) ([]model.Gig, int, error) {
	if errs := ValidateImport(incoming, profile); len(errs) > 0 {
		return gigs, 0, importError(errs)
	}

	existing := make(map[string]bool, len(gigs))
	for i := range gigs {
		existing[gigs[i].ID] = true
	}

	out := model.CloneGigs(gigs)
	added := 0
	for i := range incoming {
		g := incoming[i].Clone()
		if g.ID == "" {
			g.ID = model.NewID()
		} else if existing[g.ID] {
			continue
		}
		existing[g.ID] = true
		out = append(out, g)
		added++
	}
	return out, added, nil
}

// ClearAll returns an empty collection unconditionally.
func ClearAll(gigs []model.Gig) []model.Gig {
	return []model.Gig{}
}

// importError folds the collected validation problems into a single
// ValidationError describing the first and counting the rest.
func importError(errs []error) error {
	msg := errs[0].Error()
	if n := len(errs) - 1; n > 0 {
		msg = fmt.Sprintf("%s (and %d more problems)", msg, n)
	}
	return &cli.ValidationError{Message: msg}
}
