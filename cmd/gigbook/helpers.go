package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mbellows/gigbook/internal/cli"
	"github.com/mbellows/gigbook/internal/model"
	"github.com/mbellows/gigbook/internal/ops"
	"github.com/mbellows/gigbook/internal/storage"
)

// openEnv resolves the data directory, loads user config, and opens
// the store. Used by every command.
func openEnv() (*storage.Store, *storage.Config, error) {
	dir := rootDir
	if dir == "" {
		var err error
		dir, err = storage.DefaultDir()
		if err != nil {
			return nil, nil, err
		}
	}

	cfg, err := storage.LoadConfig(dir)
	if err != nil {
		return nil, nil, err
	}

	return storage.Open(dir), cfg, nil
}

// resolveGig finds a gig by ID or unambiguous ID prefix.
func resolveGig(s *storage.Store, id string) (*model.Gig, error) {
	g := ops.FindByID(s.Gigs(), id)
	if g == nil {
		return nil, &cli.NotFoundError{ID: id}
	}
	return g, nil
}

// parseExpenses parses repeated --expense flags of the form
// "description:amount".
func parseExpenses(specs []string) ([]model.Expense, error) {
	var expenses []model.Expense
	for _, spec := range specs {
		idx := strings.LastIndex(spec, ":")
		if idx <= 0 || idx == len(spec)-1 {
			return nil, fmt.Errorf("invalid expense %q (expected description:amount)", spec)
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(spec[idx+1:]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid expense amount in %q", spec)
		}
		expenses = append(expenses, model.Expense{
			ID:          model.NewID(),
			Description: strings.TrimSpace(spec[:idx]),
			Amount:      model.Money(amount),
		})
	}
	return expenses, nil
}

// shortID returns the first eight characters of an ID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// normalizeMonth pads single-digit months so "6" matches the stored
// "06" component.
func normalizeMonth(month string) string {
	if len(month) == 1 {
		return "0" + month
	}
	return month
}
