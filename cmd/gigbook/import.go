package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mbellows/gigbook/internal/ops"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import gigs from a JSON backup",
	Long: `Import gigs from a JSON file in the export format (a top-level
array of gig objects).

By default the import replaces the whole collection. With --merge,
only records whose ID is not already present are added; existing
records are never overwritten.

Either way the file is validated up front, and one malformed record
rejects the whole import, leaving the collection untouched.

Examples:
  gigbook import my-gigs-backup-2025-06-01.json
  gigbook import phone-export.json --merge`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var importMerge bool

func init() {
	importCmd.Flags().BoolVar(&importMerge, "merge", false, "add new records instead of replacing the collection")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	incoming, err := ops.DecodeImport(data)
	if err != nil {
		return err
	}

	s, cfg, err := openEnv()
	if err != nil {
		return err
	}

	if importMerge {
		gigs, added, err := ops.MergeImport(s.Gigs(), incoming, cfg.Profile())
		if err != nil {
			return err
		}
		s.Set(gigs)
		fmt.Printf("Merged %d new gig(s), skipped %d existing.\n", added, len(incoming)-added)
		return nil
	}

	gigs, err := ops.ReplaceAll(s.Gigs(), incoming, cfg.Profile())
	if err != nil {
		return err
	}
	s.Set(gigs)
	fmt.Printf("Imported %d gig(s), replacing the previous collection.\n", len(gigs))
	return nil
}
