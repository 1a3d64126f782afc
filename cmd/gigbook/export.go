package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mbellows/gigbook/internal/ops"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all gigs as JSON",
	Long: `Export the full collection as pretty-printed JSON, suitable for
backup or for import on another machine.

Examples:
  gigbook export
  gigbook export -o gigs.json
  gigbook export -o -        # write to stdout`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var exportOutput string

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", `output file ("-" for stdout, default my-gigs-backup-<date>.json)`)

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	s, _, err := openEnv()
	if err != nil {
		return err
	}
	gigs := s.Gigs()

	if exportOutput == "-" {
		return ops.ExportJSON(os.Stdout, gigs)
	}

	path := exportOutput
	if path == "" {
		path = ops.ExportFileName(time.Now())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := ops.ExportJSON(f, gigs); err != nil {
		return err
	}
	fmt.Printf("Exported %d gig(s) to %s\n", len(gigs), path)
	return nil
}
