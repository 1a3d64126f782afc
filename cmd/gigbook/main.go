// Package main is the entry point for the gigbook CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mbellows/gigbook/internal/cli"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var (
	rootDir     string
	rootNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "gigbook",
	Short: "gigbook - track your gig jobs from the command line",
	Long: `gigbook is a tracker for gig work: freelance jobs, side hustles,
and one-off client engagements.

Gigs live in a single JSON file under your data directory
(~/.gigbook by default, or $GIGBOOK_DIR). Every change is written
back immediately; export/import moves the whole collection around
as plain JSON.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if rootNoColor {
			cli.SetColorEnabled(false)
		}
	},
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "dir", "", "data directory (default ~/.gigbook or $GIGBOOK_DIR)")
	rootCmd.PersistentFlags().BoolVar(&rootNoColor, "no-color", false, "disable colored output")

	rootCmd.SetVersionTemplate("gigbook version {{.Version}}\n")
}
