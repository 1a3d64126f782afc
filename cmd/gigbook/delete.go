package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mbellows/gigbook/internal/cli"
	"github.com/mbellows/gigbook/internal/ops"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a gig, or the whole collection",
	Long: `Delete the gig with the given ID. Deleting an unknown ID is not an
error. With --all, the entire collection is emptied after a
confirmation prompt (skip it with --yes).

Examples:
  gigbook delete 3f2a
  gigbook delete --all
  gigbook delete --all --yes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDelete,
}

var (
	deleteAll bool
	deleteYes bool
)

func init() {
	deleteCmd.Flags().BoolVar(&deleteAll, "all", false, "delete every gig")
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")

	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	if deleteAll == (len(args) == 1) {
		return fmt.Errorf("provide either a gig ID or --all")
	}

	s, _, err := openEnv()
	if err != nil {
		return err
	}

	if deleteAll {
		n := s.Len()
		if n == 0 {
			fmt.Println("Nothing to delete.")
			return nil
		}
		if !deleteYes && !confirm(fmt.Sprintf("Delete all %d gig(s)? This cannot be undone.", n)) {
			fmt.Println("Aborted.")
			return nil
		}
		s.Set(ops.ClearAll(s.Gigs()))
		fmt.Printf("Deleted %d gig(s).\n", n)
		return nil
	}

	g, err := resolveGig(s, args[0])
	if err != nil {
		var nf *cli.NotFoundError
		if errors.As(err, &nf) {
			// Deleting something that is already gone is a no-op.
			fmt.Printf("No gig matching %q; nothing deleted.\n", args[0])
			return nil
		}
		return err
	}

	s.Set(ops.Remove(s.Gigs(), g.ID))
	fmt.Printf("%s deleted.\n", shortID(g.ID))
	return nil
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
