package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mbellows/gigbook/internal/receipt"
)

var receiptCmd = &cobra.Command{
	Use:   "receipt <id>",
	Short: "Render a receipt for a gig",
	Long: `Render a plain-text receipt for a gig: labor charge, itemized
expenses, subtotal, tax, and total.

Prints to stdout by default; --save writes receipt-<client>-<date>.txt
in the current directory.

Examples:
  gigbook receipt 3f2a
  gigbook receipt 3f2a --save
  gigbook receipt 3f2a -o invoice.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runReceipt,
}

var (
	receiptSave   bool
	receiptOutput string
)

func init() {
	receiptCmd.Flags().BoolVar(&receiptSave, "save", false, "write to the default receipt file name")
	receiptCmd.Flags().StringVarP(&receiptOutput, "output", "o", "", "write to a specific file")

	rootCmd.AddCommand(receiptCmd)
}

func runReceipt(cmd *cobra.Command, args []string) error {
	s, cfg, err := openEnv()
	if err != nil {
		return err
	}

	g, err := resolveGig(s, args[0])
	if err != nil {
		return err
	}

	path := receiptOutput
	if path == "" && receiptSave {
		path = receipt.FileName(g)
	}
	if path == "" {
		receipt.Render(os.Stdout, g, cfg.Currency)
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	receipt.Render(f, g, cfg.Currency)
	fmt.Printf("Receipt written to %s\n", path)
	return nil
}
