package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"netsynth/internal/repository/sqlite"
)

var batchesDBPath string

var batchesCmd = &cobra.Command{
	Use:   "batches",
	Short: "List batches saved to a SQLite database",
	RunE:  runBatches,
}

func init() {
	batchesCmd.Flags().StringVar(&batchesDBPath, "db", "", "SQLite database path [required]")
	_ = batchesCmd.MarkFlagRequired("db")

	rootCmd.AddCommand(batchesCmd)
}

func runBatches(_ *cobra.Command, _ []string) error {
	repo, err := sqlite.New(batchesDBPath)
	if err != nil {
		return err
	}
	defer repo.Close()

	batches, err := repo.ListBatches(context.Background())
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tKIND\tCOUNT\tSEED\tCREATED")
	for _, b := range batches {
		seed := "-"
		if b.Seed != nil {
			seed = fmt.Sprintf("%d", *b.Seed)
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n",
			b.ID, b.Kind, b.Count, seed, b.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return tw.Flush()
}
