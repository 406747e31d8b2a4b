package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sindicoapp/sindico/internal/importer"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import ledger transactions from a CSV export",
		Long: `Imports transactions from a CSV file with columns
date,type,description,amount,category (and optionally id). Rows already in
the ledger are skipped. Malformed dates or amounts abort the import.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), args[0])
		},
	}
}

func runImport(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	transactions, err := importer.ReadCSV(f)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(transactions) == 0 {
		slog.Info("No transactions found in file", "path", path)
		return nil
	}

	_, store, err := openLedger(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.SaveTransactions(ctx, transactions); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}

	slog.Info("Import complete", "path", path, "transactions", len(transactions))
	return nil
}
