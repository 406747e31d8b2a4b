package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sindicoapp/sindico/internal/compliance"
)

func monthsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "months",
		Short: "Print the months the engine evaluates, most recent first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMonths(cmd.Context())
		},
	}
}

func runMonths(ctx context.Context) error {
	_, store, err := openLedger(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	transactions, err := store.ListTransactions(ctx)
	if err != nil {
		return fmt.Errorf("failed to load ledger: %w", err)
	}

	for _, month := range compliance.MonthUniverse(transactions, time.Now()) {
		fmt.Println(month)
	}
	return nil
}
