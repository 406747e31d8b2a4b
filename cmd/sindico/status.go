package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sindicoapp/sindico/internal/cli"
	"github.com/sindicoapp/sindico/internal/common"
	"github.com/sindicoapp/sindico/internal/compliance"
	"github.com/sindicoapp/sindico/internal/registry"
)

func statusCmd() *cobra.Command {
	var showStats bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show obligation compliance for every unit and fixed bill",
		Long: `Evaluates the full ledger history and reports, per unit and per
obligation, whether each month is paid, pending, paid late, or overdue.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd.Context(), showStats)
		},
	}

	cmd.Flags().BoolVar(&showStats, "stats", false, "also print ledger totals")
	return cmd
}

func runStatus(ctx context.Context, showStats bool) error {
	cfg, store, err := openLedger(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			common.LogError(cerr, "failed to close ledger database", nil)
		}
	}()

	transactions, err := store.ListTransactions(ctx)
	if err != nil {
		return fmt.Errorf("failed to load ledger: %w", err)
	}

	engine := compliance.New(registry.Build(cfg), cfg.Units, registry.GroupLabels())
	report := engine.Evaluate(transactions, time.Now())

	fmt.Println(cli.RenderReport(report))

	if showStats {
		stats := compliance.ComputeStats(transactions, registry.FundRule())
		fmt.Printf("Balance: %s  Operational income: %s  Fund: %s  Expenses: %s\n",
			stats.Balance, stats.OperationalIncome, stats.FundTotal, stats.TotalExpense)
	}
	return nil
}
