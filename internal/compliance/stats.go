package compliance

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/sindicoapp/sindico/internal/model"
)

// LedgerStats are the headline dashboard figures for one ledger snapshot.
// OperationalIncome excludes investment-fund contributions, which accumulate
// in a separate reserve.
type LedgerStats struct {
	TotalIncome       decimal.Decimal
	OperationalIncome decimal.Decimal
	FundTotal         decimal.Decimal
	TotalExpense      decimal.Decimal
	Balance           decimal.Decimal
}

// ComputeStats totals the ledger. fundRule identifies fund contributions;
// when nil, everything counts as operational income.
func ComputeStats(txns []model.Transaction, fundRule model.MatchRule) LedgerStats {
	var stats LedgerStats
	for _, txn := range txns {
		if txn.Direction == model.DirectionIncome {
			stats.TotalIncome = stats.TotalIncome.Add(txn.Amount)
			if fundRule != nil && fundRule(txn) {
				stats.FundTotal = stats.FundTotal.Add(txn.Amount)
			} else {
				stats.OperationalIncome = stats.OperationalIncome.Add(txn.Amount)
			}
		} else {
			stats.TotalExpense = stats.TotalExpense.Add(txn.Amount)
		}
	}
	stats.Balance = stats.TotalIncome.Sub(stats.TotalExpense)
	return stats
}

// MonthFlow is one month's income/expense totals, for cash-flow charts.
type MonthFlow struct {
	Month   string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// MonthlyFlow aggregates the ledger per calendar month, oldest first.
func MonthlyFlow(txns []model.Transaction) []MonthFlow {
	byMonth := map[string]*MonthFlow{}
	for i := range txns {
		key := txns[i].MonthKey()
		flow, ok := byMonth[key]
		if !ok {
			flow = &MonthFlow{Month: key}
			byMonth[key] = flow
		}
		if txns[i].Direction == model.DirectionIncome {
			flow.Income = flow.Income.Add(txns[i].Amount)
		} else {
			flow.Expense = flow.Expense.Add(txns[i].Amount)
		}
	}

	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]MonthFlow, len(keys))
	for i, k := range keys {
		out[i] = *byMonth[k]
	}
	return out
}

// CategoryTotal is one expense category's accumulated spend.
type CategoryTotal struct {
	Name  string
	Value decimal.Decimal
}

// TopExpenseCategories returns the n largest expense categories, biggest
// first. Ties break alphabetically so the output is stable.
func TopExpenseCategories(txns []model.Transaction, n int) []CategoryTotal {
	byCategory := map[string]decimal.Decimal{}
	for _, txn := range txns {
		if txn.Direction != model.DirectionExpense {
			continue
		}
		byCategory[txn.Category] = byCategory[txn.Category].Add(txn.Amount)
	}

	out := make([]CategoryTotal, 0, len(byCategory))
	for name, value := range byCategory {
		out = append(out, CategoryTotal{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Value.Equal(out[j].Value) {
			return out[i].Value.GreaterThan(out[j].Value)
		}
		return out[i].Name < out[j].Name
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
