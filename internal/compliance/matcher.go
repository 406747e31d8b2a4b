package compliance

import (
	"sort"
	"strings"

	"github.com/sindicoapp/sindico/internal/model"
)

// Matcher finds the transaction that settles a given (obligation, month,
// subject) cell. It works over a snapshot sorted by date then ID so that
// "first match" is deterministic regardless of input order.
type Matcher struct {
	snapshot []model.Transaction
}

// NewMatcher copies and sorts the ledger snapshot. The input slice is never
// mutated.
func NewMatcher(txns []model.Transaction) *Matcher {
	snapshot := make([]model.Transaction, len(txns))
	copy(snapshot, txns)
	sort.SliceStable(snapshot, func(i, j int) bool {
		if !snapshot[i].Date.Equal(snapshot[j].Date) {
			return snapshot[i].Date.Before(snapshot[j].Date)
		}
		return snapshot[i].ID < snapshot[j].ID
	})
	return &Matcher{snapshot: snapshot}
}

// Match returns the chronologically first transaction satisfying the
// obligation for the given month, plus the total number of candidates found.
// For per-unit obligations unit must be non-empty and the transaction's
// description must contain it as a literal substring. A nil result is the
// normal "unpaid" case, not an error.
//
// No amount check is performed: a payment of any amount settles the cell.
func (m *Matcher) Match(def model.ObligationDefinition, month, unit string) (*model.Transaction, int) {
	var first *model.Transaction
	candidates := 0

	for i := range m.snapshot {
		txn := &m.snapshot[i]
		if txn.MonthKey() != month {
			continue
		}
		if txn.Direction != def.Direction {
			continue
		}
		if def.Rule != nil && !def.Rule(*txn) {
			continue
		}
		if def.Scope == model.ScopePerUnit && !strings.Contains(txn.Description, unit) {
			continue
		}
		candidates++
		if first == nil {
			first = txn
		}
	}

	return first, candidates
}
