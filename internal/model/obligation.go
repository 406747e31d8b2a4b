package model

import "strings"

// ObligationScope indicates whether an obligation is owed by each residential
// unit individually or by the condominium as a whole.
type ObligationScope string

const (
	// ScopePerUnit obligations are evaluated once per unit in the roster.
	ScopePerUnit ObligationScope = "per-unit"
	// ScopeCondoWide obligations are evaluated once overall.
	ScopeCondoWide ObligationScope = "condo-wide"
)

// MatchRule decides whether a transaction settles a given obligation.
// Rules only establish obligation identity; month, direction and unit
// filtering happen in the matcher.
type MatchRule func(txn Transaction) bool

// ObligationDefinition describes one recurring financial duty tracked by the
// compliance engine: a monthly quota, an investment-fund contribution, or a
// fixed utility bill.
type ObligationDefinition struct {
	Rule      MatchRule
	ID        string
	Label     string
	Group     string
	Scope     ObligationScope
	Direction TransactionDirection
	DueDay    int
}

// KeywordRule builds the standard identity predicate: the transaction's
// category equals category exactly, or its description or category contains
// one of the keywords (case-insensitive substring).
func KeywordRule(category string, keywords ...string) MatchRule {
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}
	return func(txn Transaction) bool {
		if category != "" && txn.Category == category {
			return true
		}
		desc := strings.ToLower(txn.Description)
		cat := strings.ToLower(txn.Category)
		for _, k := range lowered {
			if strings.Contains(desc, k) || strings.Contains(cat, k) {
				return true
			}
		}
		return false
	}
}
