// Package model defines the core domain models used throughout the application.
package model

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionDirection indicates whether money flowed into or out of the
// condominium account.
type TransactionDirection string

const (
	// DirectionIncome represents money received (quotas, fund contributions).
	DirectionIncome TransactionDirection = "income"
	// DirectionExpense represents money paid out (utility bills, maintenance).
	DirectionExpense TransactionDirection = "expense"
)

// Transaction is a single entry in the condominium ledger. The compliance
// engine treats transactions as immutable input; they are never modified
// after ingestion.
type Transaction struct {
	Date        time.Time
	ID          string
	Description string
	Category    string
	Hash        string
	Direction   TransactionDirection
	Amount      decimal.Decimal
}

// MonthKey returns the "YYYY-MM" calendar month the transaction falls in.
func (t *Transaction) MonthKey() string {
	return t.Date.Format("2006-01")
}

// GenerateHash creates a unique hash for duplicate detection on import.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%s:%s:%s",
		t.Date.Format("2006-01-02"),
		t.Amount.String(),
		t.Description,
		t.Direction)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
