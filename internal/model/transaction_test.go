package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionMonthKey(t *testing.T) {
	txn := Transaction{Date: time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "2025-11", txn.MonthKey())
}

func TestGenerateHash(t *testing.T) {
	a := Transaction{
		Date:        time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC),
		Description: "Cota Casa 101",
		Direction:   DirectionIncome,
		Amount:      decimal.RequireFromString("350.00"),
	}
	b := a

	assert.Equal(t, a.GenerateHash(), b.GenerateHash())

	b.Description = "Cota Casa 102"
	assert.NotEqual(t, a.GenerateHash(), b.GenerateHash())
}
