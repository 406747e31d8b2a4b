// Package importer reads ledger transactions from CSV exports.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sindicoapp/sindico/internal/model"
)

// Expected header columns. The id column is optional; rows without one get
// a generated UUID.
var requiredColumns = []string{"date", "type", "description", "amount", "category"}

// ReadCSV parses transactions from a CSV stream with a header row. This is
// the ingestion boundary: malformed dates, directions, and amounts are
// rejected here with row numbers, so everything downstream can assume clean
// data.
func ReadCSV(r io.Reader) ([]model.Transaction, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var transactions []model.Transaction
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", row+1, err)
		}
		row++

		txn, err := parseRow(record, columns)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		transactions = append(transactions, txn)
	}

	return transactions, nil
}

func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required CSV column %q", required)
		}
	}
	return columns, nil
}

func parseRow(record []string, columns map[string]int) (model.Transaction, error) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	date, err := time.Parse(time.DateOnly, field("date"))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("invalid date %q: %w", field("date"), err)
	}

	direction := model.TransactionDirection(strings.ToLower(field("type")))
	if direction != model.DirectionIncome && direction != model.DirectionExpense {
		return model.Transaction{}, fmt.Errorf("invalid type %q: must be income or expense", field("type"))
	}

	amount, err := decimal.NewFromString(field("amount"))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("invalid amount %q: %w", field("amount"), err)
	}
	if amount.IsNegative() {
		return model.Transaction{}, fmt.Errorf("amount %s cannot be negative", amount)
	}

	description := field("description")
	if description == "" {
		return model.Transaction{}, fmt.Errorf("description is empty")
	}

	id := field("id")
	if id == "" {
		id = uuid.NewString()
	}

	txn := model.Transaction{
		ID:          id,
		Date:        date,
		Direction:   direction,
		Description: description,
		Amount:      amount,
		Category:    field("category"),
	}
	txn.Hash = txn.GenerateHash()
	return txn, nil
}
