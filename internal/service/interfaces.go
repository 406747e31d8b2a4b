// Package service defines the interfaces between the engine, storage, and
// the CLI surface.
package service

import (
	"context"

	"github.com/sindicoapp/sindico/internal/model"
)

// Storage provides persistence for the transaction ledger. The compliance
// engine never touches storage directly; commands load a snapshot and hand
// it to the engine.
type Storage interface {
	// SaveTransactions inserts transactions, silently skipping duplicates
	// (same hash).
	SaveTransactions(ctx context.Context, transactions []model.Transaction) error
	// ListTransactions returns the complete ledger, ordered by date then ID.
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	// Migrate brings the database schema up to date.
	Migrate(ctx context.Context) error
	// Close releases the underlying database handle.
	Close() error
}
