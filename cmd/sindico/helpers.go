package main

import (
	"context"
	"fmt"

	"github.com/sindicoapp/sindico/internal/config"
	"github.com/sindicoapp/sindico/internal/service"
	"github.com/sindicoapp/sindico/internal/storage"
)

// openLedger loads the configuration and returns a migrated ledger store.
// Callers own closing the store.
func openLedger(ctx context.Context) (*config.Config, service.Storage, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	store, err := storage.NewSQLiteStorage(cfg.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open ledger database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, nil, err
	}

	return cfg, store, nil
}
