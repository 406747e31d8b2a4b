// Package config provides configuration utilities for the application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/sindicoapp/sindico/internal/common"
)

// BillConfig describes one fixed utility bill the condominium must pay every
// month.
type BillConfig struct {
	ID       string   `mapstructure:"id"`
	Label    string   `mapstructure:"label"`
	Keywords []string `mapstructure:"keywords"`
	DueDay   int      `mapstructure:"due_day"`
}

// Config holds everything the host application supplies to the compliance
// engine: the unit roster and the obligation registry settings.
type Config struct {
	Units        []string     `mapstructure:"units"`
	QuotaDueDay  int          `mapstructure:"quota_due_day"`
	FundDueDay   int          `mapstructure:"fund_due_day"`
	FundAmount   string       `mapstructure:"fund_amount"`
	Bills        []BillConfig `mapstructure:"bills"`
	DatabasePath string       `mapstructure:"database_path"`
}

// Load reads the compliance configuration from Viper (config file or
// SINDICO_ env vars), applying defaults for anything unset.
func Load() (*Config, error) {
	cfg := &Config{
		Units:        viper.GetStringSlice("units"),
		QuotaDueDay:  viper.GetInt("quota.due_day"),
		FundDueDay:   viper.GetInt("fund.due_day"),
		FundAmount:   viper.GetString("fund.amount"),
		DatabasePath: viper.GetString("database.path"),
	}
	if err := viper.UnmarshalKey("bills", &cfg.Bills); err != nil {
		return nil, fmt.Errorf("failed to parse bills configuration: %w", err)
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if len(cfg.Units) == 0 {
		cfg.Units = []string{"Casa 101", "Casa 102", "Casa 103"}
	}
	if cfg.QuotaDueDay == 0 {
		cfg.QuotaDueDay = 10
	}
	if cfg.FundDueDay == 0 {
		cfg.FundDueDay = 10
	}
	if cfg.FundAmount == "" {
		cfg.FundAmount = "70.00"
	}
	if len(cfg.Bills) == 0 {
		cfg.Bills = []BillConfig{
			{
				ID:       "light",
				Label:    "Conta de Luz",
				DueDay:   10,
				Keywords: []string{"luz", "energia", "elétrica", "enel", "cemig", "cpfl"},
			},
			{
				ID:       "water",
				Label:    "Conta de Água",
				DueDay:   12,
				Keywords: []string{"água", "saneamento", "sabesp", "embasa"},
			},
		}
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = defaultDatabasePath()
	}
}

// Validate fails fast on configuration errors: an unusable roster or
// registry should never reach the per-cell computations.
func (c *Config) Validate() error {
	if len(c.Units) == 0 {
		return fmt.Errorf("%w: unit roster is empty", common.ErrInvalidConfig)
	}
	for _, unit := range c.Units {
		if strings.TrimSpace(unit) == "" {
			return fmt.Errorf("%w: blank unit identifier in roster", common.ErrInvalidConfig)
		}
	}
	if err := validateDueDay("quota.due_day", c.QuotaDueDay); err != nil {
		return err
	}
	if err := validateDueDay("fund.due_day", c.FundDueDay); err != nil {
		return err
	}
	if _, err := decimal.NewFromString(c.FundAmount); err != nil {
		return fmt.Errorf("%w: fund.amount %q is not a decimal", common.ErrInvalidConfig, c.FundAmount)
	}
	for _, bill := range c.Bills {
		if strings.TrimSpace(bill.ID) == "" || strings.TrimSpace(bill.Label) == "" {
			return fmt.Errorf("%w: bill entries need an id and a label", common.ErrInvalidConfig)
		}
		if len(bill.Keywords) == 0 {
			return fmt.Errorf("%w: bill %q has no keywords to match on", common.ErrInvalidConfig, bill.ID)
		}
		if err := validateDueDay("bill "+bill.ID+" due_day", bill.DueDay); err != nil {
			return err
		}
	}
	return nil
}

func validateDueDay(field string, day int) error {
	if day < 1 || day > 31 {
		return fmt.Errorf("%w: %s must be between 1 and 31, got %d", common.ErrInvalidConfig, field, day)
	}
	return nil
}

func defaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "sindico.db"
	}
	return filepath.Join(home, ".local", "share", "sindico", "sindico.db")
}
