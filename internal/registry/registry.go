// Package registry assembles the obligation catalog from configuration.
package registry

import (
	"github.com/sindicoapp/sindico/internal/config"
	"github.com/sindicoapp/sindico/internal/model"
)

// Group identifiers. One banner card is rendered per group.
const (
	GroupQuota = "quota"
	GroupFund  = "fund"
	GroupBills = "bills"
)

// GroupLabels maps group identifiers to their card titles.
func GroupLabels() map[string]string {
	return map[string]string{
		GroupQuota: "Monthly Quotas",
		GroupFund:  "Investment Fund",
		GroupBills: "Fixed Bills",
	}
}

// Build returns the full obligation registry: the per-unit monthly quota,
// the per-unit investment-fund contribution, and one condo-wide obligation
// per configured utility bill. New obligation types are added here by
// registry entry alone; the engine needs no changes.
func Build(cfg *config.Config) []model.ObligationDefinition {
	defs := []model.ObligationDefinition{
		{
			ID:        "quota",
			Label:     "Monthly Quota",
			Group:     GroupQuota,
			Scope:     model.ScopePerUnit,
			Direction: model.DirectionIncome,
			DueDay:    cfg.QuotaDueDay,
			Rule:      model.KeywordRule("Taxa Condominial", "cota"),
		},
		{
			ID:        "fund",
			Label:     "Investment Fund",
			Group:     GroupFund,
			Scope:     model.ScopePerUnit,
			Direction: model.DirectionIncome,
			DueDay:    cfg.FundDueDay,
			Rule:      model.KeywordRule("Fundo de Investimento", "fundo"),
		},
	}

	for _, bill := range cfg.Bills {
		defs = append(defs, model.ObligationDefinition{
			ID:        bill.ID,
			Label:     bill.Label,
			Group:     GroupBills,
			Scope:     model.ScopeCondoWide,
			Direction: model.DirectionExpense,
			DueDay:    bill.DueDay,
			Rule:      model.KeywordRule("", bill.Keywords...),
		})
	}

	return defs
}

// FundRule returns the identity predicate for investment-fund contributions,
// used by the dashboard stats to split fund income from operational income.
func FundRule() model.MatchRule {
	return model.KeywordRule("Fundo de Investimento", "fundo")
}
