package compliance

import (
	"log/slog"
	"time"

	"github.com/sindicoapp/sindico/internal/model"
)

// Engine evaluates every obligation in the registry against a ledger
// snapshot. It holds only immutable configuration, so a single Engine is
// safe for concurrent use; each Evaluate call works on its own snapshot and
// its own capture of "today".
type Engine struct {
	registry []model.ObligationDefinition
	units    []string
	groups   []groupInfo
}

type groupInfo struct {
	id    string
	label string
}

// New creates an engine for the given obligation registry and unit roster.
// Group order follows first appearance in the registry. Empty registries and
// rosters are tolerated here and produce empty reports; the host application
// validates its configuration before constructing the engine.
func New(registry []model.ObligationDefinition, units []string, groupLabels map[string]string) *Engine {
	e := &Engine{
		registry: registry,
		units:    units,
	}
	seen := map[string]bool{}
	for _, def := range registry {
		if seen[def.Group] {
			continue
		}
		seen[def.Group] = true
		label := groupLabels[def.Group]
		if label == "" {
			label = def.Label
		}
		e.groups = append(e.groups, groupInfo{id: def.Group, label: label})
	}
	return e
}

// Evaluate runs the full month × subject × obligation cross product and
// returns the compliance report. The input slice is never mutated and the
// computation reads today exactly once, so two calls with identical inputs
// produce identical reports.
func (e *Engine) Evaluate(txns []model.Transaction, today time.Time) model.ComplianceReport {
	months := MonthUniverse(txns, today)
	matcher := NewMatcher(txns)

	slog.Debug("evaluating compliance",
		"transactions", len(txns),
		"months", len(months),
		"obligations", len(e.registry),
		"units", len(e.units))

	bySubject := make(map[string][]model.SubjectSummary, len(e.groups))
	for _, def := range e.registry {
		for _, subject := range e.subjects(def) {
			cells := make([]model.MonthCell, 0, len(months))
			for _, month := range months {
				matched, candidates := matcher.Match(def, month, subject.unit)
				cells = append(cells, model.MonthCell{
					Month:      month,
					Status:     Classify(matched, month, today, def.DueDay),
					Matched:    matched,
					Duplicates: candidates,
				})
			}
			bySubject[def.Group] = append(bySubject[def.Group],
				Aggregate(subject.name, def, cells, today))
		}
	}

	report := model.ComplianceReport{
		GeneratedAt: today,
		Months:      months,
	}
	for _, g := range e.groups {
		report.Groups = append(report.Groups, Banner(g.id, g.label, bySubject[g.id]))
	}
	return report
}

type subject struct {
	name string
	unit string
}

// subjects expands an obligation into the entities it is evaluated for:
// one per roster unit when per-unit, a single entry named after the
// obligation itself when condo-wide.
func (e *Engine) subjects(def model.ObligationDefinition) []subject {
	if def.Scope == model.ScopeCondoWide {
		return []subject{{name: def.Label}}
	}
	out := make([]subject, len(e.units))
	for i, u := range e.units {
		out[i] = subject{name: u, unit: u}
	}
	return out
}
