package compliance

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sindicoapp/sindico/internal/model"
)

var testUnits = []string{"Casa 101", "Casa 102", "Casa 103"}

func testRegistry() []model.ObligationDefinition {
	return []model.ObligationDefinition{
		quotaDef(),
		{
			ID:        "fund",
			Label:     "Investment Fund",
			Group:     "fund",
			Scope:     model.ScopePerUnit,
			Direction: model.DirectionIncome,
			DueDay:    10,
			Rule:      model.KeywordRule("Fundo de Investimento", "fundo"),
		},
		billDef(),
	}
}

func newTestEngine() *Engine {
	reg := testRegistry()
	reg[0].Group = "quota"
	reg[2].Group = "bills"
	return New(reg, testUnits, map[string]string{
		"quota": "Monthly Quotas",
		"fund":  "Investment Fund",
		"bills": "Fixed Bills",
	})
}

func findSubject(t *testing.T, report model.ComplianceReport, group, name string) model.SubjectSummary {
	t.Helper()
	for _, g := range report.Groups {
		if g.Group != group {
			continue
		}
		for _, s := range g.Subjects {
			if s.Name == name {
				return s
			}
		}
	}
	t.Fatalf("subject %s not found in group %s", name, group)
	return model.SubjectSummary{}
}

func TestEvaluateQuotaScenario(t *testing.T) {
	// One quota payment for Casa 101 on Nov 5; due day 10; today Nov 20.
	txns := []model.Transaction{
		txn("t1", "2025-11-05", "Cota Mensal - Casa 101", "Taxa Condominial", model.DirectionIncome),
	}
	today := time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)

	report := newTestEngine().Evaluate(txns, today)

	casa101 := findSubject(t, report, "quota", "Casa 101")
	assert.Equal(t, model.StatusOK, casa101.Status)
	assert.Equal(t, "Up to date (full history)", casa101.Message)

	for _, unit := range []string{"Casa 102", "Casa 103"} {
		s := findSubject(t, report, "quota", unit)
		assert.Equal(t, model.StatusOverdue, s.Status, unit)
		assert.Equal(t, "Pending: 11/25", s.Message, unit)
	}
}

func TestEvaluateQuotaBeforeDueDay(t *testing.T) {
	txns := []model.Transaction{
		txn("t1", "2025-11-05", "Cota Mensal - Casa 101", "Taxa Condominial", model.DirectionIncome),
	}
	today := time.Date(2025, 11, 8, 0, 0, 0, 0, time.UTC)

	report := newTestEngine().Evaluate(txns, today)

	for _, unit := range []string{"Casa 102", "Casa 103"} {
		s := findSubject(t, report, "quota", unit)
		assert.Equal(t, model.StatusPending, s.Status, unit)
		assert.Equal(t, "Awaiting (due day 10)", s.Message, unit)
	}
}

func TestEvaluateLatePayment(t *testing.T) {
	txns := []model.Transaction{
		txn("t1", "2025-11-15", "Cota Mensal - Casa 101", "Taxa Condominial", model.DirectionIncome),
	}
	today := time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)

	report := newTestEngine().Evaluate(txns, today)

	casa101 := findSubject(t, report, "quota", "Casa 101")
	assert.Equal(t, model.StatusLatePayment, casa101.Status)
	assert.Equal(t, "Paid late this month", casa101.Message)
}

func TestEvaluatePastOverdueDominatesCurrentOK(t *testing.T) {
	// October payment missing, November paid on time.
	txns := []model.Transaction{
		txn("t1", "2025-10-05", "Cota Mensal - Casa 102", "Taxa Condominial", model.DirectionIncome),
		txn("t2", "2025-11-05", "Cota Mensal - Casa 101", "Taxa Condominial", model.DirectionIncome),
	}
	today := time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)

	report := newTestEngine().Evaluate(txns, today)

	casa101 := findSubject(t, report, "quota", "Casa 101")
	assert.Equal(t, model.StatusOverdue, casa101.Status)
	assert.Equal(t, []string{"10/25"}, casa101.PendingMonths)
}

func TestEvaluateCondoWideBill(t *testing.T) {
	txns := []model.Transaction{
		txn("t1", "2025-11-08", "Fatura Enel novembro", "Energia Elétrica", model.DirectionExpense),
	}
	today := time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)

	report := newTestEngine().Evaluate(txns, today)

	bill := findSubject(t, report, "bills", "Conta de Luz")
	assert.Equal(t, model.StatusOK, bill.Status)
}

func TestEvaluateBannerStates(t *testing.T) {
	txns := []model.Transaction{
		txn("t1", "2025-11-05", "Cota Mensal - Casa 101", "Taxa Condominial", model.DirectionIncome),
	}
	today := time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)

	report := newTestEngine().Evaluate(txns, today)

	require.Len(t, report.Groups, 3)
	quota := report.Groups[0]
	assert.Equal(t, "quota", quota.Group)
	assert.True(t, quota.HasOverdue)
	assert.False(t, quota.AllPaid)
}

func TestEvaluateEmptyLedger(t *testing.T) {
	today := time.Date(2025, 11, 8, 0, 0, 0, 0, time.UTC)

	report := newTestEngine().Evaluate(nil, today)

	assert.Equal(t, []string{"2025-11"}, report.Months)
	for _, unit := range testUnits {
		s := findSubject(t, report, "quota", unit)
		assert.Equal(t, model.StatusPending, s.Status)
	}
}

func TestEvaluateEmptyRegistryAndRoster(t *testing.T) {
	engine := New(nil, nil, nil)
	report := engine.Evaluate(nil, time.Date(2025, 11, 8, 0, 0, 0, 0, time.UTC))
	assert.Empty(t, report.Groups)
	assert.Equal(t, []string{"2025-11"}, report.Months)
}

func TestEvaluateIsIdempotent(t *testing.T) {
	txns := []model.Transaction{
		txn("t1", "2025-11-05", "Cota Mensal - Casa 101", "Taxa Condominial", model.DirectionIncome),
		txn("t2", "2025-09-22", "Fundo Casa 102", "Fundo de Investimento", model.DirectionIncome),
		txn("t3", "2025-10-09", "Sabesp outubro", "Água", model.DirectionExpense),
	}
	today := time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)
	engine := newTestEngine()

	first, err := json.Marshal(engine.Evaluate(txns, today))
	require.NoError(t, err)
	second, err := json.Marshal(engine.Evaluate(txns, today))
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical inputs must produce byte-identical reports")
}

func TestEvaluateDoesNotMutateInput(t *testing.T) {
	txns := []model.Transaction{
		txn("t2", "2025-11-09", "Cota Mensal - Casa 101", "Taxa Condominial", model.DirectionIncome),
		txn("t1", "2025-10-03", "Cota Mensal - Casa 101", "Taxa Condominial", model.DirectionIncome),
	}
	today := time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)

	newTestEngine().Evaluate(txns, today)

	assert.Equal(t, "t2", txns[0].ID)
	assert.Equal(t, "t1", txns[1].ID)
}

func TestEvaluateSurfacesDuplicateMatches(t *testing.T) {
	txns := []model.Transaction{
		txn("t1", "2025-11-03", "Cota Mensal - Casa 101", "Taxa Condominial", model.DirectionIncome),
		txn("t2", "2025-11-09", "Cota Mensal - Casa 101 (segunda via)", "Taxa Condominial", model.DirectionIncome),
	}
	today := time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)

	report := newTestEngine().Evaluate(txns, today)

	casa101 := findSubject(t, report, "quota", "Casa 101")
	assert.Equal(t, model.StatusOK, casa101.Status, "first match still classifies the cell")
	assert.Equal(t, []string{"2025-11"}, casa101.DuplicateMonths)
}
